package cartControllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Brand{}, &models.BrandOwner{}, &models.Category{},
		&models.Product{}, &models.Cart{}, &models.CartItem{},
	))
	return db
}

func authAs(userID string, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
	}
}

func setupRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(authAs(userID, models.RoleClient))
	r.GET("/user/cart", GetUserCart(db))
	r.POST("/user/cart", AddToCart(db))
	r.GET("/user/cart/count", CountCartItems(db))
	r.DELETE("/user/cart/items/:item_id", DeleteCartItem(db))
	r.DELETE("/user/cart", ClearUserCart(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Quantity: stock, IsActive: true}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddToCartCreatesCartLazily(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, "user-1")
	p := seedProduct(t, db, "Oud Royal", 120, 5)

	w := doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": p.ID, "quantity": 2})
	assert.Equal(t, http.StatusCreated, w.Code)

	var cart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", "user-1").First(&cart).Error)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddToCartMergesExistingLine(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, "user-1")
	p := seedProduct(t, db, "Amber Noir", 80, 10)

	w := doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": p.ID, "quantity": 2})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": p.ID, "quantity": 3})
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1, "same product must merge into one line, never two rows")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, "user-1")

	w := doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": 999, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCartWithoutCartReturnsNull(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, "user-1")

	w := doJSON(t, r, http.MethodGet, "/user/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestCountCartItems(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, "user-1")

	w := doJSON(t, r, http.MethodGet, "/user/cart/count", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count": 0}`, w.Body.String())

	p1 := seedProduct(t, db, "Rose Veil", 60, 5)
	p2 := seedProduct(t, db, "Cedar Musk", 45, 5)
	doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": p1.ID, "quantity": 2})
	doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": p2.ID, "quantity": 1})
	// merging into p1 must not raise the line count
	doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": p1.ID, "quantity": 1})

	w = doJSON(t, r, http.MethodGet, "/user/cart/count", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count": 2}`, w.Body.String())
}

func TestClearCartKeepsCartRow(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, "user-1")
	p := seedProduct(t, db, "Iris Bloom", 95, 5)
	doJSON(t, r, http.MethodPost, "/user/cart", gin.H{"product_id": p.ID, "quantity": 2})

	w := doJSON(t, r, http.MethodDelete, "/user/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var itemCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	var cartCount int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", "user-1").Count(&cartCount).Error)
	assert.EqualValues(t, 1, cartCount, "cart row persists empty")
}

func TestClearCartWithoutCartIsNoop(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, "user-1")

	w := doJSON(t, r, http.MethodDelete, "/user/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteCartItemScopedToOwnCart(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "Santal Dusk", 110, 5)

	ownerRouter := setupRouter(db, "owner")
	doJSON(t, ownerRouter, http.MethodPost, "/user/cart", gin.H{"product_id": p.ID, "quantity": 1})

	var item models.CartItem
	require.NoError(t, db.First(&item).Error)

	// another user with their own cart cannot delete the owner's item
	otherRouter := setupRouter(db, "other")
	doJSON(t, otherRouter, http.MethodPost, "/user/cart", gin.H{"product_id": p.ID, "quantity": 1})
	w := doJSON(t, otherRouter, http.MethodDelete, "/user/cart/items/"+itoa(item.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the owner can
	w = doJSON(t, ownerRouter, http.MethodDelete, "/user/cart/items/"+itoa(item.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var remaining []models.CartItem
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.NotEqual(t, item.ID, remaining[0].ID)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
