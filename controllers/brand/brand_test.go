package brandControllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
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
		&models.User{}, &models.Brand{}, &models.BrandOwner{},
		&models.Category{}, &models.Product{}, &models.SellerRequest{},
	))
	return db
}

func setupRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", models.RoleSeller)
	})
	r.GET("/brands", GetAllBrands(db))
	r.GET("/brands/:id", GetBrandByID(db))
	r.POST("/seller/brands", CreateBrand(db))
	r.GET("/seller/brands", GetBrandsByOwner(db))
	r.GET("/admin/sellers", GetSellers(db))
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

func TestCreateBrandDedupsCaseInsensitively(t *testing.T) {
	db := setupTestDB(t)

	first := setupRouter(db, "seller-1")
	w := doJSON(t, first, http.MethodPost, "/seller/brands",
		gin.H{"name": "Chanel", "logo_url": "https://img.example.com/chanel.png"})
	require.Equal(t, http.StatusCreated, w.Code)

	second := setupRouter(db, "seller-2")
	w = doJSON(t, second, http.MethodPost, "/seller/brands",
		gin.H{"name": "CHANEL", "logo_url": "https://img.example.com/other.png"})
	require.Equal(t, http.StatusOK, w.Code)

	var brands []models.Brand
	require.NoError(t, db.Find(&brands).Error)
	require.Len(t, brands, 1, "one brand row, not two")
	assert.Equal(t, "Chanel", brands[0].Name)
	assert.Equal(t, "https://img.example.com/chanel.png", brands[0].LogoURL,
		"the second submission's logo is discarded")

	var links []models.BrandOwner
	require.NoError(t, db.Find(&links).Error)
	assert.Len(t, links, 2, "both sellers end up co-owning the brand")
}

func TestCreateBrandRepeatBySameOwnerKeepsOneLink(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, "seller-1")

	w := doJSON(t, r, http.MethodPost, "/seller/brands", gin.H{"name": "Maison Lune"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/seller/brands", gin.H{"name": "maison lune"})
	require.Equal(t, http.StatusOK, w.Code)

	var links []models.BrandOwner
	require.NoError(t, db.Find(&links).Error)
	assert.Len(t, links, 1)
}

func TestGetBrandsByOwner(t *testing.T) {
	db := setupTestDB(t)
	r1 := setupRouter(db, "seller-1")
	r2 := setupRouter(db, "seller-2")

	doJSON(t, r1, http.MethodPost, "/seller/brands", gin.H{"name": "Atelier Sel"})
	doJSON(t, r2, http.MethodPost, "/seller/brands", gin.H{"name": "Parfum Nord"})
	doJSON(t, r2, http.MethodPost, "/seller/brands", gin.H{"name": "atelier sel"})

	w := doJSON(t, r2, http.MethodGet, "/seller/brands", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var brands []models.Brand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &brands))
	assert.Len(t, brands, 2)
}

func TestGetSellersSummary(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.User{
		ID: "seller-1", Email: "s1@example.com", Name: "Nadia", Role: models.RoleSeller, ProductLimit: 10,
	}).Error)
	brand := models.Brand{Name: "House Nadia"}
	require.NoError(t, db.Create(&brand).Error)
	require.NoError(t, db.Create(&models.BrandOwner{BrandID: brand.ID, UserID: "seller-1"}).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Product{
			Name: "P", Price: 10, Quantity: 1, IsActive: true, BrandID: brand.ID, SellerID: "seller-1",
		}).Error)
	}
	require.NoError(t, db.Create(&models.SellerRequest{
		UserID: "seller-1", Name: "Nadia Store", LogoURL: "https://img.example.com/logo.png",
		Status: models.RequestStatusApproved,
	}).Error)

	r := setupRouter(db, "admin")
	w := doJSON(t, r, http.MethodGet, "/admin/sellers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summaries []SellerSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Nadia", summaries[0].SellerName)
	assert.Equal(t, 1, summaries[0].BrandCount)
	assert.Equal(t, 3, summaries[0].ProductCount)
	assert.Equal(t, 10, summaries[0].ProductLimit)
	assert.Equal(t, "https://img.example.com/logo.png", summaries[0].OwnerLogo)
}
