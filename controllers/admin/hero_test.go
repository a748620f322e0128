package adminController

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
	require.NoError(t, db.AutoMigrate(&models.HeroSlide{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/hero-slides", GetActiveHeroSlides(db))
	r.GET("/admin/hero-slides", GetAllHeroSlides(db))
	r.GET("/admin/hero-slides/:id", GetHeroSlideByID(db))
	r.POST("/admin/hero-slides", CreateHeroSlide(db))
	r.PUT("/admin/hero-slides/:id", UpdateHeroSlide(db))
	r.PUT("/admin/hero-slides/:id/image", UpdateHeroSlideImage(db))
	r.DELETE("/admin/hero-slides/:id", DeleteHeroSlide(db))
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

func TestActiveSlidesOrderedAndFiltered(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	doJSON(t, r, http.MethodPost, "/admin/hero-slides",
		gin.H{"title": "Summer Drop", "order": 2})
	doJSON(t, r, http.MethodPost, "/admin/hero-slides",
		gin.H{"title": "New Arrivals", "order": 1})
	doJSON(t, r, http.MethodPost, "/admin/hero-slides",
		gin.H{"title": "Hidden", "order": 3, "is_active": false})

	w := doJSON(t, r, http.MethodGet, "/hero-slides", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var slides []models.HeroSlide
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slides))
	require.Len(t, slides, 2)
	assert.Equal(t, "New Arrivals", slides[0].Title)
	assert.Equal(t, "Summer Drop", slides[1].Title)

	// the admin list still sees the inactive one
	w = doJSON(t, r, http.MethodGet, "/admin/hero-slides", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slides))
	assert.Len(t, slides, 3)
}

func TestUpdateHeroSlideKeepsImageWhenOmitted(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodPost, "/admin/hero-slides",
		gin.H{"title": "Launch", "order": 1, "image_url": "https://img.example.com/a.png"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.HeroSlide
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPut, "/admin/hero-slides/"+itoa(created.ID),
		gin.H{"title": "Launch Week", "order": 5})
	require.Equal(t, http.StatusOK, w.Code)

	var slide models.HeroSlide
	require.NoError(t, db.First(&slide, created.ID).Error)
	assert.Equal(t, "Launch Week", slide.Title)
	assert.Equal(t, 5, slide.Rank)
	assert.Equal(t, "https://img.example.com/a.png", slide.ImageURL, "empty image_url leaves the stored one")

	w = doJSON(t, r, http.MethodPut, "/admin/hero-slides/"+itoa(created.ID)+"/image",
		gin.H{"image_url": "https://img.example.com/b.png"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&slide, created.ID).Error)
	assert.Equal(t, "https://img.example.com/b.png", slide.ImageURL)
}

func TestDeleteHeroSlide(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodPost, "/admin/hero-slides", gin.H{"title": "Gone Soon", "order": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.HeroSlide
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodDelete, "/admin/hero-slides/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/admin/hero-slides/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
