package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/wedplan/marketplace-api/internal/models"
	"github.com/wedplan/marketplace-api/internal/services"
	"github.com/wedplan/marketplace-api/internal/storage"
)

func TestPortfolioHandler_CreateAndListByUser(t *testing.T) {
	store := storage.NewMemoryStore()
	handler := NewPortfolioHandler(services.NewPortfolioService(store))

	studio := &models.User{Username: "studio", Password: "hashedpassword", Role: models.RolePhotographer}
	require.NoError(t, store.CreateUser(studio))

	body, _ := json.Marshal(map[string]interface{}{
		"title":       "Weddings 2026",
		"description": "Selected work",
		"image_urls":  []string{"https://example.com/1.jpg"},
	})
	c, w := authedJSONContext(http.MethodPost, "/api/portfolio", body, studio.ID)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, studio.ID, created.UserID)
	require.NotZero(t, created.ID)

	// Listing is public, keyed by the owner's ID.
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/portfolio/1", nil)
	c.Params = gin.Params{{Key: "userId", Value: "1"}}
	handler.ListByUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var portfolios []models.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &portfolios))
	require.Len(t, portfolios, 1)
	require.Equal(t, created.ID, portfolios[0].ID)
}

func TestPortfolioHandler_CreateMissingTitle(t *testing.T) {
	store := storage.NewMemoryStore()
	handler := NewPortfolioHandler(services.NewPortfolioService(store))

	studio := &models.User{Username: "studio", Password: "hashedpassword", Role: models.RolePhotographer}
	require.NoError(t, store.CreateUser(studio))

	body := []byte(`{"description": "no title"}`)
	c, w := authedJSONContext(http.MethodPost, "/api/portfolio", body, studio.ID)
	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
