package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/wedplan/marketplace-api/internal/constants"
	"github.com/wedplan/marketplace-api/internal/dto"
	"github.com/wedplan/marketplace-api/internal/models"
	"github.com/wedplan/marketplace-api/internal/services"
	"github.com/wedplan/marketplace-api/internal/storage"
)

func setupProfileTestEnv(t *testing.T) (*storage.MemoryStore, *ProfileHandler) {
	t.Helper()

	store := storage.NewMemoryStore()
	return store, NewProfileHandler(services.NewUserService(store))
}

func createProfileTestUser(t *testing.T, store *storage.MemoryStore) *models.User {
	t.Helper()

	user := &models.User{
		Username:     "studio",
		Password:     "hashedpassword",
		Role:         models.RolePhotographer,
		BusinessName: "Studio One",
		Phone:        "+14155550123",
	}
	require.NoError(t, store.CreateUser(user))
	return user
}

func TestProfileHandler_UpdateChangesOnlyPatchedFields(t *testing.T) {
	store, handler := setupProfileTestEnv(t)
	user := createProfileTestUser(t, store)

	body := []byte(`{"description": "Weddings and events"}`)
	c, w := authedJSONContext(http.MethodPatch, "/api/profile", body, user.ID)

	handler.Update(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Weddings and events", response.Description)
	require.Equal(t, "Studio One", response.BusinessName)
	require.Equal(t, "+14155550123", response.Phone)
	require.Equal(t, user.Username, response.Username)
}

func TestProfileHandler_UpdateRejectsUnknownFields(t *testing.T) {
	store, handler := setupProfileTestEnv(t)
	user := createProfileTestUser(t, store)

	body := []byte(`{"description": "ok", "username": "sneaky"}`)
	c, w := authedJSONContext(http.MethodPatch, "/api/profile", body, user.ID)

	handler.Update(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was merged.
	stored, err := store.GetUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, "studio", stored.Username)
	require.Empty(t, stored.Description)
}

func TestProfileHandler_UpdateRejectsRatingOutOfRange(t *testing.T) {
	store, handler := setupProfileTestEnv(t)
	user := createProfileTestUser(t, store)

	body := []byte(`{"rating": 9}`)
	c, w := authedJSONContext(http.MethodPatch, "/api/profile", body, user.ID)

	handler.Update(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileHandler_UpdateRejectsInvalidPhone(t *testing.T) {
	store, handler := setupProfileTestEnv(t)
	user := createProfileTestUser(t, store)

	body := []byte(`{"phone": "12345"}`)
	c, w := authedJSONContext(http.MethodPatch, "/api/profile", body, user.ID)

	handler.Update(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileHandler_UpdateAcceptsShortInternationalPhone(t *testing.T) {
	store, handler := setupProfileTestEnv(t)
	user := createProfileTestUser(t, store)

	body := []byte(`{"phone": "+49123"}`)
	c, w := authedJSONContext(http.MethodPatch, "/api/profile", body, user.ID)

	handler.Update(c)

	require.Equal(t, http.StatusOK, w.Code)

	stored, err := store.GetUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, "+49123", stored.Phone)
}

func TestProfileHandler_DeleteRemovesAccountAndSession(t *testing.T) {
	store, handler := setupProfileTestEnv(t)
	user := createProfileTestUser(t, store)

	r := gin.New()
	sessionStore := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, user.ID)
	})
	r.DELETE("/api/profile", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)

	_, err := store.GetUser(user.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
