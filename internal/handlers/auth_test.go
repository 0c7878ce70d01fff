package handlers

import (
	"bytes"
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
	apierrors "github.com/wedplan/marketplace-api/internal/errors"
	"github.com/wedplan/marketplace-api/internal/services"
	"github.com/wedplan/marketplace-api/internal/storage"
	"github.com/wedplan/marketplace-api/internal/validation"
)

type authTestEnv struct {
	store       *storage.MemoryStore
	handler     *AuthHandler
	authService *services.AuthService
	router      *gin.Engine
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	store := storage.NewMemoryStore()
	authService := services.NewAuthService(store)
	handler := NewAuthHandler(authService)

	r := gin.New()
	sessionStore := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))
	r.POST("/api/register", handler.Register)
	r.POST("/api/login", handler.Login)

	return authTestEnv{
		store:       store,
		handler:     handler,
		authService: authService,
		router:      r,
	}
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/register", map[string]string{
		"username": "newclient",
		"password": "supersecret",
		"role":     "client",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newclient", response.Username)
	require.NotZero(t, response.ID)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
}

func TestAuthHandler_RegisterRejectsInvalidPhone(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/register", map[string]string{
		"username": "shutterbug",
		"password": "supersecret",
		"role":     "photographer",
		"phone":    "12345",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Code    string                      `json:"code"`
		Details []validation.FieldViolation `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, apierrors.ErrCodeInvalidInput, response.Code)
	require.Len(t, response.Details, 1)
	require.Equal(t, "phone", response.Details[0].Field)
	require.Equal(t, "intlphone", response.Details[0].Rule)
}

func TestAuthHandler_RegisterAcceptsShortInternationalPhone(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/register", map[string]string{
		"username": "kurzwahl",
		"password": "supersecret",
		"role":     "photographer",
		"phone":    "+49123",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "+49123", response.Phone)
}

func TestAuthHandler_RegisterRejectsUnknownRole(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/register", map[string]string{
		"username": "someone",
		"password": "supersecret",
		"role":     "florist",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_RegisterConflictOnDuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]string{
		"username": "taken",
		"password": "supersecret",
		"role":     "client",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, env.router, "/api/register", payload).Code)
	require.Equal(t, http.StatusConflict, postJSON(t, env.router, "/api/register", payload).Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Username: "existing",
		Password: "supersecret",
		Role:     "client",
	})
	require.NoError(t, err)

	w := postJSON(t, env.router, "/api/login", map[string]string{
		"username": "existing",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "existing", response.Username)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Username: "existing",
		Password: "supersecret",
		Role:     "client",
	})
	require.NoError(t, err)

	w := postJSON(t, env.router, "/api/login", map[string]string{
		"username": "existing",
		"password": "wrongpassword",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(services.RegisterInput{
		Username: "current-user",
		Password: "supersecret",
		Role:     "editor",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(constants.ContextKeyUserID, user.ID)

	env.handler.CurrentUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.Username, response.Username)
}
