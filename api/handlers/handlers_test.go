package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forum-civic/forum-services/api/middleware"
	services "github.com/forum-civic/forum-services/api/services"
	"github.com/forum-civic/forum-services/internal/appconfig"
	"github.com/forum-civic/forum-services/models"
	"github.com/golang-jwt/jwt"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keycloakMock struct {
	services.IdentityProvider
	response *services.TokenResponse
	err      error
}

func (k keycloakMock) Refresh(refreshToken string) (*services.TokenResponse, error) {
	if k.err != nil {
		return nil, k.err
	}
	return k.response, nil
}

func newRouter(svc *services.Service) *mux.Router {
	r := mux.NewRouter()

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.Use(middleware.WithLogger)
	auth.HandleFunc("/refresh", Refresh(svc)).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.WithLogger)
	api.Use(middleware.JWTMiddleware)
	api.HandleFunc("/friends/ids", GetFriendIDs(svc)).Methods(http.MethodGet)

	return r
}

func TestRefresh_Success(t *testing.T) {
	kc := keycloakMock{
		response: &services.TokenResponse{
			Access:           "access-token",
			ExpiresIn:        3600,
			Refresh:          "refresh-token",
			RefreshExpiresIn: 7200,
			Scope:            "openid",
		},
	}
	svc := services.NewService(&appconfig.Config{}, nil, nil, kc)

	body, _ := json.Marshal(models.RefreshRequest{RefreshToken: "old-refresh"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response models.AuthSessionResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "access-token", response.Access)
	assert.Equal(t, "refresh-token", response.Refresh)
	assert.Equal(t, "openid", response.Scope)
}

func TestRefresh_Expired(t *testing.T) {
	kc := keycloakMock{err: &services.HTTPError{Status: http.StatusUnauthorized, Message: "Token is not active"}}
	svc := services.NewService(&appconfig.Config{}, nil, nil, kc)

	body, _ := json.Marshal(models.RefreshRequest{RefreshToken: "stale"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoute_RequiresBearer(t *testing.T) {
	svc := services.NewService(&appconfig.Config{}, nil, nil, keycloakMock{})

	req := httptest.NewRequest(http.MethodGet, "/api/friends/ids", nil)
	w := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type friendStore struct {
	services.ForumStore
	ids map[string][]string
}

func (s friendStore) GetFriendIDs(uid string) ([]string, error) {
	return s.ids[uid], nil
}

func TestProtectedRoute_UsesTokenSubject(t *testing.T) {
	store := friendStore{ids: map[string][]string{"user-1": {"user-2", "user-3"}}}
	svc := services.NewService(&appconfig.Config{}, store, nil, keycloakMock{})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"}).SignedString([]byte("k"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/friends/ids", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"friendIds":["user-2","user-3"]}`, w.Body.String())
}
