package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forum-civic/forum-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTokens = &TokenResponse{
	Access:           "access-token",
	Refresh:          "refresh-token",
	ExpiresIn:        300,
	RefreshExpiresIn: 1800,
	Scope:            "openid email profile",
}

func TestSignUpService(t *testing.T) {
	svc, mockDB, mockKC, _ := newTestService()
	mailer := new(MockMailer)
	svc.Mailer = mailer

	mockKC.On("CreateUser", "ada@example.com", "s3cret!", "Ada", "Lovelace").Return("user-1", nil)
	mockDB.On("CreateUser", mock.MatchedBy(func(u models.UserInfo) bool {
		return u.UID == "user-1" && u.Email == "ada@example.com" && !u.DateCreated.IsZero()
	})).Return(nil)
	mockDB.On("InitFriends", "user-1").Return(nil)
	mailer.On("SendEmail", mock.Anything, "ada@example.com", "Welcome to Forum", mock.AnythingOfType("string")).Return(nil)
	mockKC.On("Login", "ada@example.com", "s3cret!").Return(testTokens, nil)

	body := models.SignUpRequest{Email: " ada@example.com ", Password: "s3cret!", FirstName: "Ada", LastName: "Lovelace"}
	r := newRequest(t, http.MethodPost, "/api/auth/signup", body, "", nil)
	w := httptest.NewRecorder()

	svc.SignUpService(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/users/user-1", w.Header().Get("Location"))

	var resp models.AuthSessionResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "access-token", resp.Access)
	assert.NotEmpty(t, resp.AccessExpiry)
	assert.NotEmpty(t, resp.RefreshExpiry)

	name, ok := svc.Names.Cache.Get("user-1")
	assert.True(t, ok)
	assert.Equal(t, "Ada Lovelace", name)

	mockKC.AssertExpectations(t)
	mockDB.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestSignUpService_Validation(t *testing.T) {
	tests := []struct {
		name string
		body models.SignUpRequest
	}{
		{"bad email", models.SignUpRequest{Email: "not-an-email", Password: "s3cret!", FirstName: "A", LastName: "B"}},
		{"short password", models.SignUpRequest{Email: "a@b.com", Password: "123", FirstName: "A", LastName: "B"}},
		{"missing name", models.SignUpRequest{Email: "a@b.com", Password: "s3cret!", FirstName: "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockKC, _ := newTestService()

			r := newRequest(t, http.MethodPost, "/api/auth/signup", tt.body, "", nil)
			w := httptest.NewRecorder()

			svc.SignUpService(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockKC.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSignUpService_StoreFailureRemovesIdentity(t *testing.T) {
	body := models.SignUpRequest{Email: "ada@example.com", Password: "s3cret!", FirstName: "Ada", LastName: "Lovelace"}

	t.Run("profile", func(t *testing.T) {
		svc, mockDB, mockKC, _ := newTestService()
		mockKC.On("CreateUser", "ada@example.com", "s3cret!", "Ada", "Lovelace").Return("user-1", nil)
		mockDB.On("CreateUser", mock.Anything).Return(errors.New("connection refused"))
		mockKC.On("DeleteUser", "user-1").Return(nil)

		w := httptest.NewRecorder()
		svc.SignUpService(w, newRequest(t, http.MethodPost, "/api/auth/signup", body, "", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockKC.AssertExpectations(t)
		mockKC.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
		mockDB.AssertNotCalled(t, "InitFriends", mock.Anything)
	})

	t.Run("friend list", func(t *testing.T) {
		svc, mockDB, mockKC, _ := newTestService()
		mockKC.On("CreateUser", "ada@example.com", "s3cret!", "Ada", "Lovelace").Return("user-1", nil)
		mockDB.On("CreateUser", mock.Anything).Return(nil)
		mockDB.On("InitFriends", "user-1").Return(errors.New("connection refused"))
		mockKC.On("DeleteUser", "user-1").Return(errors.New("keycloak down"))

		w := httptest.NewRecorder()
		svc.SignUpService(w, newRequest(t, http.MethodPost, "/api/auth/signup", body, "", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockKC.AssertExpectations(t)
		_, cached := svc.Names.Cache.Get("user-1")
		assert.False(t, cached)
	})
}

func TestSignUpService_EmailTaken(t *testing.T) {
	svc, mockDB, mockKC, _ := newTestService()

	mockKC.On("CreateUser", "ada@example.com", "s3cret!", "Ada", "Lovelace").
		Return("", &HTTPError{Status: http.StatusConflict, Message: "An account with this email already exists."})

	body := models.SignUpRequest{Email: "ada@example.com", Password: "s3cret!", FirstName: "Ada", LastName: "Lovelace"}
	r := newRequest(t, http.MethodPost, "/api/auth/signup", body, "", nil)
	w := httptest.NewRecorder()

	svc.SignUpService(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp models.Response
	decodeBody(t, w, &resp)
	assert.Equal(t, "An account with this email already exists.", resp.ErrorDetails)
	mockDB.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestLoginService(t *testing.T) {
	svc, _, mockKC, _ := newTestService()

	mockKC.On("GetUserByEmail", "ada@example.com").Return(&KeycloakUser{ID: "user-1", Email: "ada@example.com"}, nil)
	mockKC.On("Login", "ada@example.com", "s3cret!").Return(testTokens, nil)

	r := newRequest(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "ada@example.com", Password: "s3cret!"}, "", nil)
	w := httptest.NewRecorder()

	svc.LoginService(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.AuthSessionResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "refresh-token", resp.Refresh)
}

func TestLoginService_Failures(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		svc, _, mockKC, _ := newTestService()
		mockKC.On("GetUserByEmail", "nobody@example.com").Return(nil, nil)

		r := newRequest(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "nobody@example.com", Password: "x"}, "", nil)
		w := httptest.NewRecorder()
		svc.LoginService(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp models.Response
		decodeBody(t, w, &resp)
		assert.Equal(t, ErrNoAccount.Error(), resp.ErrorDetails)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _, mockKC, _ := newTestService()
		mockKC.On("GetUserByEmail", "ada@example.com").Return(&KeycloakUser{ID: "user-1"}, nil)
		mockKC.On("Login", "ada@example.com", "wrong").Return(nil, &HTTPError{Status: http.StatusUnauthorized, Message: "Invalid user credentials"})

		r := newRequest(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "ada@example.com", Password: "wrong"}, "", nil)
		w := httptest.NewRecorder()
		svc.LoginService(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var resp models.Response
		decodeBody(t, w, &resp)
		assert.Equal(t, ErrIncorrectPassword.Error(), resp.ErrorDetails)
	})

	t.Run("provider down", func(t *testing.T) {
		svc, _, mockKC, _ := newTestService()
		mockKC.On("GetUserByEmail", "ada@example.com").Return(nil, errors.New("connection refused"))

		r := newRequest(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "ada@example.com", Password: "x"}, "", nil)
		w := httptest.NewRecorder()
		svc.LoginService(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRefreshService(t *testing.T) {
	svc, _, mockKC, _ := newTestService()
	mockKC.On("Refresh", "refresh-token").Return(testTokens, nil)

	r := newRequest(t, http.MethodPost, "/api/auth/refresh", models.RefreshRequest{RefreshToken: "refresh-token"}, "", nil)
	w := httptest.NewRecorder()

	svc.RefreshService(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.AuthSessionResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "access-token", resp.Access)
}

func TestLogoutService(t *testing.T) {
	svc, _, mockKC, _ := newTestService()
	mockKC.On("Logout", "refresh-token").Return(nil)

	r := newRequest(t, http.MethodPost, "/api/auth/logout", models.RefreshRequest{RefreshToken: "refresh-token"}, "", nil)
	w := httptest.NewRecorder()

	svc.LogoutService(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockKC.AssertExpectations(t)
}

func TestLogoutService_MissingToken(t *testing.T) {
	svc, _, mockKC, _ := newTestService()

	r := newRequest(t, http.MethodPost, "/api/auth/logout", "{}", "", nil)
	w := httptest.NewRecorder()

	svc.LogoutService(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockKC.AssertNotCalled(t, "Logout", mock.Anything)
}

func TestPasswordResetService(t *testing.T) {
	t.Run("known email", func(t *testing.T) {
		svc, _, mockKC, _ := newTestService()
		mockKC.On("GetUserByEmail", "ada@example.com").Return(&KeycloakUser{ID: "user-1"}, nil)
		mockKC.On("SendResetPassword", "user-1").Return(nil)

		r := newRequest(t, http.MethodPost, "/api/auth/password-reset", models.PasswordResetRequest{Email: "ada@example.com"}, "", nil)
		w := httptest.NewRecorder()
		svc.PasswordResetService(w, r)

		assert.Equal(t, http.StatusAccepted, w.Code)
		mockKC.AssertExpectations(t)
	})

	t.Run("unknown email answers the same", func(t *testing.T) {
		svc, _, mockKC, _ := newTestService()
		mockKC.On("GetUserByEmail", "nobody@example.com").Return(nil, nil)

		r := newRequest(t, http.MethodPost, "/api/auth/password-reset", models.PasswordResetRequest{Email: "nobody@example.com"}, "", nil)
		w := httptest.NewRecorder()
		svc.PasswordResetService(w, r)

		assert.Equal(t, http.StatusAccepted, w.Code)
		mockKC.AssertNotCalled(t, "SendResetPassword", mock.Anything)
	})
}
