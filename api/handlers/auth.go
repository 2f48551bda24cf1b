package handlers

import (
	"net/http"

	services "github.com/forum-civic/forum-services/api/services"
)

// @Summary Create an account
// @Description Create an identity and profile, then sign the new user in.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.SignUpRequest true "Account details"
// @Success 201 {object} models.AuthSessionResponse
// @Failure 400 {object} models.Response
// @Failure 409 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /auth/signup [post]
func SignUp(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.SignUpService(w, r)
	}
}

// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthSessionResponse
// @Failure 401 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /auth/login [post]
func Login(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.LoginService(w, r)
	}
}

// @Summary Refresh a session
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.RefreshRequest true "Refresh token"
// @Success 200 {object} models.AuthSessionResponse
// @Failure 400 {object} models.Response
// @Failure 401 {object} models.Response
// @Router /auth/refresh [post]
func Refresh(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.RefreshService(w, r)
	}
}

// @Summary Sign out
// @Tags auth
// @Accept json
// @Param body body models.RefreshRequest true "Refresh token of the session to end"
// @Success 204
// @Failure 400 {object} models.Response
// @Router /auth/logout [post]
func Logout(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.LogoutService(w, r)
	}
}

// @Summary Request a password reset email
// @Description The response does not reveal whether the email has an account.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.PasswordResetRequest true "Account email"
// @Success 202 {object} models.Response
// @Failure 400 {object} models.Response
// @Router /auth/password-reset [post]
func PasswordReset(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.PasswordResetService(w, r)
	}
}
