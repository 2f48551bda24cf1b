package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/forum-civic/forum-services/models"
	"github.com/rs/zerolog"
)

const minPasswordLength = 6

var (
	ErrNoAccount         = errors.New("No account found with this email.")
	ErrIncorrectPassword = errors.New("Incorrect password. Please try again.")
)

// writeIdentityError relays the status of an identity provider error.
func writeIdentityError(w http.ResponseWriter, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		HandleErrResponse(w, httpErr.Status, httpErr)
		return
	}
	HandleErrResponse(w, http.StatusInternalServerError, err)
}

func validateSignUp(req *models.SignUpRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return errors.New("a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if req.FirstName == "" || req.LastName == "" {
		return errors.New("firstName and lastName are required")
	}
	return nil
}

// SignUpService creates an account, its profile and an empty friend list,
// then signs the new user in.
func (svc *Service) SignUpService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return
	}

	if err := validateSignUp(&req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	uid, err := svc.KC.CreateUser(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to create identity")
		writeIdentityError(w, err)
		return
	}

	user := models.UserInfo{
		UID:         uid,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateCreated: time.Now().UTC(),
	}
	if err := svc.DB.CreateUser(user); err != nil {
		logger.Error().Err(err).Str("user_id", uid).Msg("Failed to store user profile")
		svc.removeIdentity(r, uid)
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	if err := svc.DB.InitFriends(uid); err != nil {
		logger.Error().Err(err).Str("user_id", uid).Msg("Failed to initialise friend list")
		svc.removeIdentity(r, uid)
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	svc.Names.Cache.Set(uid, user.DisplayName())
	svc.sendWelcomeEmail(r, user)

	tokens, err := svc.KC.Login(req.Email, req.Password)
	if err != nil {
		logger.Error().Err(err).Str("user_id", uid).Msg("Failed to sign in new user")
		writeIdentityError(w, err)
		return
	}

	logger.Info().Str("user_id", uid).Msg("User signed up successfully")
	WriteResponse(w, http.StatusCreated, newSessionResponse(uid, tokens), "/users/"+uid)
}

// removeIdentity deletes an identity whose profile could not be stored, so
// the email can sign up again.
func (svc *Service) removeIdentity(r *http.Request, uid string) {
	if err := svc.KC.DeleteUser(uid); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("user_id", uid).Msg("Failed to remove identity after failed sign up")
	}
}

func (svc *Service) sendWelcomeEmail(r *http.Request, user models.UserInfo) {
	if svc.Mailer == nil {
		return
	}

	body := fmt.Sprintf("Hi %s,\n\nWelcome to Forum. You can now post to your neighborhood, city, state and beyond.\n", user.FirstName)
	if err := svc.Mailer.SendEmail(r.Context(), user.Email, "Welcome to Forum", body); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("user_id", user.UID).Msg("Failed to send welcome email")
	}
}

// LoginService signs a user in with email and password.
func (svc *Service) LoginService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("email and password are required"))
		return
	}

	account, err := svc.KC.GetUserByEmail(email)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to look up account")
		writeIdentityError(w, err)
		return
	}
	if account == nil {
		HandleErrResponse(w, http.StatusNotFound, ErrNoAccount)
		return
	}

	tokens, err := svc.KC.Login(email, req.Password)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusUnauthorized {
			HandleErrResponse(w, http.StatusUnauthorized, ErrIncorrectPassword)
			return
		}
		logger.Error().Err(err).Msg("Failed to sign in")
		writeIdentityError(w, err)
		return
	}

	logger.Info().Str("user_id", account.ID).Msg("User signed in")
	WriteResponse(w, http.StatusOK, newSessionResponse(account.ID, tokens))
}

// RefreshService exchanges a refresh token for a new session.
func (svc *Service) RefreshService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("refreshToken is required"))
		return
	}

	tokens, err := svc.KC.Refresh(req.RefreshToken)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to refresh session")
		writeIdentityError(w, err)
		return
	}

	WriteResponse(w, http.StatusOK, newSessionResponse("", tokens))
}

// LogoutService ends the session of the given refresh token.
func (svc *Service) LogoutService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("refreshToken is required"))
		return
	}

	if err := svc.KC.Logout(req.RefreshToken); err != nil {
		logger.Warn().Err(err).Msg("Failed to sign out")
		writeIdentityError(w, err)
		return
	}

	WriteResponse(w, http.StatusNoContent, nil)
}

// PasswordResetService emails a reset link if the account exists. The
// response is the same either way.
func (svc *Service) PasswordResetService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("email is required"))
		return
	}

	account, err := svc.KC.GetUserByEmail(strings.TrimSpace(req.Email))
	switch {
	case err != nil:
		logger.Error().Err(err).Msg("Failed to look up account for password reset")
	case account == nil:
		logger.Info().Msg("Password reset requested for unknown email")
	default:
		if err := svc.KC.SendResetPassword(account.ID); err != nil {
			logger.Error().Err(err).Str("user_id", account.ID).Msg("Failed to send password reset")
		}
	}

	WriteResponse(w, http.StatusAccepted, models.Response{Success: 1})
}
