package services

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/forum-civic/forum-services/internal/events"
	"github.com/forum-civic/forum-services/models"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const maxProfilePictureBytes = 5 << 20

// ProfilePictureKey is the object key a user's profile picture is stored under.
func ProfilePictureKey(uid, fileName string) string {
	return fmt.Sprintf("profile-pictures/%s/%s", uid, fileName)
}

// GetUserService returns a user's profile. {user-id} may be "me".
func (svc *Service) GetUserService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	userID := resolveUserID(mux.Vars(r)["user-id"], claims)

	user, err := svc.DB.GetUser(userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Database error retrieving user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	if user == nil {
		logger.Warn().Str("user_id", userID).Msg("User not found")
		WriteResponse(w, http.StatusNotFound, nil)
		return
	}

	svc.Names.Cache.Set(user.UID, user.DisplayName())
	WriteResponse(w, http.StatusOK, *user)
}

// UpdateUserService changes the caller's first and last name.
func (svc *Service) UpdateUserService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	userID := resolveUserID(mux.Vars(r)["user-id"], claims)
	if userID != claims.UserID() {
		logger.Warn().Str("user_id", userID).Str("requested_by", claims.UserID()).Msg("Access denied: cannot update another user")
		WriteResponse(w, http.StatusForbidden, nil)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("firstName and lastName are required"))
		return
	}

	user, err := svc.DB.UpdateUserName(userID, firstName, lastName)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Database error updating user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	if user == nil {
		logger.Warn().Str("user_id", userID).Msg("User not found")
		WriteResponse(w, http.StatusNotFound, nil)
		return
	}

	svc.Names.Cache.Set(user.UID, user.DisplayName())

	event := events.NewEvent(events.ProfileUpdated, user.UID)
	event.DisplayName = user.DisplayName()
	svc.publish(r.Context(), event)

	logger.Info().Str("user_id", userID).Msg("User updated successfully")
	WriteResponse(w, http.StatusOK, *user)
}

// UploadProfilePictureService stores a base64 encoded image for the caller.
func (svc *Service) UploadProfilePictureService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	userID := resolveUserID(mux.Vars(r)["user-id"], claims)
	if userID != claims.UserID() {
		WriteResponse(w, http.StatusForbidden, nil)
		return
	}

	if svc.Objects == nil {
		HandleErrResponse(w, http.StatusServiceUnavailable, errors.New("profile picture storage is not configured"))
		return
	}

	var req models.ProfilePictureRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 2*maxProfilePictureBytes)).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return
	}

	fileName := strings.TrimSpace(req.FileName)
	if fileName == "" || fileName != path.Base(fileName) || strings.ContainsAny(fileName, `\`) || fileName == "." || fileName == ".." {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid fileName"))
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.FileContent)
	if err != nil || len(data) == 0 {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("fileContent must be non-empty base64"))
		return
	}
	if len(data) > maxProfilePictureBytes {
		HandleErrResponse(w, http.StatusRequestEntityTooLarge, errors.New("profile picture is too large"))
		return
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	key := ProfilePictureKey(userID, fileName)
	if err := svc.Objects.PutObject(r.Context(), key, contentType, data); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Failed to upload profile picture")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	if err := svc.DB.SetProfilePicture(userID, key); err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Database error saving profile picture")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info().Str("user_id", userID).Str("key", key).Msg("Profile picture uploaded")
	WriteResponse(w, http.StatusOK, models.ProfilePictureResponse{Key: key})
}
