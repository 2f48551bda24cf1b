package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/forum-civic/forum-services/api/middleware"
	"github.com/forum-civic/forum-services/internal/authn"
	"github.com/forum-civic/forum-services/models"
	"github.com/lib/pq"
)

// TimeFormat is used for every expiry timestamp in responses.
const TimeFormat string = "2006-01-02T15:04:05Z"

// MeAlias may be used in place of the caller's own user id in paths.
const MeAlias = "me"

func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}, location ...string) {

	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most curent data
	w.Header().Set("Cache-Control", "max-age=0")

	// Conditionally set the Location header if provided
	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// HandleErrResponse writes err as a models.Response. Postgres errors expose
// their condition name as the error code.
func HandleErrResponse(w http.ResponseWriter, statusCode int, err error) {
	var pqErr *pq.Error

	response := models.ErrorResponse("", err.Error())
	if errors.As(err, &pqErr) {
		response = models.ErrorResponse(pqErr.Code.Name(), pqErr.Message)
	}

	WriteResponse(w, statusCode, response)
}

func claimsFromRequest(r *http.Request) (authn.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ClaimsKey).(authn.Claims)
	if !ok || claims.UserID() == "" {
		return authn.Claims{}, false
	}
	return claims, true
}

// resolveUserID expands the "me" alias to the caller's user id.
func resolveUserID(userID string, claims authn.Claims) string {
	if userID == MeAlias || userID == "" {
		return claims.UserID()
	}
	return userID
}

func newSessionResponse(userID string, tokens *TokenResponse) models.AuthSessionResponse {
	now := time.Now().UTC()
	response := models.AuthSessionResponse{
		UserID:       userID,
		Access:       tokens.Access,
		AccessExpiry: now.Add(time.Duration(tokens.ExpiresIn) * time.Second).Format(TimeFormat),
		Refresh:      tokens.Refresh,
		Scope:        tokens.Scope,
	}
	if tokens.Refresh != "" {
		response.RefreshExpiry = now.Add(time.Duration(tokens.RefreshExpiresIn) * time.Second).Format(TimeFormat)
	}
	return response
}
