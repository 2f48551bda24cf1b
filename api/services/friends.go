package services

import (
	"errors"
	"net/http"

	"github.com/forum-civic/forum-services/models"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// AddFriendService adds {friend-id} to the caller's friend list.
func (svc *Service) AddFriendService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	friendID := mux.Vars(r)["friend-id"]
	if friendID == "" || friendID == MeAlias || friendID == claims.UserID() {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("cannot add yourself as a friend"))
		return
	}

	friend, err := svc.DB.GetUser(friendID)
	if err != nil {
		logger.Error().Err(err).Str("friend_id", friendID).Msg("Database error retrieving user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	if friend == nil {
		logger.Warn().Str("friend_id", friendID).Msg("Friend not found")
		WriteResponse(w, http.StatusNotFound, nil)
		return
	}

	if err := svc.DB.AddFriend(claims.UserID(), friendID); err != nil {
		logger.Error().Err(err).Str("friend_id", friendID).Msg("Database error adding friend")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info().Str("friend_id", friendID).Msg("Friend added")
	WriteResponse(w, http.StatusNoContent, nil)
}

// GetFriendIDsService returns the ids on the caller's friend list.
func (svc *Service) GetFriendIDsService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	ids, err := svc.DB.GetFriendIDs(claims.UserID())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve friend list")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	WriteResponse(w, http.StatusOK, models.FriendIDsResponse{FriendIDs: ids})
}

// GetFriendsService returns the profiles of the caller's friends. Friends
// whose profile no longer exists are left out.
func (svc *Service) GetFriendsService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	ids, err := svc.DB.GetFriendIDs(claims.UserID())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve friend list")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	friends, err := svc.DB.GetUsers(ids)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve friend profiles")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	if friends == nil {
		friends = []models.UserInfo{}
	}

	for _, f := range friends {
		svc.Names.Cache.Set(f.UID, f.DisplayName())
	}

	logger.Info().Int("friend_count", len(friends)).Msg("Successfully retrieved friends")
	WriteResponse(w, http.StatusOK, models.FriendsResponse{Friends: friends})
}
