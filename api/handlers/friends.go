package handlers

import (
	"net/http"

	services "github.com/forum-civic/forum-services/api/services"
)

// @Summary List the caller's friends
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FriendsResponse
// @Router /friends [get]
func GetFriends(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetFriendsService(w, r)
	}
}

// @Summary List the ids on the caller's friend list
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FriendIDsResponse
// @Router /friends/ids [get]
func GetFriendIDs(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetFriendIDsService(w, r)
	}
}

// @Summary Add a friend
// @Description Adding someone already on the list is a no-op.
// @Tags friends
// @Security BearerAuth
// @Param friend-id path string true "User ID of the friend"
// @Success 204
// @Failure 400 {object} models.Response
// @Failure 404 {object} string
// @Router /friends/{friend-id} [put]
func AddFriend(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.AddFriendService(w, r)
	}
}
