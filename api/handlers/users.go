package handlers

import (
	"net/http"

	services "github.com/forum-civic/forum-services/api/services"
)

// @Summary Get a user profile
// @Description {user-id} can be set to "me" to use the token owner's user id.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param user-id path string true "User ID" example(me)
// @Success 200 {object} models.UserInfo
// @Failure 404 {object} string
// @Router /users/{user-id} [get]
func GetUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetUserService(w, r)
	}
}

// @Summary Update the caller's name
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user-id path string true "User ID" example(me)
// @Param body body models.UpdateUserRequest true "New name"
// @Success 200 {object} models.UserInfo
// @Failure 400 {object} models.Response
// @Failure 403 {object} string
// @Router /users/{user-id} [put]
func UpdateUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.UpdateUserService(w, r)
	}
}

// @Summary List a user's posts
// @Tags users posts
// @Produce json
// @Security BearerAuth
// @Param user-id path string true "User ID" example(me)
// @Success 200 {object} models.PostsResponse
// @Router /users/{user-id}/posts [get]
func GetUserPosts(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetUserPostsService(w, r)
	}
}

// @Summary Upload the caller's profile picture
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user-id path string true "User ID" example(me)
// @Param body body models.ProfilePictureRequest true "Base64 encoded image"
// @Success 200 {object} models.ProfilePictureResponse
// @Failure 400 {object} models.Response
// @Failure 413 {object} models.Response
// @Failure 503 {object} models.Response
// @Router /users/{user-id}/profile-picture [put]
func UploadProfilePicture(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.UploadProfilePictureService(w, r)
	}
}
