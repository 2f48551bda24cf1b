package handlers

import (
	"net/http"

	services "github.com/forum-civic/forum-services/api/services"
)

// @Summary Create a post
// @Description Publish a post to a location scope. Neighborhood posts need a location; city, state and nation posts need the matching place fields.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreatePostRequest true "Post"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.Response
// @Failure 401 {object} string
// @Failure 500 {object} models.Response
// @Router /posts [post]
func CreatePost(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.CreatePostService(w, r)
	}
}

// @Summary List posts in a location scope
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param scope query string true "Location scope" Enums(me, neighborhood, city, state, nation, civilization)
// @Param country query string false "Viewer country"
// @Param state query string false "Viewer state"
// @Param city query string false "Viewer city"
// @Param lat query number false "Viewer latitude, required for neighborhood"
// @Param lng query number false "Viewer longitude, required for neighborhood"
// @Success 200 {object} models.PostsResponse
// @Failure 400 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /posts [get]
func GetPosts(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetPostsService(w, r)
	}
}

// @Summary List posts by the caller's friends
// @Tags posts friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PostsResponse
// @Router /posts/friends [get]
func GetFriendsPosts(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetFriendsPostsService(w, r)
	}
}

// @Summary Get a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param post-id path string true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} string
// @Router /posts/{post-id} [get]
func GetPost(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetPostService(w, r)
	}
}

// @Summary Delete a post
// @Description Only the author may delete a post.
// @Tags posts
// @Security BearerAuth
// @Param post-id path string true "Post ID"
// @Success 204
// @Failure 403 {object} string
// @Failure 404 {object} string
// @Router /posts/{post-id} [delete]
func DeletePost(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.DeletePostService(w, r)
	}
}
