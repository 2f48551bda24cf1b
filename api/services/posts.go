package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/forum-civic/forum-services/internal/events"
	"github.com/forum-civic/forum-services/internal/geo"
	"github.com/forum-civic/forum-services/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const maxPostLength = 5000

// CreatePostService publishes a post from the authenticated user.
func (svc *Service) CreatePostService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return
	}

	post, err := newPost(claims.UserID(), req)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid post")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	created, err := svc.DB.CreatePost(post)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create post in database")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	posts := []models.Post{*created}
	if err := svc.Names.ApplyNames(r.Context(), posts); err != nil {
		logger.Warn().Err(err).Msg("Failed to resolve author name")
	}

	event := events.NewEvent(events.PostCreated, created.UserID)
	event.PostID = created.ID.String()
	svc.publish(r.Context(), event)

	logger.Info().Str("post_id", created.ID.String()).Str("category", string(created.LocationCategory)).Msg("Post created successfully")

	location := fmt.Sprintf("%s/%s", strings.TrimRight(r.URL.Path, "/"), created.ID)
	WriteResponse(w, http.StatusCreated, posts[0], location)
}

// newPost validates a create request and builds the post to store.
func newPost(userID string, req models.CreatePostRequest) (*models.Post, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errors.New("content is required")
	}
	if utf8.RuneCountInString(content) > maxPostLength {
		return nil, fmt.Errorf("content must be at most %d characters", maxPostLength)
	}

	scope, err := geo.ParseScope(req.LocationCategory)
	if err != nil {
		return nil, err
	}

	place := geo.Place{Country: req.Country, State: req.State, City: req.City}.Normalize()
	if missing := place.Missing(scope); len(missing) > 0 {
		return nil, fmt.Errorf("%s posts require %s", scope, strings.Join(missing, ", "))
	}

	if req.Location != nil && !req.Location.Valid() {
		return nil, errors.New("location is out of range")
	}
	if scope == geo.ScopeNeighborhood && req.Location == nil {
		return nil, errors.New("neighborhood posts require a location")
	}

	return &models.Post{
		UserID:           userID,
		Content:          content,
		Timestamp:        time.Now().UTC(),
		Location:         req.Location,
		LocationCategory: scope,
		LocationVisible:  req.LocationVisible,
		Country:          place.Country,
		State:            place.State,
		City:             place.City,
	}, nil
}

// GetPostsService lists the posts of one location scope as seen by the caller.
// The viewer's place and coordinate come from the query string.
func (svc *Service) GetPostsService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	query := r.URL.Query()
	scope, err := geo.ParseScope(query.Get("scope"))
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid scope")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	place := geo.Place{Country: query.Get("country"), State: query.Get("state"), City: query.Get("city")}.Normalize()
	if missing := place.Missing(scope); len(missing) > 0 {
		HandleErrResponse(w, http.StatusBadRequest, fmt.Errorf("%s scope requires %s", scope, strings.Join(missing, ", ")))
		return
	}

	var viewer *geo.Coordinate
	if scope == geo.ScopeNeighborhood {
		viewer, err = parseViewerCoordinate(query.Get("lat"), query.Get("lng"))
		if err != nil {
			HandleErrResponse(w, http.StatusBadRequest, err)
			return
		}
	}

	var posts []models.Post
	if scope == geo.ScopeMe {
		posts, err = svc.DB.ListPostsByUser(claims.UserID())
	} else {
		posts, err = svc.DB.ListPostsByScope(scope, place)
	}
	if err != nil {
		logger.Error().Err(err).Str("category", string(scope)).Msg("Failed to retrieve posts")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	if viewer != nil {
		posts = FilterNeighborhood(posts, *viewer, svc.neighborhoodRadius())
	}

	svc.writePosts(w, r, claims.UserID(), posts)
}

// GetPostService returns a single post.
func (svc *Service) GetPostService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	postID, err := uuid.Parse(mux.Vars(r)["post-id"])
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid post id"))
		return
	}

	post, err := svc.DB.GetPost(postID)
	if err != nil {
		logger.Error().Err(err).Str("post_id", postID.String()).Msg("Database error retrieving post")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	if post == nil {
		logger.Warn().Str("post_id", postID.String()).Msg("Post not found")
		WriteResponse(w, http.StatusNotFound, nil)
		return
	}

	posts := []models.Post{*post}
	if err := svc.Names.ApplyNames(r.Context(), posts); err != nil {
		logger.Warn().Err(err).Msg("Failed to resolve author name")
	}
	hideCoordinates(posts, claims.UserID())

	WriteResponse(w, http.StatusOK, posts[0])
}

// GetUserPostsService lists every post written by one user.
func (svc *Service) GetUserPostsService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	userID := resolveUserID(mux.Vars(r)["user-id"], claims)

	posts, err := svc.DB.ListPostsByUser(userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Failed to retrieve user posts")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	svc.writePosts(w, r, claims.UserID(), posts)
}

// GetFriendsPostsService merges the posts of everyone on the caller's friend list.
func (svc *Service) GetFriendsPostsService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	friendIDs, err := svc.DB.GetFriendIDs(claims.UserID())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve friend list")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	if len(friendIDs) == 0 {
		svc.writePosts(w, r, claims.UserID(), nil)
		return
	}

	posts, err := svc.DB.ListPostsByUsers(friendIDs)
	if err != nil {
		logger.Error().Err(err).Int("friend_count", len(friendIDs)).Msg("Failed to retrieve friends' posts")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	svc.writePosts(w, r, claims.UserID(), posts)
}

// DeletePostService deletes one of the caller's posts.
func (svc *Service) DeletePostService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	claims, ok := claimsFromRequest(r)
	if !ok {
		logger.Warn().Msg("Unauthorized request: missing claims")
		WriteResponse(w, http.StatusUnauthorized, nil)
		return
	}

	postID, err := uuid.Parse(mux.Vars(r)["post-id"])
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid post id"))
		return
	}

	post, err := svc.DB.GetPost(postID)
	if err != nil {
		logger.Error().Err(err).Str("post_id", postID.String()).Msg("Database error retrieving post")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	if post == nil {
		logger.Warn().Str("post_id", postID.String()).Msg("Post not found")
		WriteResponse(w, http.StatusNotFound, nil)
		return
	}

	if post.UserID != claims.UserID() {
		logger.Warn().Str("post_id", postID.String()).Str("requested_by", claims.UserID()).Msg("Access denied: User not author of post")
		WriteResponse(w, http.StatusForbidden, nil)
		return
	}

	if err := svc.DB.DeletePost(postID); err != nil {
		logger.Error().Err(err).Str("post_id", postID.String()).Msg("Database error deleting post")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	event := events.NewEvent(events.PostDeleted, post.UserID)
	event.PostID = postID.String()
	svc.publish(r.Context(), event)

	logger.Info().Str("post_id", postID.String()).Msg("Post deleted successfully")
	WriteResponse(w, http.StatusNoContent, nil)
}

func (svc *Service) writePosts(w http.ResponseWriter, r *http.Request, viewerID string, posts []models.Post) {
	logger := zerolog.Ctx(r.Context())

	if posts == nil {
		posts = []models.Post{}
	}

	if err := svc.Names.ApplyNames(r.Context(), posts); err != nil {
		logger.Error().Err(err).Msg("Failed to resolve author names")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	hideCoordinates(posts, viewerID)

	logger.Info().Int("post_count", len(posts)).Msg("Successfully retrieved posts")
	WriteResponse(w, http.StatusOK, models.PostsResponse{Posts: posts})
}

// FilterNeighborhood keeps the posts with a coordinate within miles of viewer.
func FilterNeighborhood(posts []models.Post, viewer geo.Coordinate, miles float64) []models.Post {
	nearby := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Location == nil {
			continue
		}
		if geo.WithinRadius(viewer, *p.Location, miles) {
			nearby = append(nearby, p)
		}
	}
	return nearby
}

// hideCoordinates strips the coordinate from posts whose author did not make
// it visible, unless the viewer is the author.
func hideCoordinates(posts []models.Post, viewerID string) {
	for i := range posts {
		if !posts[i].LocationVisible && posts[i].UserID != viewerID {
			posts[i].Location = nil
		}
	}
}

func parseViewerCoordinate(lat, lng string) (*geo.Coordinate, error) {
	if lat == "" || lng == "" {
		return nil, errors.New("neighborhood scope requires lat and lng")
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lat: %w", err)
	}
	longitude, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lng: %w", err)
	}

	c := geo.Coordinate{Latitude: latitude, Longitude: longitude}
	if !c.Valid() {
		return nil, errors.New("lat or lng out of range")
	}
	return &c, nil
}
