package services

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forum-civic/forum-services/internal/events"
	"github.com/forum-civic/forum-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
const pixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func TestGetUserService_Me(t *testing.T) {
	svc, mockDB, _, _ := newTestService()

	mockDB.On("GetUser", "user-1").Return(&models.UserInfo{UID: "user-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, nil)

	r := newRequest(t, http.MethodGet, "/api/users/me", nil, "user-1", map[string]string{"user-id": "me"})
	w := httptest.NewRecorder()

	svc.GetUserService(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var user models.UserInfo
	decodeBody(t, w, &user)
	assert.Equal(t, "ada@example.com", user.Email)

	name, ok := svc.Names.Cache.Get("user-1")
	assert.True(t, ok)
	assert.Equal(t, "Ada Lovelace", name)
}

func TestGetUserService_NotFound(t *testing.T) {
	svc, mockDB, _, _ := newTestService()

	mockDB.On("GetUser", "ghost").Return(nil, nil)

	r := newRequest(t, http.MethodGet, "/api/users/ghost", nil, "user-1", map[string]string{"user-id": "ghost"})
	w := httptest.NewRecorder()

	svc.GetUserService(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserService(t *testing.T) {
	svc, mockDB, _, mockPublisher := newTestService()

	svc.Names.Cache.Set("user-1", "Old Name")
	mockDB.On("UpdateUserName", "user-1", "Grace", "Hopper").Return(&models.UserInfo{UID: "user-1", FirstName: "Grace", LastName: "Hopper"}, nil)
	mockPublisher.On("Publish", mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.ProfileUpdated && e.UserID == "user-1" && e.DisplayName == "Grace Hopper"
	})).Return(nil)

	body := models.UpdateUserRequest{FirstName: " Grace ", LastName: "Hopper"}
	r := newRequest(t, http.MethodPut, "/api/users/me", body, "user-1", map[string]string{"user-id": "me"})
	w := httptest.NewRecorder()

	svc.UpdateUserService(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	name, _ := svc.Names.Cache.Get("user-1")
	assert.Equal(t, "Grace Hopper", name)
	mockDB.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestUpdateUserService_PublishFailureStillSucceeds(t *testing.T) {
	svc, mockDB, _, mockPublisher := newTestService()

	mockDB.On("UpdateUserName", "user-1", "Grace", "Hopper").Return(&models.UserInfo{UID: "user-1", FirstName: "Grace", LastName: "Hopper"}, nil)
	mockPublisher.On("Publish", mock.Anything).Return(errors.New("broker unavailable"))

	body := models.UpdateUserRequest{FirstName: "Grace", LastName: "Hopper"}
	r := newRequest(t, http.MethodPut, "/api/users/user-1", body, "user-1", map[string]string{"user-id": "user-1"})
	w := httptest.NewRecorder()

	svc.UpdateUserService(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateUserService_Rejected(t *testing.T) {
	t.Run("another user", func(t *testing.T) {
		svc, mockDB, _, _ := newTestService()

		body := models.UpdateUserRequest{FirstName: "Grace", LastName: "Hopper"}
		r := newRequest(t, http.MethodPut, "/api/users/user-2", body, "user-1", map[string]string{"user-id": "user-2"})
		w := httptest.NewRecorder()

		svc.UpdateUserService(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockDB.AssertNotCalled(t, "UpdateUserName", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing last name", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		body := models.UpdateUserRequest{FirstName: "Grace"}
		r := newRequest(t, http.MethodPut, "/api/users/me", body, "user-1", map[string]string{"user-id": "me"})
		w := httptest.NewRecorder()

		svc.UpdateUserService(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUploadProfilePictureService(t *testing.T) {
	svc, mockDB, _, _ := newTestService()
	store := new(MockObjectStore)
	svc.Objects = store

	key := "profile-pictures/user-1/avatar.png"
	store.On("PutObject", mock.Anything, key, "image/png", mock.MatchedBy(func(data []byte) bool {
		return len(data) > 0
	})).Return(nil)
	mockDB.On("SetProfilePicture", "user-1", key).Return(nil)

	body := models.ProfilePictureRequest{FileName: "avatar.png", FileContent: pixelPNG}
	r := newRequest(t, http.MethodPut, "/api/users/me/profile-picture", body, "user-1", map[string]string{"user-id": "me"})
	w := httptest.NewRecorder()

	svc.UploadProfilePictureService(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ProfilePictureResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, key, resp.Key)
	store.AssertExpectations(t)
	mockDB.AssertExpectations(t)
}

func TestUploadProfilePictureService_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		body   models.ProfilePictureRequest
		status int
	}{
		{"path traversal", models.ProfilePictureRequest{FileName: "../avatar.png", FileContent: pixelPNG}, http.StatusBadRequest},
		{"empty name", models.ProfilePictureRequest{FileContent: pixelPNG}, http.StatusBadRequest},
		{"not base64", models.ProfilePictureRequest{FileName: "a.png", FileContent: "%%%"}, http.StatusBadRequest},
		{"too large", models.ProfilePictureRequest{FileName: "a.png", FileContent: base64.StdEncoding.EncodeToString(make([]byte, maxProfilePictureBytes+1))}, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTestService()
			store := new(MockObjectStore)
			svc.Objects = store

			r := newRequest(t, http.MethodPut, "/api/users/me/profile-picture", tt.body, "user-1", map[string]string{"user-id": "me"})
			w := httptest.NewRecorder()

			svc.UploadProfilePictureService(w, r)

			assert.Equal(t, tt.status, w.Code)
			store.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUploadProfilePictureService_NotConfigured(t *testing.T) {
	svc, _, _, _ := newTestService()

	body := models.ProfilePictureRequest{FileName: "avatar.png", FileContent: pixelPNG}
	r := newRequest(t, http.MethodPut, "/api/users/me/profile-picture", body, "user-1", map[string]string{"user-id": "me"})
	w := httptest.NewRecorder()

	svc.UploadProfilePictureService(w, r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestProfilePictureKey(t *testing.T) {
	assert.Equal(t, "profile-pictures/abc/me.jpg", ProfilePictureKey("abc", "me.jpg"))
}
