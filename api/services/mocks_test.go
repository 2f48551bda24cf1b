package services

import (
	"context"

	"github.com/forum-civic/forum-services/internal/events"
	"github.com/forum-civic/forum-services/internal/geo"
	"github.com/forum-civic/forum-services/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockForumDB struct {
	mock.Mock
}

type MockKeycloakClient struct {
	mock.Mock
}

type MockEventPublisher struct {
	mock.Mock
}

type MockMailer struct {
	mock.Mock
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockForumDB) CreateUser(user models.UserInfo) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockForumDB) GetUser(uid string) (*models.UserInfo, error) {
	args := m.Called(uid)
	user, _ := args.Get(0).(*models.UserInfo)
	return user, args.Error(1)
}

func (m *MockForumDB) GetUsers(uids []string) ([]models.UserInfo, error) {
	args := m.Called(uids)
	users, _ := args.Get(0).([]models.UserInfo)
	return users, args.Error(1)
}

func (m *MockForumDB) UpdateUserName(uid, firstName, lastName string) (*models.UserInfo, error) {
	args := m.Called(uid, firstName, lastName)
	user, _ := args.Get(0).(*models.UserInfo)
	return user, args.Error(1)
}

func (m *MockForumDB) SetProfilePicture(uid, key string) error {
	args := m.Called(uid, key)
	return args.Error(0)
}

func (m *MockForumDB) InitFriends(uid string) error {
	args := m.Called(uid)
	return args.Error(0)
}

func (m *MockForumDB) AddFriend(uid, friendUID string) error {
	args := m.Called(uid, friendUID)
	return args.Error(0)
}

func (m *MockForumDB) GetFriendIDs(uid string) ([]string, error) {
	args := m.Called(uid)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockForumDB) CreatePost(post *models.Post) (*models.Post, error) {
	args := m.Called(post)
	created, _ := args.Get(0).(*models.Post)
	return created, args.Error(1)
}

func (m *MockForumDB) GetPost(postID uuid.UUID) (*models.Post, error) {
	args := m.Called(postID)
	post, _ := args.Get(0).(*models.Post)
	return post, args.Error(1)
}

func (m *MockForumDB) ListPostsByScope(scope geo.Scope, place geo.Place) ([]models.Post, error) {
	args := m.Called(scope, place)
	posts, _ := args.Get(0).([]models.Post)
	return posts, args.Error(1)
}

func (m *MockForumDB) ListPostsByUser(uid string) ([]models.Post, error) {
	args := m.Called(uid)
	posts, _ := args.Get(0).([]models.Post)
	return posts, args.Error(1)
}

func (m *MockForumDB) ListPostsByUsers(uids []string) ([]models.Post, error) {
	args := m.Called(uids)
	posts, _ := args.Get(0).([]models.Post)
	return posts, args.Error(1)
}

func (m *MockForumDB) DeletePost(postID uuid.UUID) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockKeycloakClient) CreateUser(email, password, firstName, lastName string) (string, error) {
	args := m.Called(email, password, firstName, lastName)
	return args.String(0), args.Error(1)
}

func (m *MockKeycloakClient) GetUserByEmail(email string) (*KeycloakUser, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*KeycloakUser)
	return user, args.Error(1)
}

func (m *MockKeycloakClient) DeleteUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockKeycloakClient) Login(email, password string) (*TokenResponse, error) {
	args := m.Called(email, password)
	tokens, _ := args.Get(0).(*TokenResponse)
	return tokens, args.Error(1)
}

func (m *MockKeycloakClient) Refresh(refreshToken string) (*TokenResponse, error) {
	args := m.Called(refreshToken)
	tokens, _ := args.Get(0).(*TokenResponse)
	return tokens, args.Error(1)
}

func (m *MockKeycloakClient) Logout(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockKeycloakClient) SendResetPassword(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() {}

func (m *MockMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func (m *MockObjectStore) PutObject(ctx context.Context, key, contentType string, data []byte) error {
	args := m.Called(ctx, key, contentType, data)
	return args.Error(0)
}
