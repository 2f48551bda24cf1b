package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/forum-civic/forum-services/internal/geo"
	"github.com/forum-civic/forum-services/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var forumDB *ForumDB

// setupPostgresContainer initializes a PostgreSQL container for testing
func setupPostgresContainer() (*sql.DB, func(), error) {
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:13",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := postgresC.Host(ctx)
	if err != nil {
		postgresC.Terminate(ctx)
		return nil, nil, fmt.Errorf("could not get container host: %w", err)
	}
	port, err := postgresC.MappedPort(ctx, "5432/tcp")
	if err != nil {
		postgresC.Terminate(ctx)
		return nil, nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	connStr := fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, port.Port())

	dbConn, err := sql.Open("postgres", connStr)
	if err != nil {
		postgresC.Terminate(ctx)
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = dbConn.Ping(); err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if err != nil {
		dbConn.Close()
		postgresC.Terminate(ctx)
		return nil, nil, fmt.Errorf("database not reachable: %w", err)
	}

	cleanup := func() {
		dbConn.Close()
		postgresC.Terminate(ctx)
	}
	return dbConn, cleanup, nil
}

// TestMain starts a shared Postgres container when FORUM_INTEGRATION_TESTS is set.
func TestMain(m *testing.M) {
	if os.Getenv("FORUM_INTEGRATION_TESTS") == "" {
		fmt.Println("skipping store tests: FORUM_INTEGRATION_TESTS not set")
		os.Exit(0)
	}

	sharedDB, cleanup, err := setupPostgresContainer()
	if err != nil {
		fmt.Printf("Could not set up PostgreSQL container: %v\n", err)
		os.Exit(1)
	}

	forumDB = &ForumDB{DB: sharedDB}
	if err := forumDB.Migrate(); err != nil {
		cleanup()
		fmt.Printf("Could not run migrations: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func newUser(t *testing.T, first, last string) models.UserInfo {
	t.Helper()
	u := models.UserInfo{
		UID:         uuid.NewString(),
		FirstName:   first,
		LastName:    last,
		Email:       uuid.NewString() + "@example.com",
		DateCreated: time.Now().UTC(),
	}
	require.NoError(t, forumDB.CreateUser(u))
	return u
}

func TestUsers(t *testing.T) {
	u := newUser(t, "Ada", "Lovelace")

	got, err := forumDB.GetUser(u.UID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Nil(t, got.ProfilePicture)

	missing, err := forumDB.GetUser("nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	updated, err := forumDB.UpdateUserName(u.UID, "Augusta", "King")
	require.NoError(t, err)
	assert.Equal(t, "Augusta King", updated.DisplayName())

	none, err := forumDB.UpdateUserName("nobody", "a", "b")
	assert.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, forumDB.SetProfilePicture(u.UID, "profile-pictures/x/me.png"))
	got, err = forumDB.GetUser(u.UID)
	require.NoError(t, err)
	require.NotNil(t, got.ProfilePicture)
	assert.Equal(t, "profile-pictures/x/me.png", *got.ProfilePicture)

	other := newUser(t, "Grace", "Hopper")
	users, err := forumDB.GetUsers([]string{other.UID, "nobody", u.UID})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, other.UID, users[0].UID)
	assert.Equal(t, u.UID, users[1].UID)
}

func TestFriendsUnion(t *testing.T) {
	uid := uuid.NewString()

	ids, err := forumDB.GetFriendIDs(uid)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, forumDB.InitFriends(uid))
	require.NoError(t, forumDB.AddFriend(uid, "b"))
	require.NoError(t, forumDB.AddFriend(uid, "a"))
	require.NoError(t, forumDB.AddFriend(uid, "b"))

	ids, err = forumDB.GetFriendIDs(uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids)

	// Adding without a prior InitFriends creates the row.
	other := uuid.NewString()
	require.NoError(t, forumDB.AddFriend(other, "c"))
	ids, err = forumDB.GetFriendIDs(other)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids)
}

func TestPostsByScope(t *testing.T) {
	author := uuid.NewString()
	base := time.Now().UTC().Truncate(time.Millisecond)
	country := "Country-" + uuid.NewString()

	create := func(scope geo.Scope, place geo.Place, offset time.Duration) *models.Post {
		p, err := forumDB.CreatePost(&models.Post{
			UserID:           author,
			Content:          string(scope) + " post",
			Timestamp:        base.Add(offset),
			LocationCategory: scope,
			Country:          place.Country,
			State:            place.State,
			City:             place.City,
			Location:         &geo.Coordinate{Latitude: 30.27, Longitude: -97.74},
		})
		require.NoError(t, err)
		return p
	}

	austin := geo.Place{Country: country, State: "Texas", City: "Austin"}
	dallas := geo.Place{Country: country, State: "Texas", City: "Dallas"}
	older := create(geo.ScopeCity, austin, 0)
	newer := create(geo.ScopeCity, austin, time.Minute)
	create(geo.ScopeCity, dallas, 2*time.Minute)
	create(geo.ScopeState, austin, 0)

	posts, err := forumDB.ListPostsByScope(geo.ScopeCity, austin)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
	require.NotNil(t, posts[0].Location)
	assert.InDelta(t, 30.27, posts[0].Location.Latitude, 1e-9)

	posts, err = forumDB.ListPostsByScope(geo.ScopeState, geo.Place{Country: country, State: "Texas"})
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	posts, err = forumDB.ListPostsByUser(author)
	require.NoError(t, err)
	assert.Len(t, posts, 4)

	posts, err = forumDB.ListPostsByUsers([]string{author, "nobody"})
	require.NoError(t, err)
	assert.Len(t, posts, 4)

	got, err := forumDB.GetPost(older.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "city post", got.Content)

	require.NoError(t, forumDB.DeletePost(older.ID))
	got, err = forumDB.GetPost(older.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostWithoutCoordinate(t *testing.T) {
	p, err := forumDB.CreatePost(&models.Post{
		UserID:           uuid.NewString(),
		Content:          "no gps",
		Timestamp:        time.Now().UTC(),
		LocationCategory: geo.ScopeCivilization,
	})
	require.NoError(t, err)

	got, err := forumDB.GetPost(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Location)
	assert.Equal(t, geo.ScopeCivilization, got.LocationCategory)
}
