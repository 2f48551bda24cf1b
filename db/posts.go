package db

import (
	"database/sql"
	"fmt"

	"github.com/forum-civic/forum-services/internal/geo"
	"github.com/forum-civic/forum-services/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const postColumns = `id, user_id, content, timestamp, latitude, longitude, location_category, location_visible, country, state, city`

func scanPost(row scanner) (models.Post, error) {
	var p models.Post
	var lat, lng sql.NullFloat64
	var category string

	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Content,
		&p.Timestamp,
		&lat,
		&lng,
		&category,
		&p.LocationVisible,
		&p.Country,
		&p.State,
		&p.City); err != nil {
		return p, err
	}

	p.LocationCategory = geo.Scope(category)
	if lat.Valid && lng.Valid {
		p.Location = &geo.Coordinate{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	return p, nil
}

func (f *ForumDB) queryPosts(query string, args ...interface{}) ([]models.Post, error) {
	rows, err := f.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning posts: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return posts, nil
}

// CreatePost stores a post, assigning an ID when it has none.
func (f *ForumDB) CreatePost(post *models.Post) (*models.Post, error) {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	var lat, lng sql.NullFloat64
	if post.Location != nil {
		lat = sql.NullFloat64{Float64: post.Location.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: post.Location.Longitude, Valid: true}
	}

	tx, err := f.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	_, err = f.execQuery(tx, `
		INSERT INTO posts (`+postColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		post.ID, post.UserID, post.Content, post.Timestamp, lat, lng,
		string(post.LocationCategory), post.LocationVisible, post.Country, post.State, post.City)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error inserting post: %w", err)
	}

	if err := f.CommitTransaction(tx); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns a single post, or nil when it does not exist.
func (f *ForumDB) GetPost(postID uuid.UUID) (*models.Post, error) {
	row := f.DB.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = $1`, postID)

	p, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning post: %w", err)
	}
	return &p, nil
}

// ListPostsByScope returns the posts tagged with scope, newest first. Nation,
// state and city scopes are further restricted to the matching place.
func (f *ForumDB) ListPostsByScope(scope geo.Scope, place geo.Place) ([]models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE location_category = $1`
	args := []interface{}{string(scope)}

	where := func(column, value string) {
		args = append(args, value)
		query += fmt.Sprintf(" AND %s = $%d", column, len(args))
	}

	switch scope {
	case geo.ScopeNation:
		where("country", place.Country)
	case geo.ScopeState:
		where("country", place.Country)
		where("state", place.State)
	case geo.ScopeCity:
		where("country", place.Country)
		where("state", place.State)
		where("city", place.City)
	}

	return f.queryPosts(query+` ORDER BY timestamp DESC`, args...)
}

// ListPostsByUser returns every post written by uid, newest first.
func (f *ForumDB) ListPostsByUser(uid string) ([]models.Post, error) {
	return f.queryPosts(`SELECT `+postColumns+` FROM posts WHERE user_id = $1 ORDER BY timestamp DESC`, uid)
}

// ListPostsByUsers returns the posts of all uids merged, newest first.
func (f *ForumDB) ListPostsByUsers(uids []string) ([]models.Post, error) {
	if len(uids) == 0 {
		return []models.Post{}, nil
	}
	return f.queryPosts(`SELECT `+postColumns+` FROM posts WHERE user_id = ANY($1) ORDER BY timestamp DESC`, pq.Array(uids))
}

// DeletePost removes a post. Deleting a missing post is not an error.
func (f *ForumDB) DeletePost(postID uuid.UUID) error {
	tx, err := f.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if _, err := f.execQuery(tx, `DELETE FROM posts WHERE id = $1`, postID); err != nil {
		tx.Rollback()
		return fmt.Errorf("error deleting post: %w", err)
	}

	return f.CommitTransaction(tx)
}
