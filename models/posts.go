package models

import (
	"time"

	"github.com/forum-civic/forum-services/internal/geo"
	"github.com/google/uuid"
)

// Post is a message published to a location scope. Posts are never edited.
type Post struct {
	ID               uuid.UUID       `json:"id"`
	UserID           string          `json:"userId"`
	UserName         string          `json:"userName"`
	Content          string          `json:"content"`
	Timestamp        time.Time       `json:"timestamp"`
	Location         *geo.Coordinate `json:"location,omitempty"`
	LocationCategory geo.Scope       `json:"locationCategory"`
	LocationVisible  bool            `json:"locationVisible"`
	Country          string          `json:"country"`
	State            string          `json:"state"`
	City             string          `json:"city"`
}

// Place returns the administrative location of the post.
func (p Post) Place() geo.Place {
	return geo.Place{Country: p.Country, State: p.State, City: p.City}
}

type CreatePostRequest struct {
	Content          string          `json:"content"`
	LocationCategory string          `json:"locationCategory"`
	LocationVisible  bool            `json:"locationVisible"`
	Location         *geo.Coordinate `json:"location,omitempty"`
	Country          string          `json:"country"`
	State            string          `json:"state"`
	City             string          `json:"city"`
}

type PostsResponse struct {
	Posts []Post `json:"posts"`
}
