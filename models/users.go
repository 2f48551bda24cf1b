package models

import (
	"strings"
	"time"
)

// UnknownUserName is shown in place of authors whose profile cannot be found.
const UnknownUserName = "Unknown User"

// UserInfo is the profile stored for every account.
type UserInfo struct {
	UID            string    `json:"uid"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	DateCreated    time.Time `json:"dateCreated"`
	ProfilePicture *string   `json:"profilePicture"`
}

// DisplayName joins the first and last name.
func (u UserInfo) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return UnknownUserName
	}
	return name
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ProfilePictureRequest carries a base64 encoded image.
type ProfilePictureRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	FileContent string `json:"fileContent"`
}

type ProfilePictureResponse struct {
	Key string `json:"key"`
}

type FriendsResponse struct {
	Friends []UserInfo `json:"friends"`
}

type FriendIDsResponse struct {
	FriendIDs []string `json:"friendIds"`
}
