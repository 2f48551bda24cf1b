package db

import (
	"database/sql"
	"fmt"

	"github.com/forum-civic/forum-services/models"
	"github.com/lib/pq"
)

const userColumns = `uid, first_name, last_name, email, date_created, profile_picture`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row scanner) (models.UserInfo, error) {
	var u models.UserInfo
	var picture sql.NullString
	if err := row.Scan(&u.UID, &u.FirstName, &u.LastName, &u.Email, &u.DateCreated, &picture); err != nil {
		return u, err
	}
	if picture.Valid {
		u.ProfilePicture = &picture.String
	}
	return u, nil
}

// CreateUser stores a new profile.
func (f *ForumDB) CreateUser(user models.UserInfo) error {
	tx, err := f.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	_, err = f.execQuery(tx, `
		INSERT INTO users (uid, first_name, last_name, email, date_created, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.UID, user.FirstName, user.LastName, user.Email, user.DateCreated, user.ProfilePicture)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error inserting user: %w", err)
	}

	return f.CommitTransaction(tx)
}

// GetUser returns the profile of uid, or nil when there is none.
func (f *ForumDB) GetUser(uid string) (*models.UserInfo, error) {
	row := f.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE uid = $1`, uid)

	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &u, nil
}

// GetUsers returns the profiles that exist among uids, in the order given.
func (f *ForumDB) GetUsers(uids []string) ([]models.UserInfo, error) {
	if len(uids) == 0 {
		return []models.UserInfo{}, nil
	}

	rows, err := f.DB.Query(`SELECT `+userColumns+` FROM users WHERE uid = ANY($1)`, pq.Array(uids))
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	defer rows.Close()

	found := make(map[string]models.UserInfo, len(uids))
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning users: %w", err)
		}
		found[u.UID] = u
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	users := make([]models.UserInfo, 0, len(found))
	for _, uid := range uids {
		if u, ok := found[uid]; ok {
			users = append(users, u)
			delete(found, uid)
		}
	}
	return users, nil
}

// UpdateUserName changes the names on a profile and returns the result, or
// nil when the profile does not exist.
func (f *ForumDB) UpdateUserName(uid, firstName, lastName string) (*models.UserInfo, error) {
	tx, err := f.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	affected, err := f.execQuery(tx, `UPDATE users SET first_name = $1, last_name = $2 WHERE uid = $3`,
		firstName, lastName, uid)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	if affected == 0 {
		tx.Rollback()
		return nil, nil
	}

	if err := f.CommitTransaction(tx); err != nil {
		return nil, err
	}
	return f.GetUser(uid)
}

// SetProfilePicture records the object key of the user's profile picture.
func (f *ForumDB) SetProfilePicture(uid, key string) error {
	tx, err := f.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	affected, err := f.execQuery(tx, `UPDATE users SET profile_picture = $1 WHERE uid = $2`, key, uid)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error updating profile picture: %w", err)
	}
	if affected == 0 {
		tx.Rollback()
		return fmt.Errorf("error updating profile picture: user %s not found", uid)
	}

	return f.CommitTransaction(tx)
}
