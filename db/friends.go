package db

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// InitFriends creates an empty friend list for uid if none exists.
func (f *ForumDB) InitFriends(uid string) error {
	tx, err := f.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	_, err = f.execQuery(tx, `
		INSERT INTO friends (user_id, friends_list, time)
		VALUES ($1, '{}', NOW())
		ON CONFLICT (user_id) DO NOTHING`, uid)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error initialising friends: %w", err)
	}

	return f.CommitTransaction(tx)
}

// AddFriend adds friendUID to the friend list of uid. Adding an existing
// friend leaves the list unchanged.
func (f *ForumDB) AddFriend(uid, friendUID string) error {
	tx, err := f.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	_, err = f.execQuery(tx, `
		INSERT INTO friends (user_id, friends_list, time)
		VALUES ($1, ARRAY[$2::text], NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			friends_list = CASE
				WHEN $2::text = ANY(friends.friends_list) THEN friends.friends_list
				ELSE array_append(friends.friends_list, $2::text)
			END,
			time = NOW()`, uid, friendUID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error adding friend: %w", err)
	}

	return f.CommitTransaction(tx)
}

// GetFriendIDs returns the friend list of uid in the order friends were added.
func (f *ForumDB) GetFriendIDs(uid string) ([]string, error) {
	var ids []string
	err := f.DB.QueryRow(`SELECT friends_list FROM friends WHERE user_id = $1`, uid).Scan(pq.Array(&ids))
	if err != nil {
		if err == sql.ErrNoRows {
			return []string{}, nil
		}
		return nil, fmt.Errorf("error retrieving friends: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
