package store

import (
	"encoding/json"
	"fmt"
	"strings"

	bolt "go.etcd.io/bbolt"

	"github.com/chalopaltai/somity-ledger/internal/models"
)

// Users returns every login account.
func (s *Store) Users() ([]models.User, error) {
	users := []models.User{}
	err := s.read(func(b *bolt.Bucket) error {
		getList(b, KeyUsers, &users)
		return nil
	})
	return users, err
}

// SaveUsers replaces the user collection wholesale.
func (s *Store) SaveUsers(users []models.User) error {
	return s.write(func(b *bolt.Bucket) error {
		return putList(b, KeyUsers, users)
	})
}

// AddUser appends a login account.
func (s *Store) AddUser(u models.User) error {
	return s.write(func(b *bolt.Bucket) error {
		users := []models.User{}
		getList(b, KeyUsers, &users)
		users = append(users, u)
		return putList(b, KeyUsers, users)
	})
}

// DeleteUser removes a login account by id. The last remaining account
// cannot be removed.
func (s *Store) DeleteUser(id string) error {
	return s.write(func(b *bolt.Bucket) error {
		users := []models.User{}
		getList(b, KeyUsers, &users)
		if len(users) <= 1 {
			return ErrLastUser
		}
		kept := users[:0]
		found := false
		for _, u := range users {
			if u.ID == id {
				found = true
				continue
			}
			kept = append(kept, u)
		}
		if !found {
			return ErrNotFound
		}
		return putList(b, KeyUsers, kept)
	})
}

// UpdateUser replaces the account with the same id, and refreshes the session
// slot when it points at that account.
func (s *Store) UpdateUser(updated models.User) error {
	return s.write(func(b *bolt.Bucket) error {
		users := []models.User{}
		getList(b, KeyUsers, &users)
		found := false
		for i, u := range users {
			if u.ID == updated.ID {
				users[i] = updated
				found = true
				break
			}
		}
		if !found {
			return ErrNotFound
		}
		if err := putList(b, KeyUsers, users); err != nil {
			return err
		}

		if data := b.Get([]byte(KeyCurrentUser)); data != nil {
			var current models.User
			if json.Unmarshal(data, &current) == nil && current.ID == updated.ID {
				return putList(b, KeyCurrentUser, updated)
			}
		}
		return nil
	})
}

// FindUserByUsername looks an account up by username, case-insensitively.
func (s *Store) FindUserByUsername(username string) (models.User, error) {
	users, err := s.Users()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
}

// CurrentUser returns the logged-in user, or nil when nobody is logged in.
func (s *Store) CurrentUser() (*models.User, error) {
	var user *models.User
	err := s.read(func(b *bolt.Bucket) error {
		data := b.Get([]byte(KeyCurrentUser))
		if data == nil {
			return nil
		}
		var u models.User
		if err := json.Unmarshal(data, &u); err != nil {
			return nil // corrupt slot degrades to logged-out
		}
		user = &u
		return nil
	})
	return user, err
}

// SetCurrentUser stores the session pointer; nil clears it (logout).
func (s *Store) SetCurrentUser(u *models.User) error {
	return s.write(func(b *bolt.Bucket) error {
		if u == nil {
			return b.Delete([]byte(KeyCurrentUser))
		}
		return putList(b, KeyCurrentUser, u)
	})
}
