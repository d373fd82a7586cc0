package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/chalopaltai/somity-ledger/internal/models"
)

// Members returns every enrolled member.
func (s *Store) Members() ([]models.Member, error) {
	members := []models.Member{}
	err := s.read(func(b *bolt.Bucket) error {
		getList(b, KeyMembers, &members)
		return nil
	})
	return members, err
}

// SaveMembers replaces the member collection wholesale.
func (s *Store) SaveMembers(members []models.Member) error {
	return s.write(func(b *bolt.Bucket) error {
		return putList(b, KeyMembers, members)
	})
}

// AddMember appends a member. Uniqueness of the id is the caller's concern.
func (s *Store) AddMember(m models.Member) error {
	return s.write(func(b *bolt.Bucket) error {
		members := []models.Member{}
		getList(b, KeyMembers, &members)
		members = append(members, m)
		return putList(b, KeyMembers, members)
	})
}

// GetMember returns the member with the given id.
func (s *Store) GetMember(id string) (models.Member, error) {
	members, err := s.Members()
	if err != nil {
		return models.Member{}, err
	}
	for _, m := range members {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Member{}, fmt.Errorf("member %s: %w", id, ErrNotFound)
}

// UpdateMember replaces the member with the same id. Historic transactions
// keep their denormalized name snapshot; a rename does not rewrite them.
func (s *Store) UpdateMember(updated models.Member) error {
	return s.write(func(b *bolt.Bucket) error {
		members := []models.Member{}
		getList(b, KeyMembers, &members)
		for i, m := range members {
			if m.ID == updated.ID {
				members[i] = updated
				return putList(b, KeyMembers, members)
			}
		}
		return ErrNotFound
	})
}

// DeleteMember removes the member permanently. Historic transactions are
// retained and keep referencing the removed id.
func (s *Store) DeleteMember(id string) error {
	return s.write(func(b *bolt.Bucket) error {
		members := []models.Member{}
		getList(b, KeyMembers, &members)
		kept := members[:0]
		found := false
		for _, m := range members {
			if m.ID == id {
				found = true
				continue
			}
			kept = append(kept, m)
		}
		if !found {
			return ErrNotFound
		}
		return putList(b, KeyMembers, kept)
	})
}

// NextMemberID is the auto-assigned member number: 100 + current member
// count + 1, as the society has always numbered its books.
func (s *Store) NextMemberID() (string, error) {
	members, err := s.Members()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", 100+len(members)+1), nil
}
