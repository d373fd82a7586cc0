// Package store implements the ledger store: durable, process-local
// persistence of the society's users, members and transaction log plus the
// current-session slot, kept as four named entries in a bbolt bucket.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")

	// ErrLastUser is returned when deleting the only remaining login account.
	ErrLastUser = errors.New("at least one user must remain")
)

// bucketLedger holds the whole persisted state under fixed keys.
const bucketLedger = "somity"

// Persisted entry keys. These names are shared with pre-existing stored data
// and must not change.
const (
	KeyUsers        = "somity_users"
	KeyMembers      = "somity_members"
	KeyTransactions = "somity_transactions"
	KeyCurrentUser  = "somity_current_user"
)

// Store wraps the bbolt database holding the society ledger.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the ledger database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLedger))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// getList decodes the JSON list stored under key into out. A missing entry or
// unparsable data degrades to the empty list rather than failing the read.
func getList(b *bolt.Bucket, key string, out any) {
	data := b.Get([]byte(key))
	if data == nil {
		return
	}
	_ = json.Unmarshal(data, out)
}

// putList replaces the collection stored under key wholesale.
func putList(b *bolt.Bucket, key string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return b.Put([]byte(key), data)
}

func (s *Store) read(fn func(b *bolt.Bucket) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return fn(tx.Bucket([]byte(bucketLedger)))
	})
}

func (s *Store) write(fn func(b *bolt.Bucket) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return fn(tx.Bucket([]byte(bucketLedger)))
	})
}

// PutRaw stores raw bytes under an entry key. Intended for tests and
// migrations; normal callers use the typed accessors.
func (s *Store) PutRaw(key string, data []byte) error {
	return s.write(func(b *bolt.Bucket) error {
		return b.Put([]byte(key), data)
	})
}
