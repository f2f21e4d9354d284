package credentials

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var credentialsBucket = []byte("credentials")

// BoltRepository is an alternate Repository backend on top of a bbolt
// database file. Useful where a SQL engine is unwanted; semantics match
// SQLiteRepository.
type BoltRepository struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) a bbolt database at path and ensures the
// credentials bucket exists.
func OpenBolt(path string) (*BoltRepository, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(credentialsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltRepository{db: db}, nil
}

func (r *BoltRepository) Get(ctx context.Context, key, defaultValue string) (string, error) {
	value := defaultValue
	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(credentialsBucket).Get([]byte(key)); v != nil {
			// Copy: the slice is only valid during the transaction.
			value = string(v)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (r *BoltRepository) Set(ctx context.Context, key, value string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(credentialsBucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

// SetMany writes all pairs in one bolt update transaction.
func (r *BoltRepository) SetMany(ctx context.Context, pairs map[string]string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(credentialsBucket)
		for key, value := range pairs {
			if err := b.Put([]byte(key), []byte(value)); err != nil {
				return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
			}
		}
		return nil
	})
	return err
}

func (r *BoltRepository) Close() error {
	return r.db.Close()
}
