package store

import (
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Bolt stores preferences in a bbolt file, one bucket per preference store name.
type Bolt struct {
	storage *bbolt.DB
	bucket  []byte
}

// NewBolt opens (creating if needed) the bbolt file at path and the bucket for name.
func NewBolt(path, name string) (*Bolt, error) {
	if name == "" {
		return nil, errors.New("preference store name is required")
	}

	instance, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	bucket := []byte(name)

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)

		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance, bucket: bucket}, nil
}

func (b *Bolt) Get(key string) (string, error) {
	var value string

	err := b.storage.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(b.bucket).Get([]byte(key))
		if data != nil {
			value = string(data)
		}

		return nil
	})

	return value, err
}

func (b *Bolt) Set(key, value string) error {
	if key == "" {
		return errors.New("key is required")
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(b.bucket).Put([]byte(key), []byte(value))
	})
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}
