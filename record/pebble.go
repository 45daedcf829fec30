package record

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// PebbleStore is a Store backed by a local pebble database. It exists so
// generated conversions can be exercised against a real storage engine; a
// networked store satisfies the same interface.
type PebbleStore struct {
	db *pebble.DB
}

// OpenPebble opens (creating if needed) a pebble database at path.
func OpenPebble(path string) (*PebbleStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("opening pebble at %s: %w", path, err)
	}

	return &PebbleStore{db: db}, nil
}

// Put stores r under its key.
func (s *PebbleStore) Put(r Record) error {
	if len(r.Key) == 0 {
		return errors.New("record has an empty key")
	}

	return s.db.Set(r.Key, r.Value, pebble.NoSync)
}

// Get returns the record stored under key, or ErrNotFound.
func (s *PebbleStore) Get(key []byte) (Record, error) {
	data, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return Record{}, ErrNotFound
		}

		return Record{}, err
	}
	defer closer.Close()

	// data is only valid until closer.Close.
	value := make([]byte, len(data))
	copy(value, data)

	return Record{Key: append([]byte(nil), key...), Value: value}, nil
}

// Delete removes the record stored under key.
func (s *PebbleStore) Delete(key []byte) error {
	return s.db.Delete(key, pebble.NoSync)
}

// Close closes the underlying database.
func (s *PebbleStore) Close() error {
	return s.db.Close()
}

// Ensure interface compliance.
var _ Store = (*PebbleStore)(nil)
