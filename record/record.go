package record

import "errors"

// ErrNotFound is returned by Store.Get when no record exists under a key.
var ErrNotFound = errors.New("record not found")

// Record is the opaque pair handed to the distributed store: the key bytes
// identify the record, the value bytes are the schema's encoded form. The
// wire format of a record is exactly this pair.
type Record struct {
	Key   []byte
	Value []byte
}

// New builds a record from a key/value pair.
func New(key, value []byte) Record {
	return Record{Key: key, Value: value}
}

// IsZero reports whether the record carries neither key nor value.
func (r Record) IsZero() bool {
	return len(r.Key) == 0 && len(r.Value) == 0
}

// Store is the storage collaborator generated conversions feed. The network
// or engine behind it is outside the generator's concern.
type Store interface {
	// Put stores r under its key, replacing any previous value.
	Put(r Record) error
	// Get returns the record stored under key, or ErrNotFound.
	Get(key []byte) (Record, error)
	// Delete removes the record stored under key. Deleting an absent key
	// is not an error.
	Delete(key []byte) error
	// Close releases the store's resources.
	Close() error
}
