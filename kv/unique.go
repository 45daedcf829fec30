package kv

import (
	"bytes"
	"sync"

	"github.com/google/uuid"
)

var (
	uniqueMu   sync.Mutex
	lastUnique uuid.UUID
)

// NewUniqueKey returns a time-ordered, collision-resistant key that is
// independent of any schema instance. Keys are UUIDv7 values, so their text
// form starts with a millisecond timestamp and sorts roughly chronologically.
//
// Within a process the returned keys are strictly increasing in byte order:
// if the version-7 value would not advance past the previous one (clock
// regression, or two calls landing in the same random tail), the previous
// value is bumped instead. Safe for concurrent use.
func NewUniqueKey() Key {
	uniqueMu.Lock()
	defer uniqueMu.Unlock()

	id, err := uuid.NewV7()
	if err != nil || bytes.Compare(id[:], lastUnique[:]) <= 0 {
		id = increment(lastUnique)
	}

	lastUnique = id

	return Key{raw: id.String()}
}

// increment advances u by one in 128-bit big-endian order.
func increment(u uuid.UUID) uuid.UUID {
	for i := len(u) - 1; i >= 0; i-- {
		u[i]++
		if u[i] != 0 {
			break
		}
	}

	return u
}
