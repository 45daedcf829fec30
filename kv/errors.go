package kv

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 marks key bytes that do not form valid UTF-8 text. It is
// always wrapped in a DecodeError, never surfaced as a replacement character.
var ErrInvalidUTF8 = errors.New("key bytes are not valid UTF-8")

// EncodeError reports a codec failure while serializing a value.
type EncodeError struct {
	// Codec names the codec that rejected the value.
	Codec string
	// Err is the underlying codec error.
	Err error
}

// Error returns the formatted encode failure.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode via %s: %v", e.Codec, e.Err)
}

// Unwrap returns the underlying codec error.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError reports that every available decode path failed. When a
// fallback codec was attempted, both underlying failures are retained so the
// caller can see why neither format matched.
type DecodeError struct {
	// Primary is the error from the first decode attempt.
	Primary error
	// PrimaryCodec names the codec used for the first attempt.
	PrimaryCodec string
	// Fallback is the error from the secondary attempt, or nil when no
	// fallback path applies (for example key-from-bytes conversion).
	Fallback error
	// FallbackCodec names the codec used for the secondary attempt.
	FallbackCodec string
}

// Error returns the formatted decode failure, naming every attempted path.
func (e *DecodeError) Error() string {
	if e.Fallback == nil {
		return fmt.Sprintf("decode via %s: %v", e.PrimaryCodec, e.Primary)
	}

	return fmt.Sprintf("decode via %s: %v (fallback via %s: %v)",
		e.PrimaryCodec, e.Primary, e.FallbackCodec, e.Fallback)
}

// Unwrap exposes both underlying failures to errors.Is and errors.As.
func (e *DecodeError) Unwrap() []error {
	if e.Fallback == nil {
		return []error{e.Primary}
	}

	return []error{e.Primary, e.Fallback}
}
