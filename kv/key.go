package kv

import (
	"strings"
	"unicode/utf8"
)

// Key is the value wrapped by every generated key type. It holds a single
// string and is comparable, so two keys with equal text compare equal and
// hash equal when used as map keys.
//
// The wire representation of a key is exactly the UTF-8 bytes of its string;
// length framing is supplied by whichever codec carries it.
type Key struct {
	raw string
}

// NewKey wraps s in a Key.
func NewKey(s string) Key {
	return Key{raw: s}
}

// KeyFromBytes interprets b as UTF-8 key text. Invalid UTF-8 is rejected with
// a DecodeError wrapping ErrInvalidUTF8 rather than silently replaced.
func KeyFromBytes(b []byte) (Key, error) {
	if !utf8.Valid(b) {
		return Key{}, &DecodeError{Primary: ErrInvalidUTF8, PrimaryCodec: "key"}
	}

	return Key{raw: string(b)}, nil
}

// String returns the key text. Strings are immutable in Go, so this serves as
// both the borrowed view and the owned extraction of the underlying value.
func (k Key) String() string {
	return k.raw
}

// Bytes returns the UTF-8 bytes of the key text.
func (k Key) Bytes() []byte {
	return []byte(k.raw)
}

// IsZero reports whether the key is empty.
func (k Key) IsZero() bool {
	return k.raw == ""
}

// MarshalText implements encoding.TextMarshaler. Text-based codecs carry the
// key as its plain string.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same UTF-8
// validation as KeyFromBytes.
func (k *Key) UnmarshalText(b []byte) error {
	parsed, err := KeyFromBytes(b)
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. Binary codecs carry the
// key as its raw bytes with their own framing.
func (k Key) MarshalBinary() ([]byte, error) {
	return k.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler with the same UTF-8
// validation as KeyFromBytes.
func (k *Key) UnmarshalBinary(b []byte) error {
	return k.UnmarshalText(b)
}

// Compose assembles key text from its resolved parts. Parts are joined with
// sep in the order given; when prefix is non-empty it is prepended as
// prefix+sep. A single part with no prefix passes through untouched.
func Compose(prefix, sep string, parts ...string) string {
	joined := strings.Join(parts, sep)
	if prefix == "" {
		return joined
	}

	return prefix + sep + joined
}
