package codec

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"

	"github.com/newsnet-africa/netabase-sub001/kv"
)

// Mode selects which backend a schema serializes with.
type Mode int

//go:generate go run golang.org/x/tools/cmd/stringer -type=Mode -trimprefix=Mode

const (
	// ModeNative serializes with the binary codec (CBOR).
	ModeNative Mode = iota
	// ModeCompat serializes with the compatibility codec (JSON).
	ModeCompat
)

// Codec is the opaque encode/decode pair a generated schema calls into.
type Codec interface {
	// Name identifies the codec in error messages.
	Name() string
	// Encode serializes v.
	Encode(v any) ([]byte, error)
	// Decode deserializes data into v.
	Decode(data []byte, v any) error
}

type nativeCodec struct{}

func (nativeCodec) Name() string { return "cbor" }

func (nativeCodec) Encode(v any) ([]byte, error) {
	return cbor.Marshal(v)
}

func (nativeCodec) Decode(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}

type compatCodec struct{}

func (compatCodec) Name() string { return "json" }

func (compatCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (compatCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

var (
	// Native is the binary codec.
	Native Codec = nativeCodec{}
	// Compat is the compatibility codec.
	Compat Codec = compatCodec{}
)

// For returns the primary codec for a mode.
func For(m Mode) Codec {
	if m == ModeCompat {
		return Compat
	}

	return Native
}

// FallbackFor returns the secondary codec tried when the primary rejects a
// payload.
func FallbackFor(m Mode) Codec {
	if m == ModeCompat {
		return Native
	}

	return Compat
}

// Encode serializes v with the mode's primary codec. Failures surface as
// *kv.EncodeError naming the codec.
func Encode(m Mode, v any) ([]byte, error) {
	c := For(m)

	data, err := c.Encode(v)
	if err != nil {
		return nil, &kv.EncodeError{Codec: c.Name(), Err: err}
	}

	return data, nil
}

// DecodeDual deserializes data as T, first with the mode's primary codec and
// then, if that fails, with the secondary codec. The fallback decodes into a
// fresh value so a partial primary decode cannot leak through. When both
// paths fail the returned *kv.DecodeError reports both causes.
func DecodeDual[T any](m Mode, data []byte) (T, error) {
	primary, fallback := For(m), FallbackFor(m)

	var v T

	perr := primary.Decode(data, &v)
	if perr == nil {
		return v, nil
	}

	var alt T

	ferr := fallback.Decode(data, &alt)
	if ferr == nil {
		return alt, nil
	}

	var zero T

	return zero, &kv.DecodeError{
		Primary:       perr,
		PrimaryCodec:  primary.Name(),
		Fallback:      ferr,
		FallbackCodec: fallback.Name(),
	}
}
