// Package codec provides the two serialization backends generated schemas
// route through, plus the dual-path decode that keeps data written under the
// other backend readable.
//
// The native backend is CBOR (compact binary, the default). The compat
// backend is JSON, the structured-serialization framework the rest of the
// ecosystem interoperates with. Every generated decode first tries the
// schema's own backend and then the other one before surfacing a DecodeError
// carrying both causes.
package codec
