// Package kv provides the runtime support types shared by every generated
// schema: the nominal key wrapper, time-ordered unique key generation, key
// composition, and the runtime error taxonomy surfaced by generated
// encode/decode behavior.
//
// Key construction is deliberately narrow: a Key can only be produced through
// NewKey, KeyFromBytes, or NewUniqueKey. Generated key types embed Key by
// value, so the record capability is only attachable through the generator's
// own emitted constructors.
package kv
