// Package record defines the distributed record representation generated
// schemas convert to and from, the Store collaborator interface, and a
// pebble-backed reference store.
package record
