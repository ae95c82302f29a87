// Package storage provides the persistent key-value store behind the state
// containers. Each key holds one JSON-encoded collection, written whole on
// every mutation; there are no partial or delta writes.
package storage

import "errors"

// ErrNotFound is returned when a key has no stored value. Containers treat
// it as "start empty", never as a failure.
var ErrNotFound = errors.New("storage: key not found")

// Storage keys, one per state container
const (
	KeyCart      = "abreai_cart"
	KeyFavorites = "abreai_favorites"
	KeyOrders    = "abreai_orders"
	KeyUser      = "abreai_user"
	KeyUsers     = "abreai_users"
)

// Store is the persistence contract shared by all state containers.
// Implementations serialize values as JSON and must tolerate corrupt data
// on read by reporting ErrNotFound instead of failing.
type Store interface {
	// Get decodes the value stored under key into dest. Returns
	// ErrNotFound when the key is absent or its value is unreadable.
	Get(key string, dest interface{}) error
	// Put encodes value as JSON and stores it under key, replacing any
	// previous value.
	Put(key string, value interface{}) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
