// Package storage provides the abstract collection store the entity
// repositories persist through. Each named collection is an independent JSON
// document that is replaced wholesale on every save; there is no
// transactionality across collections.
package storage

import "context"

// Collection names used by the repositories.
const (
	CollectionUsers    = "users"
	CollectionTools    = "tools"
	CollectionGroups   = "groups"
	CollectionBookings = "bookings"
)

// Store is a named-collection document store.
type Store interface {
	// Get decodes the named collection into dest. A collection that has
	// never been saved leaves dest untouched and returns nil.
	Get(ctx context.Context, collection string, dest interface{}) error

	// Set replaces the named collection with the JSON encoding of value.
	Set(ctx context.Context, collection string, value interface{}) error

	// Close releases any underlying resources.
	Close() error
}
