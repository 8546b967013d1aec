// Package storage provides the per-user key-value state store the cart
// engine persists itself into. Each (owner, key) pair holds one JSON
// document; category carts and checkout slots use distinct keys so
// their state never merges.
package storage

import (
	"context"
	"errors"
)

// Storage keys. One key per category cart, plus the shared checkout
// slots consumed by the request and payment steps.
const (
	KeyKRAServices         = "selectedKRAServices"
	KeyDataServices        = "selectedDataServices"
	KeyBusinessServices    = "selectedBusinessServices"
	KeyBookkeepingServices = "selectedBookkeepingServices"
	KeyPendingRequest      = "pendingServiceRequest"
	KeyRequestForPayment   = "serviceRequestForPayment"
)

// ErrNotFound is returned by Load when no record exists for the key.
var ErrNotFound = errors.New("state record not found")

// ErrCorrupt wraps deserialization failures of a stored value. Callers
// may treat it as recoverable (the slot is unreadable, not the store);
// any other Load error means the store itself failed and the stored
// state may still be intact.
var ErrCorrupt = errors.New("state record is corrupt")

// Store is the repository interface carts and checkout slots are
// persisted through, keeping the mechanism swappable without touching
// cart logic.
type Store interface {
	// Load unmarshals the value stored under (owner, key) into dest.
	// Returns ErrNotFound when the record does not exist.
	Load(ctx context.Context, owner, key string, dest interface{}) error

	// Save marshals value and upserts it under (owner, key).
	Save(ctx context.Context, owner, key string, value interface{}) error

	// Delete removes the record under (owner, key). Deleting a missing
	// record is not an error.
	Delete(ctx context.Context, owner, key string) error
}
