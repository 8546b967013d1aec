package cart

import (
	"context"
	"errors"
	"log"

	"bizhub-backend/storage"
)

// Category tags accepted by the cart API, mapped to their storage keys.
// Each category cart lives under its own key; loading one never reads
// another category's state.
var categoryKeys = map[string]string{
	"kra":         storage.KeyKRAServices,
	"data":        storage.KeyDataServices,
	"business":    storage.KeyBusinessServices,
	"bookkeeping": storage.KeyBookkeepingServices,
}

// ErrUnknownCategory is returned for category tags outside the catalog.
var ErrUnknownCategory = errors.New("unknown service category")

// CategoryKey resolves a category tag to its storage key.
func CategoryKey(category string) (string, error) {
	key, ok := categoryKeys[category]
	if !ok {
		return "", ErrUnknownCategory
	}
	return key, nil
}

// Manager loads, saves and finalizes carts against a backing store.
type Manager struct {
	store storage.Store
}

func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

// Load restores the owner's cart for a category. A missing record
// yields an empty cart; so does corrupt stored state, which is logged
// and dropped rather than surfaced — there is no recovery path to offer
// the user. Store failures are returned as-is: the persisted cart may
// still be intact, and handing out an empty cart would let the next
// save overwrite it.
func (m *Manager) Load(ctx context.Context, owner, category string) (*Cart, error) {
	key, err := CategoryKey(category)
	if err != nil {
		return nil, err
	}

	var c Cart
	if err := m.store.Load(ctx, owner, key, &c); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &Cart{}, nil
		}
		if errors.Is(err, storage.ErrCorrupt) {
			log.Printf("cart: discarding corrupt state for key %s: %v", key, err)
			return &Cart{}, nil
		}
		return nil, err
	}
	return &c, nil
}

// Save persists the cart under its category key. Called after every
// mutation.
func (m *Manager) Save(ctx context.Context, owner, category string, c *Cart) error {
	key, err := CategoryKey(category)
	if err != nil {
		return err
	}
	return m.store.Save(ctx, owner, key, c)
}

// ClearAll empties the cart and erases its persisted record entirely,
// so a later load starts from scratch instead of resurrecting it.
func (m *Manager) ClearAll(ctx context.Context, owner, category string, c *Cart) error {
	key, err := CategoryKey(category)
	if err != nil {
		return err
	}
	c.Clear()
	return m.store.Delete(ctx, owner, key)
}

// FinalizeSelection flattens the cart into a pending request and
// writes it to the shared pending-request slot. An empty cart returns
// ErrEmptySelection and writes nothing.
func (m *Manager) FinalizeSelection(ctx context.Context, owner, category string, c *Cart) (*PendingRequest, error) {
	pending, err := Finalize(c, category)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(ctx, owner, storage.KeyPendingRequest, pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// ConsumePending reads the shared pending-request slot and deletes it,
// so navigating back to the request step cannot duplicate the same
// order. Returns storage.ErrNotFound when no request is pending.
func (m *Manager) ConsumePending(ctx context.Context, owner string) (*PendingRequest, error) {
	var pending PendingRequest
	if err := m.store.Load(ctx, owner, storage.KeyPendingRequest, &pending); err != nil {
		return nil, err
	}
	if err := m.store.Delete(ctx, owner, storage.KeyPendingRequest); err != nil {
		return nil, err
	}
	return &pending, nil
}
