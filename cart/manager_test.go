package cart

import (
	"context"
	"errors"
	"testing"

	"bizhub-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "9f4a1f44-8c1e-4f7a-9a9e-0f1f2e3d4c5b"

func newManager() (*Manager, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewManager(store), store
}

func TestLoadMissingCartIsEmpty(t *testing.T) {
	m, _ := newManager()

	c, err := m.Load(context.Background(), testOwner, "kra")

	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestLoadUnknownCategory(t *testing.T) {
	m, _ := newManager()

	_, err := m.Load(context.Background(), testOwner, "plumbing")

	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestSaveLoadRoundTripPreservesOrder(t *testing.T) {
	m, _ := newManager()
	ctx := context.Background()

	c := &Cart{}
	c.Toggle(variableEntry())
	c.Toggle(fixedEntry())
	c.UpdateQuantity("kra-pin-registration", 3)
	c.UpdateCustomPrice("kra-returns-company", 12000)

	require.NoError(t, m.Save(ctx, testOwner, "kra", c))

	restored, err := m.Load(ctx, testOwner, "kra")
	require.NoError(t, err)
	assert.Equal(t, c.Items, restored.Items)
	assert.Equal(t, c.Total(), restored.Total())
}

func TestCategoriesAreIsolated(t *testing.T) {
	m, _ := newManager()
	ctx := context.Background()

	kra := &Cart{}
	kra.Toggle(fixedEntry())
	require.NoError(t, m.Save(ctx, testOwner, "kra", kra))

	books, err := m.Load(ctx, testOwner, "bookkeeping")
	require.NoError(t, err)
	assert.Empty(t, books.Items)
}

// faultyStore fails every operation, standing in for an unreachable
// database.
type faultyStore struct {
	err error
}

func (s *faultyStore) Load(context.Context, string, string, interface{}) error { return s.err }
func (s *faultyStore) Save(context.Context, string, string, interface{}) error { return s.err }
func (s *faultyStore) Delete(context.Context, string, string) error            { return s.err }

func TestLoadStoreFailureIsSurfaced(t *testing.T) {
	storeErr := errors.New("connection refused")
	m := NewManager(&faultyStore{err: storeErr})

	c, err := m.Load(context.Background(), testOwner, "kra")

	// An infrastructure failure must not masquerade as an empty cart:
	// the persisted cart may be intact and a later save would clobber it.
	require.ErrorIs(t, err, storeErr)
	assert.Nil(t, c)
}

func TestLoadCorruptStateFailsSoft(t *testing.T) {
	m, store := newManager()
	ctx := context.Background()

	c := &Cart{}
	c.Toggle(fixedEntry())
	require.NoError(t, m.Save(ctx, testOwner, "kra", c))

	store.Corrupt(testOwner, storage.KeyKRAServices)

	restored, err := m.Load(ctx, testOwner, "kra")
	require.NoError(t, err)
	assert.Empty(t, restored.Items)
}

func TestClearAllErasesPersistedRecord(t *testing.T) {
	m, store := newManager()
	ctx := context.Background()

	c := &Cart{}
	c.Toggle(fixedEntry())
	require.NoError(t, m.Save(ctx, testOwner, "kra", c))

	require.NoError(t, m.ClearAll(ctx, testOwner, "kra", c))

	assert.Empty(t, c.Items)
	var raw Cart
	err := store.Load(ctx, testOwner, storage.KeyKRAServices, &raw)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFinalizeSelectionWritesPendingSlot(t *testing.T) {
	m, store := newManager()
	ctx := context.Background()

	c := &Cart{}
	c.Toggle(fixedEntry())

	pending, err := m.FinalizeSelection(ctx, testOwner, "kra", c)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, pending.Total)

	var stored PendingRequest
	require.NoError(t, store.Load(ctx, testOwner, storage.KeyPendingRequest, &stored))
	assert.Equal(t, pending.Items, stored.Items)
}

func TestFinalizeSelectionEmptyCartWritesNothing(t *testing.T) {
	m, store := newManager()
	ctx := context.Background()

	_, err := m.FinalizeSelection(ctx, testOwner, "kra", &Cart{})
	require.ErrorIs(t, err, ErrEmptySelection)

	var stored PendingRequest
	err = store.Load(ctx, testOwner, storage.KeyPendingRequest, &stored)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestConsumePendingIsReadOnce(t *testing.T) {
	m, _ := newManager()
	ctx := context.Background()

	c := &Cart{}
	c.Toggle(fixedEntry())
	_, err := m.FinalizeSelection(ctx, testOwner, "kra", c)
	require.NoError(t, err)

	first, err := m.ConsumePending(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	_, err = m.ConsumePending(ctx, testOwner)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

// Full selection-to-checkout walk: fixed item A at 1500 with quantity
// 3, variable item B with a 10000 floor and an 8000 override that gets
// clamped, finalized express.
func TestSelectionToExpressCheckout(t *testing.T) {
	m, _ := newManager()
	ctx := context.Background()

	a := CatalogEntry{ID: "a", Label: "Item A", Price: 1500, Category: "kra"}
	minB := 10000.0
	b := CatalogEntry{
		ID: "b", Label: "Item B", Price: 10000,
		HasVariablePrice: true, MinPrice: &minB, Category: "kra",
	}

	c := &Cart{}
	c.Toggle(a)
	c.Toggle(b)
	c.UpdateCustomPrice("b", 8000) // clamped to 10000
	c.UpdateQuantity("a", 3)

	assert.Equal(t, 14500.0, c.Total())

	pending, err := m.FinalizeSelection(ctx, testOwner, "kra", c)
	require.NoError(t, err)
	assert.Equal(t, 14500.0, pending.Total)

	assert.InDelta(t, 18850.0, PriorityExpress.ApplyFees(pending.Total), 1e-9)
}
