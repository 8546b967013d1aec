package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesKnownCategories(t *testing.T) {
	for _, category := range Categories() {
		entries, ok := Entries(category)
		require.True(t, ok, category)
		assert.NotEmpty(t, entries, category)
		for _, e := range entries {
			assert.Equal(t, category, e.Category, e.ID)
			assert.Greater(t, e.Price, 0.0, e.ID)
			if e.HasVariablePrice {
				require.NotNil(t, e.MinPrice, e.ID)
				assert.Greater(t, *e.MinPrice, 0.0, e.ID)
			}
		}
	}
}

func TestEntriesUnknownCategory(t *testing.T) {
	_, ok := Entries("plumbing")
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	entry, ok := Find("kra", "kra-pin-registration")
	require.True(t, ok)
	assert.Equal(t, "KRA PIN Registration", entry.Label)

	_, ok = Find("kra", "data-cleaning")
	assert.False(t, ok)

	_, ok = Find("plumbing", "anything")
	assert.False(t, ok)
}

func TestIDsUniqueWithinCategory(t *testing.T) {
	for _, category := range Categories() {
		entries, _ := Entries(category)
		seen := map[string]bool{}
		for _, e := range entries {
			assert.False(t, seen[e.ID], "duplicate id %s in %s", e.ID, category)
			seen[e.ID] = true
		}
	}
}
