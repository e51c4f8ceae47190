package localstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"konkanbliss/pkg/localstore"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := localstore.NewMemoryStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	store.Set("k", "v1")
	got, ok := store.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v1", got)

	store.Set("k", "v2")
	got, _ = store.Get("k")
	assert.Equal(t, "v2", got)

	store.Remove("k")
	_, ok = store.Get("k")
	assert.False(t, ok)
}

func TestMemoryStoreRemoveMissingKey(t *testing.T) {
	store := localstore.NewMemoryStore()
	store.Remove("never-set")

	_, ok := store.Get("never-set")
	assert.False(t, ok)
}
