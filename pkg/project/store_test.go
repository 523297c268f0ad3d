package project

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	value := []byte("v1")
	require.NoError(t, store.Set("ns:b", value))
	value[0] = 'x'
	got, err := store.Get("ns:b")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))

	require.NoError(t, store.Set("ns:a", []byte("v2")))
	require.NoError(t, store.Set("other:c", []byte("v3")))
	keys, err := store.Keys("ns:")
	require.NoError(t, err)
	assert.Equal(t, []string{"ns:a", "ns:b"}, keys)

	require.NoError(t, store.Remove("ns:a"))
	keys, err = store.Keys("ns:")
	require.NoError(t, err)
	assert.Equal(t, []string{"ns:b"}, keys)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	repo := NewRepository(store)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create("Form", "{}", "{}", "{}")
			assert.NoError(t, err)
			_, err = repo.List()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	projects, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, projects, 16)
}
