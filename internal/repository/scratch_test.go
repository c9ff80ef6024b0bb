package repository

import (
	"context"
	"testing"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScratchRepository_AddAndGet(t *testing.T) {
	repo := NewScratchRepository(store.NewMemory())
	ctx := context.Background()

	id, err := repo.Add(ctx, "k1", "k2")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	item, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "k1", item.Key1)
	assert.Equal(t, "k2", item.Key2)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestScratchRepository_Search(t *testing.T) {
	repo := NewScratchRepository(store.NewMemory())
	ctx := context.Background()

	_, err := repo.Add(ctx, "foo", "a")
	require.NoError(t, err)
	_, err = repo.Add(ctx, "bar", "b")
	require.NoError(t, err)

	items, err := repo.Search(ctx, "foo")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Key2)

	// no match is an empty list for the scratch collection
	items, err = repo.Search(ctx, "baz")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestScratchRepository_SetReplacesOrCreates(t *testing.T) {
	repo := NewScratchRepository(store.NewMemory())
	ctx := context.Background()

	id, err := repo.Add(ctx, "k1", "k2")
	require.NoError(t, err)

	require.NoError(t, repo.Set(ctx, id, "new1", "new2"))

	item, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new1", item.Key1)

	// setting an unknown id creates the document
	require.NoError(t, repo.Set(ctx, "fresh", "a", "b"))

	item, err = repo.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "a", item.Key1)
}

func TestScratchRepository_Delete(t *testing.T) {
	repo := NewScratchRepository(store.NewMemory())
	ctx := context.Background()

	id, err := repo.Add(ctx, "k1", "k2")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
