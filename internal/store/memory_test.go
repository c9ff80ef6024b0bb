package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetAndGet(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "things", "t1", map[string]any{"name": "one"}))

	doc, err := mem.Get(ctx, "things", "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", doc.ID)
	assert.Equal(t, "one", doc.Data["name"])

	_, err = mem.Get(ctx, "things", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Create(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	id, err := mem.Create(ctx, "things", map[string]any{"name": "one"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := mem.Get(ctx, "things", id)
	require.NoError(t, err)
	assert.Equal(t, "one", doc.Data["name"])
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "things", "t1", map[string]any{"name": "one"}))

	doc, err := mem.Get(ctx, "things", "t1")
	require.NoError(t, err)
	doc.Data["name"] = "mutated"

	again, err := mem.Get(ctx, "things", "t1")
	require.NoError(t, err)
	assert.Equal(t, "one", again.Data["name"])
}

func TestMemory_Filter(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "things", "b", map[string]any{
		"name": "two", "owner": map[string]any{"firstName": "Alice"},
	}))
	require.NoError(t, mem.Set(ctx, "things", "a", map[string]any{
		"name": "one", "owner": map[string]any{},
	}))

	// no predicates returns everything, ordered by id
	docs, err := mem.Filter(ctx, "things")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)

	// dotted path descends into nested objects
	docs, err = mem.Filter(ctx, "things", Predicate{Field: "owner.firstName", Value: "Alice"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "b", docs[0].ID)

	// an empty object matches structurally
	docs, err = mem.Filter(ctx, "things", Predicate{Field: "owner", Value: map[string]any{}})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a", docs[0].ID)

	// no match is an empty result, not an error
	docs, err = mem.Filter(ctx, "things", Predicate{Field: "name", Value: "three"})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemory_MergeSet(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "things", "t1", map[string]any{"name": "one", "kept": true}))

	require.NoError(t, mem.MergeSet(ctx, "things", "t1", map[string]any{"name": "patched"}))

	doc, err := mem.Get(ctx, "things", "t1")
	require.NoError(t, err)
	assert.Equal(t, "patched", doc.Data["name"])
	assert.Equal(t, true, doc.Data["kept"])

	err = mem.MergeSet(ctx, "things", "missing", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Delete(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "things", "t1", map[string]any{"name": "one"}))
	require.NoError(t, mem.Delete(ctx, "things", "t1"))

	_, err := mem.Get(ctx, "things", "t1")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing document is a no-op
	assert.NoError(t, mem.Delete(ctx, "things", "t1"))
}

func TestMemory_InTx_Commit(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	err := mem.InTx(ctx, func(tx DocumentStore) error {
		if _, err := tx.Create(ctx, "things", map[string]any{"name": "one"}); err != nil {
			return err
		}
		return tx.Set(ctx, "things", "t2", map[string]any{"name": "two"})
	})
	require.NoError(t, err)

	docs, err := mem.Filter(ctx, "things")
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestMemory_InTx_RollbackOnError(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "things", "t1", map[string]any{"name": "one"}))

	boom := errors.New("boom")
	err := mem.InTx(ctx, func(tx DocumentStore) error {
		if err := tx.Set(ctx, "things", "t1", map[string]any{"name": "changed"}); err != nil {
			return err
		}
		if _, err := tx.Create(ctx, "things", map[string]any{"name": "two"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	docs, err := mem.Filter(ctx, "things")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "one", docs[0].Data["name"])
}
