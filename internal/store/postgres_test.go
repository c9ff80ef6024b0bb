package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterQuery_NoPredicates(t *testing.T) {
	query, args, err := filterQuery("arenas", nil)

	require.NoError(t, err)
	assert.Equal(t, `SELECT id, data FROM documents WHERE collection = $1 ORDER BY id`, query)
	assert.Equal(t, []any{"arenas"}, args)
}

func TestFilterQuery_SinglePredicate(t *testing.T) {
	query, args, err := filterQuery("arenas", []Predicate{
		{Field: "location", Value: "Riverside"},
	})

	require.NoError(t, err)
	assert.Equal(t,
		`SELECT id, data FROM documents WHERE collection = $1 AND data #> $2::text[] = $3::jsonb ORDER BY id`,
		query)
	require.Len(t, args, 3)
	assert.Equal(t, `"Riverside"`, args[2])
}

func TestFilterQuery_DottedPathAndEmptyObject(t *testing.T) {
	query, args, err := filterQuery("arenas", []Predicate{
		{Field: "isBooked.firstName", Value: "Alice"},
		{Field: "isBooked", Value: map[string]any{}},
	})

	require.NoError(t, err)
	assert.Equal(t,
		`SELECT id, data FROM documents WHERE collection = $1`+
			` AND data #> $2::text[] = $3::jsonb`+
			` AND data #> $4::text[] = $5::jsonb ORDER BY id`,
		query)
	require.Len(t, args, 5)
	assert.Equal(t, `"Alice"`, args[2])
	assert.Equal(t, `{}`, args[4])
}
