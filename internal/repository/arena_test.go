package repository

import (
	"context"
	"testing"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedArena(t *testing.T, repo *ArenaRepository, a *domain.Arena) string {
	t.Helper()
	id, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	return id
}

func TestArenaRepository_CreateAndGet(t *testing.T) {
	repo := NewArenaRepository(store.NewMemory())
	ctx := context.Background()

	id := seedArena(t, repo, &domain.Arena{
		Name:     "Centre Court",
		Location: "Riverside",
		Address:  "1 Main St",
		IsPublic: true,
		Capacity: 120,
		Rate:     49.5,
	})

	arena, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, arena.ID)
	assert.Equal(t, "Centre Court", arena.Name)
	assert.Equal(t, 120, arena.Capacity)
	assert.Equal(t, 49.5, arena.Rate)
	assert.True(t, arena.Available())
}

func TestArenaRepository_GetByID_NotFound(t *testing.T) {
	repo := NewArenaRepository(store.NewMemory())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrArenaNotFound)
}

func TestArenaRepository_List_EmptyIsNotAnError(t *testing.T) {
	repo := NewArenaRepository(store.NewMemory())

	arenas, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, arenas)
}

func TestArenaRepository_ListByLocation(t *testing.T) {
	repo := NewArenaRepository(store.NewMemory())
	ctx := context.Background()

	seedArena(t, repo, &domain.Arena{Name: "A", Location: "Riverside", Address: "1"})
	seedArena(t, repo, &domain.Arena{Name: "B", Location: "Downtown", Address: "2"})

	arenas, err := repo.ListByLocation(ctx, "Riverside")
	require.NoError(t, err)
	require.Len(t, arenas, 1)
	assert.Equal(t, "A", arenas[0].Name)

	_, err = repo.ListByLocation(ctx, "nowhere")
	assert.ErrorIs(t, err, domain.ErrArenaNotFound)
}

func TestArenaRepository_ListBookedBy(t *testing.T) {
	repo := NewArenaRepository(store.NewMemory())
	ctx := context.Background()

	seedArena(t, repo, &domain.Arena{Name: "A", Location: "l", Address: "1"})
	seedArena(t, repo, &domain.Arena{
		Name: "B", Location: "l", Address: "2",
		IsBooked: &domain.BookedBy{FirstName: "Alice", LastName: "Anderson", BookingID: "b1"},
	})

	arenas, err := repo.ListBookedBy(ctx, "Alice", "Anderson")
	require.NoError(t, err)
	require.Len(t, arenas, 1)
	assert.Equal(t, "B", arenas[0].Name)
	require.NotNil(t, arenas[0].IsBooked)
	assert.Equal(t, "b1", arenas[0].IsBooked.BookingID)

	_, err = repo.ListBookedBy(ctx, "Bob", "Brown")
	assert.ErrorIs(t, err, domain.ErrArenaNotFound)
}

func TestArenaRepository_GetIDByName(t *testing.T) {
	repo := NewArenaRepository(store.NewMemory())
	ctx := context.Background()

	id := seedArena(t, repo, &domain.Arena{Name: "Centre Court", Location: "l", Address: "1"})

	got, err := repo.GetIDByName(ctx, "Centre Court")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = repo.GetIDByName(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrArenaNotFound)
}

func TestArenaRepository_ListAvailable(t *testing.T) {
	repo := NewArenaRepository(store.NewMemory())
	ctx := context.Background()

	freeID := seedArena(t, repo, &domain.Arena{Name: "A", Location: "l", Address: "1"})
	bookedID := seedArena(t, repo, &domain.Arena{
		Name: "B", Location: "l", Address: "2",
		IsBooked: &domain.BookedBy{FirstName: "Alice", LastName: "Anderson", BookingID: "b1"},
	})

	arenas, err := repo.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, arenas, 1)
	assert.Equal(t, freeID, arenas[0].ID)

	// releasing the booked arena makes it visible again
	require.NoError(t, repo.ClearBooking(ctx, bookedID))

	arenas, err = repo.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, arenas, 2)
}

func TestArenaRepository_ClearBooking_NotFound(t *testing.T) {
	repo := NewArenaRepository(store.NewMemory())

	err := repo.ClearBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrArenaNotFound)
}
