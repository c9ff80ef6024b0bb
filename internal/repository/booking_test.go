package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingFixture(t *testing.T) (*BookingRepository, *ArenaRepository, string) {
	t.Helper()
	mem := store.NewMemory()
	arenaRepo := NewArenaRepository(mem)
	bookingRepo := NewBookingRepository(mem)

	arenaID := seedArena(t, arenaRepo, &domain.Arena{
		Name:     "Centre Court",
		Location: "Riverside",
		Address:  "1 Main St",
		IsPublic: true,
	})

	return bookingRepo, arenaRepo, arenaID
}

func newBooking(arenaID string) *domain.Booking {
	return &domain.Booking{
		FirstName:   "Alice",
		LastName:    "Anderson",
		PhoneNumber: "+15550001111",
		Email:       "alice@example.com",
		Date:        "2026-09-12",
		Time:        "18:00",
		PaymentInfo: map[string]any{},
		ArenaID:     arenaID,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestBookingRepository_CreateForArena(t *testing.T) {
	bookingRepo, arenaRepo, arenaID := newBookingFixture(t)
	ctx := context.Background()

	b := newBooking(arenaID)
	arena, err := bookingRepo.CreateForArena(ctx, b)

	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	require.NotNil(t, arena.IsBooked)
	assert.Equal(t, b.ID, arena.IsBooked.BookingID)
	assert.Equal(t, "Alice", arena.IsBooked.FirstName)

	// both writes are visible after the transaction
	stored, err := bookingRepo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, arenaID, stored.ArenaID)
	assert.Equal(t, "alice@example.com", stored.Email)

	got, err := arenaRepo.GetByID(ctx, arenaID)
	require.NoError(t, err)
	require.NotNil(t, got.IsBooked)
	assert.Equal(t, b.ID, got.IsBooked.BookingID)
	assert.False(t, got.Available())
}

func TestBookingRepository_CreateForArena_ArenaNotFound(t *testing.T) {
	bookingRepo, _, _ := newBookingFixture(t)

	b := newBooking("missing")
	_, err := bookingRepo.CreateForArena(context.Background(), b)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArenaNotFound)

	// nothing was written
	_, err = bookingRepo.List(context.Background())
	require.NoError(t, err)
}

func TestBookingRepository_CreateForArena_Conflict(t *testing.T) {
	bookingRepo, _, arenaID := newBookingFixture(t)
	ctx := context.Background()

	first := newBooking(arenaID)
	_, err := bookingRepo.CreateForArena(ctx, first)
	require.NoError(t, err)

	second := newBooking(arenaID)
	second.FirstName = "Bob"
	_, err = bookingRepo.CreateForArena(ctx, second)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArenaNotAvailable)
	assert.Empty(t, second.ID)

	// the losing request left no booking behind
	bookings, err := bookingRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, first.ID, bookings[0].ID)
}

func TestBookingRepository_CreateForArena_Concurrent(t *testing.T) {
	bookingRepo, arenaRepo, arenaID := newBookingFixture(t)
	ctx := context.Background()

	const n = 16

	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = bookingRepo.CreateForArena(ctx, newBooking(arenaID))
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domain.ErrArenaNotAvailable):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, n-1, lost)

	bookings, err := bookingRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	arena, err := arenaRepo.GetByID(ctx, arenaID)
	require.NoError(t, err)
	require.NotNil(t, arena.IsBooked)
	assert.Equal(t, bookings[0].ID, arena.IsBooked.BookingID)
}

func TestBookingRepository_ListByUser(t *testing.T) {
	bookingRepo, _, arenaID := newBookingFixture(t)
	ctx := context.Background()

	b := newBooking(arenaID)
	_, err := bookingRepo.CreateForArena(ctx, b)
	require.NoError(t, err)

	bookings, err := bookingRepo.ListByUser(ctx, "Alice", "Anderson")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, b.ID, bookings[0].ID)

	_, err = bookingRepo.ListByUser(ctx, "Bob", "Brown")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	bookingRepo, _, _ := newBookingFixture(t)

	_, err := bookingRepo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_IsRepeatRoundTrip(t *testing.T) {
	bookingRepo, _, arenaID := newBookingFixture(t)
	ctx := context.Background()

	isRepeat := true
	b := newBooking(arenaID)
	b.IsRepeat = &isRepeat

	_, err := bookingRepo.CreateForArena(ctx, b)
	require.NoError(t, err)

	stored, err := bookingRepo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.IsRepeat)
	assert.True(t, *stored.IsRepeat)
}
