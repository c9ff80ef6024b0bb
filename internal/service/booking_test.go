package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func validBookingInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		FirstName:   "Alice",
		LastName:    "Anderson",
		PhoneNumber: "+15550001111",
		Email:       "alice@example.com",
		Date:        "2026-09-12",
		Time:        "18:00",
		ArenaID:     "a1",
	}
}

func TestBookingService_Create(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	arenaRepo := mocks.NewMockArenaRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, arenaRepo, notifier, 5*time.Second, log)

	arena := &domain.Arena{ID: "a1", Name: "Centre Court"}

	bookingRepo.EXPECT().CreateForArena(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Booking) (*domain.Arena, error) {
			b.ID = "b1"
			return arena, nil
		})
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, arena).Return()

	booking, err := svc.Create(context.Background(), validBookingInput())

	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)
	assert.Equal(t, "a1", booking.ArenaID)
	assert.Equal(t, "Alice", booking.FirstName)
	assert.NotNil(t, booking.PaymentInfo)
	assert.False(t, booking.CreatedAt.IsZero())

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_MissingField(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	arenaRepo := mocks.NewMockArenaRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, arenaRepo, notifier, 5*time.Second, log)

	input := validBookingInput()
	input.Email = ""

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_ArenaNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	arenaRepo := mocks.NewMockArenaRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, arenaRepo, notifier, 5*time.Second, log)

	bookingRepo.EXPECT().CreateForArena(mock.Anything, mock.Anything).
		Return(nil, domain.ErrArenaNotFound)

	_, err := svc.Create(context.Background(), validBookingInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArenaNotFound)
}

func TestBookingService_Create_ArenaNotAvailable(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	arenaRepo := mocks.NewMockArenaRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, arenaRepo, notifier, 5*time.Second, log)

	bookingRepo.EXPECT().CreateForArena(mock.Anything, mock.Anything).
		Return(nil, domain.ErrArenaNotAvailable)

	_, err := svc.Create(context.Background(), validBookingInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArenaNotAvailable)
}

func TestBookingService_Create_Timeout(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	arenaRepo := mocks.NewMockArenaRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, arenaRepo, notifier, 10*time.Millisecond, log)

	bookingRepo.EXPECT().CreateForArena(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *domain.Booking) (*domain.Arena, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err := svc.Create(context.Background(), validBookingInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeout)
}

func TestBookingService_Reconcile_ReleasesDanglingArena(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	arenaRepo := mocks.NewMockArenaRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, arenaRepo, notifier, 5*time.Second, log)

	free := &domain.Arena{ID: "a1"}
	linked := &domain.Arena{
		ID:       "a2",
		IsBooked: &domain.BookedBy{FirstName: "Bob", LastName: "Brown", BookingID: "b2"},
	}
	dangling := &domain.Arena{
		ID:       "a3",
		IsBooked: &domain.BookedBy{FirstName: "Carol", LastName: "Clark", BookingID: "gone"},
	}

	arenaRepo.EXPECT().List(mock.Anything).Return([]*domain.Arena{free, linked, dangling}, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b2").Return(&domain.Booking{ID: "b2"}, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrBookingNotFound)
	arenaRepo.EXPECT().ClearBooking(mock.Anything, "a3").Return(nil)
	notifier.EXPECT().NotifyArenaReleased(mock.Anything, dangling).Return()

	released, err := svc.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a3"}, released)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Reconcile_StoreError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	arenaRepo := mocks.NewMockArenaRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, arenaRepo, notifier, 5*time.Second, log)

	arenaRepo.EXPECT().List(mock.Anything).Return(nil, errors.New("store down"))

	_, err := svc.Reconcile(context.Background())

	require.Error(t, err)
}
