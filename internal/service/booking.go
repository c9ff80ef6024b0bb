package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	arenaRepo   ports.ArenaRepo
	notifier    ports.BookingNotifier
	timeout     time.Duration
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	arenaRepo ports.ArenaRepo,
	notifier ports.BookingNotifier,
	timeout time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		arenaRepo:   arenaRepo,
		notifier:    notifier,
		timeout:     timeout,
		logger:      logger,
	}
}

// Create books an arena: validate input, then run the reservation sequence
// under the workflow timeout. On deadline expiry the transaction rolls back,
// so a timed-out request leaves no partial writes.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.FirstName == "" || input.LastName == "" || input.PhoneNumber == "" ||
		input.Email == "" || input.Date == "" || input.Time == "" || input.ArenaID == "" {
		return nil, fmt.Errorf("%w: missing required field", domain.ErrValidation)
	}

	paymentInfo := input.PaymentInfo
	if paymentInfo == nil {
		paymentInfo = map[string]any{}
	}

	booking := &domain.Booking{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Date:        input.Date,
		Time:        input.Time,
		IsRepeat:    input.IsRepeat,
		PaymentInfo: paymentInfo,
		ArenaID:     input.ArenaID,
		CreatedAt:   time.Now().UTC(),
	}

	wctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	arena, err := s.bookingRepo.CreateForArena(wctx, booking)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: booking did not complete within %s", domain.ErrTimeout, s.timeout)
		}
		return nil, err
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("arena_id", arena.ID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, arena)

	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *BookingService) ListByUser(ctx context.Context, firstName, lastName string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, firstName, lastName)
}

// Reconcile releases arenas whose isBooked marker references a booking
// document that no longer exists. The workflow itself cannot produce such a
// state; out-of-band writes to the store can. Returns the released arena
// ids.
func (s *BookingService) Reconcile(ctx context.Context) ([]string, error) {
	arenas, err := s.arenaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list arenas: %w", err)
	}

	var released []string
	for _, a := range arenas {
		if a.Available() {
			continue
		}

		_, err := s.bookingRepo.GetByID(ctx, a.IsBooked.BookingID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrBookingNotFound) {
			return released, fmt.Errorf("check booking %s: %w", a.IsBooked.BookingID, err)
		}

		if err := s.arenaRepo.ClearBooking(ctx, a.ID); err != nil {
			return released, fmt.Errorf("release arena %s: %w", a.ID, err)
		}

		s.logger.Warn("released arena with dangling booking reference",
			logger.String("arena_id", a.ID),
			logger.String("booking_id", a.IsBooked.BookingID),
		)
		released = append(released, a.ID)

		go s.notifier.NotifyArenaReleased(context.WithoutCancel(ctx), a)
	}

	return released, nil
}
