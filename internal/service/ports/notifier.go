package ports

import (
	"context"

	"github.com/ptrvv/ArenaBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking, a *domain.Arena)
	NotifyArenaReleased(ctx context.Context, a *domain.Arena)
}
