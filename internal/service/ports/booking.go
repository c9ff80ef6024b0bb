package ports

import (
	"context"

	"github.com/ptrvv/ArenaBooker/internal/domain"
)

type BookingRepo interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, firstName, lastName string) ([]*domain.Booking, error)
	CreateForArena(ctx context.Context, b *domain.Booking) (*domain.Arena, error)
}
