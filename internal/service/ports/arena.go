package ports

import (
	"context"

	"github.com/ptrvv/ArenaBooker/internal/domain"
)

type ArenaRepo interface {
	List(ctx context.Context) ([]*domain.Arena, error)
	GetByID(ctx context.Context, id string) (*domain.Arena, error)
	ListByLocation(ctx context.Context, location string) ([]*domain.Arena, error)
	ListBookedBy(ctx context.Context, firstName, lastName string) ([]*domain.Arena, error)
	GetIDByName(ctx context.Context, name string) (string, error)
	ListAvailable(ctx context.Context) ([]*domain.Arena, error)
	Create(ctx context.Context, a *domain.Arena) (string, error)
	ClearBooking(ctx context.Context, id string) error
}
