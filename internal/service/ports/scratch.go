package ports

import (
	"context"

	"github.com/ptrvv/ArenaBooker/internal/domain"
)

type ScratchRepo interface {
	List(ctx context.Context) ([]domain.ScratchItem, error)
	Search(ctx context.Context, key1 string) ([]domain.ScratchItem, error)
	Get(ctx context.Context, id string) (domain.ScratchItem, error)
	Add(ctx context.Context, key1, key2 string) (string, error)
	Set(ctx context.Context, id, key1, key2 string) error
	Delete(ctx context.Context, id string) error
}
