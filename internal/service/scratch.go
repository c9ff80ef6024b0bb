package service

import (
	"context"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/service/ports"
)

type ScratchService struct {
	repo ports.ScratchRepo
}

func NewScratchService(repo ports.ScratchRepo) *ScratchService {
	return &ScratchService{repo: repo}
}

func (s *ScratchService) List(ctx context.Context) ([]domain.ScratchItem, error) {
	return s.repo.List(ctx)
}

func (s *ScratchService) Search(ctx context.Context, key1 string) ([]domain.ScratchItem, error) {
	return s.repo.Search(ctx, key1)
}

func (s *ScratchService) Get(ctx context.Context, id string) (domain.ScratchItem, error) {
	return s.repo.Get(ctx, id)
}

func (s *ScratchService) Add(ctx context.Context, key1, key2 string) (string, error) {
	return s.repo.Add(ctx, key1, key2)
}

func (s *ScratchService) Set(ctx context.Context, id, key1, key2 string) error {
	return s.repo.Set(ctx, id, key1, key2)
}

func (s *ScratchService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
