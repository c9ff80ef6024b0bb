package service

import (
	"context"
	"fmt"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/service/ports"
)

type ArenaService struct {
	repo ports.ArenaRepo
}

func NewArenaService(repo ports.ArenaRepo) *ArenaService {
	return &ArenaService{repo: repo}
}

func (s *ArenaService) Create(ctx context.Context, input domain.CreateArenaInput) (*domain.Arena, error) {
	if input.Name == "" || input.Location == "" || input.Address == "" || input.IsPublic == nil {
		return nil, fmt.Errorf("%w: name, location, address and isPublic are required", domain.ErrValidation)
	}

	arena := &domain.Arena{
		Name:        input.Name,
		Location:    input.Location,
		Address:     input.Address,
		IsPublic:    *input.IsPublic,
		Description: input.Description,
		Capacity:    input.Capacity,
		Sport:       input.Sport,
		Image:       input.Image,
		Rate:        input.Rate,
		Rating:      input.Rating,
	}

	if _, err := s.repo.Create(ctx, arena); err != nil {
		return nil, fmt.Errorf("create arena: %w", err)
	}

	return arena, nil
}

func (s *ArenaService) List(ctx context.Context) ([]*domain.Arena, error) {
	return s.repo.List(ctx)
}

func (s *ArenaService) GetByID(ctx context.Context, id string) (*domain.Arena, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ArenaService) ListByLocation(ctx context.Context, location string) ([]*domain.Arena, error) {
	return s.repo.ListByLocation(ctx, location)
}

func (s *ArenaService) ListBookedBy(ctx context.Context, firstName, lastName string) ([]*domain.Arena, error) {
	return s.repo.ListBookedBy(ctx, firstName, lastName)
}

func (s *ArenaService) GetIDByName(ctx context.Context, name string) (string, error) {
	return s.repo.GetIDByName(ctx, name)
}

func (s *ArenaService) ListAvailable(ctx context.Context) ([]*domain.Arena, error) {
	return s.repo.ListAvailable(ctx)
}
