package service

import (
	"context"
	"testing"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArenaService_Create(t *testing.T) {
	repo := mocks.NewMockArenaRepo(t)
	svc := NewArenaService(repo)

	isPublic := true
	input := domain.CreateArenaInput{
		Name:     "Centre Court",
		Location: "Riverside",
		Address:  "1 Main St",
		IsPublic: &isPublic,
		Sport:    "tennis",
	}

	repo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, a *domain.Arena) (string, error) {
			a.ID = "a1"
			return "a1", nil
		})

	arena, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "a1", arena.ID)
	assert.Equal(t, "Centre Court", arena.Name)
	assert.True(t, arena.IsPublic)
	assert.Nil(t, arena.IsBooked)
}

func TestArenaService_Create_MissingRequired(t *testing.T) {
	repo := mocks.NewMockArenaRepo(t)
	svc := NewArenaService(repo)

	isPublic := false
	cases := []struct {
		name  string
		input domain.CreateArenaInput
	}{
		{"no name", domain.CreateArenaInput{Location: "l", Address: "a", IsPublic: &isPublic}},
		{"no location", domain.CreateArenaInput{Name: "n", Address: "a", IsPublic: &isPublic}},
		{"no address", domain.CreateArenaInput{Name: "n", Location: "l", IsPublic: &isPublic}},
		{"no isPublic", domain.CreateArenaInput{Name: "n", Location: "l", Address: "a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestArenaService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockArenaRepo(t)
	svc := NewArenaService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrArenaNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArenaNotFound)
}

func TestArenaService_ListAvailable(t *testing.T) {
	repo := mocks.NewMockArenaRepo(t)
	svc := NewArenaService(repo)

	arenas := []*domain.Arena{{ID: "a1"}, {ID: "a2"}}
	repo.EXPECT().ListAvailable(mock.Anything).Return(arenas, nil)

	got, err := svc.ListAvailable(context.Background())

	require.NoError(t, err)
	assert.Equal(t, arenas, got)
}
