package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/store"
)

const collectionArenas = "arenas"

type ArenaRepository struct {
	store store.DocumentStore
}

func NewArenaRepository(s store.DocumentStore) *ArenaRepository {
	return &ArenaRepository{store: s}
}

// List returns every arena; no matches is an empty slice, not an error.
func (r *ArenaRepository) List(ctx context.Context) ([]*domain.Arena, error) {
	docs, err := r.store.Filter(ctx, collectionArenas)
	if err != nil {
		return nil, fmt.Errorf("list arenas: %w", err)
	}
	return arenasFromDocs(docs)
}

func (r *ArenaRepository) GetByID(ctx context.Context, id string) (*domain.Arena, error) {
	doc, err := r.store.Get(ctx, collectionArenas, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrArenaNotFound
		}
		return nil, fmt.Errorf("get arena: %w", err)
	}
	return arenaFromDoc(doc)
}

// ListByLocation keeps the original contract of reporting an empty match
// as not-found rather than an empty list.
func (r *ArenaRepository) ListByLocation(ctx context.Context, location string) ([]*domain.Arena, error) {
	docs, err := r.store.Filter(ctx, collectionArenas, store.Predicate{Field: "location", Value: location})
	if err != nil {
		return nil, fmt.Errorf("list arenas by location: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrArenaNotFound
	}
	return arenasFromDocs(docs)
}

func (r *ArenaRepository) ListBookedBy(ctx context.Context, firstName, lastName string) ([]*domain.Arena, error) {
	docs, err := r.store.Filter(ctx, collectionArenas,
		store.Predicate{Field: "isBooked.firstName", Value: firstName},
		store.Predicate{Field: "isBooked.lastName", Value: lastName},
	)
	if err != nil {
		return nil, fmt.Errorf("list arenas booked by user: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrArenaNotFound
	}
	return arenasFromDocs(docs)
}

// GetIDByName resolves an arena name to its document id, first match wins.
func (r *ArenaRepository) GetIDByName(ctx context.Context, name string) (string, error) {
	docs, err := r.store.Filter(ctx, collectionArenas, store.Predicate{Field: "name", Value: name})
	if err != nil {
		return "", fmt.Errorf("get arena by name: %w", err)
	}
	if len(docs) == 0 {
		return "", domain.ErrArenaNotFound
	}
	return docs[0].ID, nil
}

func (r *ArenaRepository) ListAvailable(ctx context.Context) ([]*domain.Arena, error) {
	docs, err := r.store.Filter(ctx, collectionArenas,
		store.Predicate{Field: "isBooked", Value: map[string]any{}},
	)
	if err != nil {
		return nil, fmt.Errorf("list available arenas: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrArenaNotFound
	}
	return arenasFromDocs(docs)
}

func (r *ArenaRepository) Create(ctx context.Context, a *domain.Arena) (string, error) {
	id, err := r.store.Create(ctx, collectionArenas, arenaData(a))
	if err != nil {
		return "", fmt.Errorf("create arena: %w", err)
	}
	a.ID = id
	return id, nil
}

// ClearBooking is the compensating transition: it merge-clears isBooked so
// the arena becomes available again. Not exposed over HTTP.
func (r *ArenaRepository) ClearBooking(ctx context.Context, id string) error {
	err := r.store.MergeSet(ctx, collectionArenas, id, map[string]any{"isBooked": map[string]any{}})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrArenaNotFound
		}
		return fmt.Errorf("clear booking: %w", err)
	}
	return nil
}

func arenaData(a *domain.Arena) map[string]any {
	isBooked := map[string]any{}
	if a.IsBooked != nil {
		isBooked = map[string]any{
			"firstName": a.IsBooked.FirstName,
			"lastName":  a.IsBooked.LastName,
			"bookingId": a.IsBooked.BookingID,
		}
	}

	return map[string]any{
		"name":        a.Name,
		"location":    a.Location,
		"address":     a.Address,
		"isPublic":    a.IsPublic,
		"description": a.Description,
		"sport":       a.Sport,
		"capacity":    a.Capacity,
		"image":       a.Image,
		"rate":        a.Rate,
		"rating":      a.Rating,
		"isBooked":    isBooked,
	}
}

func arenaFromDoc(doc store.Document) (*domain.Arena, error) {
	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("decode arena %s: %w", doc.ID, err)
	}

	var a domain.Arena
	if err = json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode arena %s: %w", doc.ID, err)
	}
	a.ID = doc.ID

	// an empty isBooked object means available
	if a.IsBooked != nil && *a.IsBooked == (domain.BookedBy{}) {
		a.IsBooked = nil
	}

	return &a, nil
}

func arenasFromDocs(docs []store.Document) ([]*domain.Arena, error) {
	res := make([]*domain.Arena, 0, len(docs))
	for _, doc := range docs {
		a, err := arenaFromDoc(doc)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}
