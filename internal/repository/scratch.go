package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/store"
)

// collection name predates this server; kept so existing data stays reachable
const collectionScratch = "test2"

// ScratchRepository exposes the raw document operations over the scratch
// collection.
type ScratchRepository struct {
	store store.DocumentStore
}

func NewScratchRepository(s store.DocumentStore) *ScratchRepository {
	return &ScratchRepository{store: s}
}

func (r *ScratchRepository) List(ctx context.Context) ([]domain.ScratchItem, error) {
	docs, err := r.store.Filter(ctx, collectionScratch)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return itemsFromDocs(docs), nil
}

func (r *ScratchRepository) Search(ctx context.Context, key1 string) ([]domain.ScratchItem, error) {
	docs, err := r.store.Filter(ctx, collectionScratch, store.Predicate{Field: "key1", Value: key1})
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return itemsFromDocs(docs), nil
}

func (r *ScratchRepository) Get(ctx context.Context, id string) (domain.ScratchItem, error) {
	doc, err := r.store.Get(ctx, collectionScratch, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ScratchItem{}, domain.ErrItemNotFound
		}
		return domain.ScratchItem{}, fmt.Errorf("get item: %w", err)
	}
	return itemFromDoc(doc), nil
}

func (r *ScratchRepository) Add(ctx context.Context, key1, key2 string) (string, error) {
	id, err := r.store.Create(ctx, collectionScratch, itemData(key1, key2))
	if err != nil {
		return "", fmt.Errorf("add item: %w", err)
	}
	return id, nil
}

// Set replaces the whole document, creating it if absent.
func (r *ScratchRepository) Set(ctx context.Context, id, key1, key2 string) error {
	if err := r.store.Set(ctx, collectionScratch, id, itemData(key1, key2)); err != nil {
		return fmt.Errorf("set item: %w", err)
	}
	return nil
}

func (r *ScratchRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, collectionScratch, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func itemData(key1, key2 string) map[string]any {
	return map[string]any{"key1": key1, "key2": key2}
}

func itemFromDoc(doc store.Document) domain.ScratchItem {
	item := domain.ScratchItem{ID: doc.ID}
	if v, ok := doc.Data["key1"].(string); ok {
		item.Key1 = v
	}
	if v, ok := doc.Data["key2"].(string); ok {
		item.Key2 = v
	}
	return item
}

func itemsFromDocs(docs []store.Document) []domain.ScratchItem {
	res := make([]domain.ScratchItem, 0, len(docs))
	for _, doc := range docs {
		res = append(res, itemFromDoc(doc))
	}
	return res
}
