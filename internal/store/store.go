// Package store provides a capability-limited document store: schema-less
// JSON documents in named collections, queried by field-equality predicates
// only. Range queries and joins are deliberately not part of the contract.
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("document not found")

// Document is one record of a collection. Data holds the JSON body without
// the id; callers that need the id on the wire merge it in themselves.
type Document struct {
	ID   string
	Data map[string]any
}

// Predicate is an equality match on a field. Dotted paths descend into
// nested objects ("isBooked.firstName"). A map value matches by full
// structural equality, so Predicate{"isBooked", map[string]any{}} selects
// documents whose isBooked is empty.
type Predicate struct {
	Field string
	Value any
}

type DocumentStore interface {
	// Get returns a single document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)
	// Filter returns all documents matching every predicate; an empty
	// result is not an error.
	Filter(ctx context.Context, collection string, preds ...Predicate) ([]Document, error)
	// Create stores data under a generated id and returns it.
	Create(ctx context.Context, collection string, data map[string]any) (string, error)
	// Set creates or fully replaces a document.
	Set(ctx context.Context, collection, id string, data map[string]any) error
	// MergeSet updates the given top-level fields of an existing document,
	// leaving others unchanged. ErrNotFound if the document does not exist.
	MergeSet(ctx context.Context, collection, id string, patch map[string]any) error
	// Delete removes a document. Deleting a missing document is a no-op.
	Delete(ctx context.Context, collection, id string) error
}

// TxStore is a DocumentStore whose backend supports transactions. Inside
// InTx all operations run on one transaction and Get locks the document row
// until commit, so a read-check-write sequence is safe under concurrency.
type TxStore interface {
	DocumentStore
	InTx(ctx context.Context, fn func(tx DocumentStore) error) error
}
