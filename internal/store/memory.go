package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process TxStore. A single mutex guards all collections
// and stays held for the whole of InTx, which serializes read-check-write
// sequences the same way row locks do on Postgres.
type Memory struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]any
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]map[string]any)}
}

func (m *Memory) Get(ctx context.Context, collection, id string) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(collection, id)
}

func (m *Memory) Filter(ctx context.Context, collection string, preds ...Predicate) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter(collection, preds)
}

func (m *Memory) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.create(collection, data)
}

func (m *Memory) Set(ctx context.Context, collection, id string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set(collection, id, data)
}

func (m *Memory) MergeSet(ctx context.Context, collection, id string, patch map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mergeSet(collection, id, patch)
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections[collection], id)
	return nil
}

func (m *Memory) InTx(ctx context.Context, fn func(tx DocumentStore) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.snapshot()
	if err := fn(&memTx{m: m}); err != nil {
		m.collections = snapshot
		return err
	}

	return nil
}

// memTx forwards to the already-locked store.
type memTx struct {
	m *Memory
}

func (t *memTx) Get(ctx context.Context, collection, id string) (Document, error) {
	return t.m.get(collection, id)
}

func (t *memTx) Filter(ctx context.Context, collection string, preds ...Predicate) ([]Document, error) {
	return t.m.filter(collection, preds)
}

func (t *memTx) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	return t.m.create(collection, data)
}

func (t *memTx) Set(ctx context.Context, collection, id string, data map[string]any) error {
	return t.m.set(collection, id, data)
}

func (t *memTx) MergeSet(ctx context.Context, collection, id string, patch map[string]any) error {
	return t.m.mergeSet(collection, id, patch)
}

func (t *memTx) Delete(ctx context.Context, collection, id string) error {
	delete(t.m.collections[collection], id)
	return nil
}

func (m *Memory) get(collection, id string) (Document, error) {
	data, ok := m.collections[collection][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Data: deepCopy(data)}, nil
}

func (m *Memory) filter(collection string, preds []Predicate) ([]Document, error) {
	ids := make([]string, 0, len(m.collections[collection]))
	for id := range m.collections[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var res []Document
	for _, id := range ids {
		data := m.collections[collection][id]
		if matches(data, preds) {
			res = append(res, Document{ID: id, Data: deepCopy(data)})
		}
	}
	return res, nil
}

func (m *Memory) create(collection string, data map[string]any) (string, error) {
	id := uuid.New().String()
	if err := m.set(collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (m *Memory) set(collection, id string, data map[string]any) error {
	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string]map[string]any)
	}
	m.collections[collection][id] = deepCopy(data)
	return nil
}

func (m *Memory) mergeSet(collection, id string, patch map[string]any) error {
	data, ok := m.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range deepCopy(patch) {
		data[k] = v
	}
	return nil
}

func (m *Memory) snapshot() map[string]map[string]map[string]any {
	out := make(map[string]map[string]map[string]any, len(m.collections))
	for col, docs := range m.collections {
		out[col] = make(map[string]map[string]any, len(docs))
		for id, data := range docs {
			out[col][id] = deepCopy(data)
		}
	}
	return out
}

func matches(data map[string]any, preds []Predicate) bool {
	for _, p := range preds {
		got, ok := lookup(data, strings.Split(p.Field, "."))
		if !ok || !equalJSON(got, p.Value) {
			return false
		}
	}
	return true
}

func lookup(data map[string]any, path []string) (any, bool) {
	var cur any = data
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// equalJSON compares by JSON value, mirroring the structural equality the
// Postgres implementation gets from jsonb comparison.
func equalJSON(a, b any) bool {
	ja, err := json.Marshal(a)
	if err != nil {
		return false
	}
	jb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}

func deepCopy(data map[string]any) map[string]any {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(fmt.Sprintf("store: document not serializable: %v", err))
	}
	out := make(map[string]any, len(data))
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("store: document not serializable: %v", err))
	}
	return out
}
