package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Postgres keeps every collection in one documents table with a JSONB body.
// Reads are retried on transient failures; writes execute exactly once.
type Postgres struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPostgres(db *dbpg.DB) *Postgres {
	return &Postgres{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (p *Postgres) Get(ctx context.Context, collection, id string) (Document, error) {
	query := `SELECT data FROM documents WHERE collection = $1 AND id = $2`

	row, err := p.db.QueryRowWithRetry(ctx, p.strategy, query, collection, id)
	if err != nil {
		return Document{}, fmt.Errorf("get document: %w", err)
	}

	var raw []byte
	if err = row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("scan document: %w", err)
	}

	return decodeDocument(id, raw)
}

func (p *Postgres) Filter(ctx context.Context, collection string, preds ...Predicate) ([]Document, error) {
	query, args, err := filterQuery(collection, preds)
	if err != nil {
		return nil, err
	}

	rows, err := p.db.QueryWithRetry(ctx, p.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter documents: %w", err)
	}
	defer rows.Close()

	var res []Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err = rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc, err := decodeDocument(id, raw)
		if err != nil {
			return nil, err
		}
		res = append(res, doc)
	}

	return res, rows.Err()
}

func (p *Postgres) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.New().String()
	if err := insertDocument(ctx, p.db.Master, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (p *Postgres) Set(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	query := `INSERT INTO documents (collection, id, data)
			  VALUES ($1, $2, $3::jsonb)
			  ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data`
	if _, err = p.db.Master.ExecContext(ctx, query, collection, id, raw); err != nil {
		return fmt.Errorf("set document: %w", err)
	}

	return nil
}

func (p *Postgres) MergeSet(ctx context.Context, collection, id string, patch map[string]any) error {
	return mergeDocument(ctx, p.db.Master, collection, id, patch)
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`
	if _, err := p.db.Master.ExecContext(ctx, query, collection, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func (p *Postgres) InTx(ctx context.Context, fn func(tx DocumentStore) error) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(&pgTx{tx: tx}); err != nil {
		return err
	}

	return tx.Commit()
}

// pgTx runs document operations on one transaction. Get locks the row so a
// later write in the same transaction cannot race a concurrent request.
type pgTx struct {
	tx *sql.Tx
}

func (t *pgTx) Get(ctx context.Context, collection, id string) (Document, error) {
	query := `SELECT data FROM documents WHERE collection = $1 AND id = $2 FOR UPDATE`

	var raw []byte
	if err := t.tx.QueryRowContext(ctx, query, collection, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("get document: %w", err)
	}

	return decodeDocument(id, raw)
}

func (t *pgTx) Filter(ctx context.Context, collection string, preds ...Predicate) ([]Document, error) {
	query, args, err := filterQuery(collection, preds)
	if err != nil {
		return nil, err
	}

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter documents: %w", err)
	}
	defer rows.Close()

	var res []Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err = rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc, err := decodeDocument(id, raw)
		if err != nil {
			return nil, err
		}
		res = append(res, doc)
	}

	return res, rows.Err()
}

func (t *pgTx) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.New().String()
	if err := insertDocument(ctx, t.tx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (t *pgTx) Set(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	query := `INSERT INTO documents (collection, id, data)
			  VALUES ($1, $2, $3::jsonb)
			  ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data`
	if _, err = t.tx.ExecContext(ctx, query, collection, id, raw); err != nil {
		return fmt.Errorf("set document: %w", err)
	}

	return nil
}

func (t *pgTx) MergeSet(ctx context.Context, collection, id string, patch map[string]any) error {
	return mergeDocument(ctx, t.tx, collection, id, patch)
}

func (t *pgTx) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`
	if _, err := t.tx.ExecContext(ctx, query, collection, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertDocument(ctx context.Context, db execer, collection, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	query := `INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3::jsonb)`
	if _, err = db.ExecContext(ctx, query, collection, id, raw); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	return nil
}

func mergeDocument(ctx context.Context, db execer, collection, id string, patch map[string]any) error {
	raw, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}

	query := `UPDATE documents SET data = data || $3::jsonb
			  WHERE collection = $1 AND id = $2`
	res, err := db.ExecContext(ctx, query, collection, id, raw)
	if err != nil {
		return fmt.Errorf("merge document: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("merge rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// filterQuery compiles equality predicates to JSONB path comparisons.
// Each predicate becomes `data #> path = value::jsonb`, which compares by
// JSON value, so strings, numbers, booleans and empty objects all match
// structurally.
func filterQuery(collection string, preds []Predicate) (string, []any, error) {
	var b strings.Builder
	b.WriteString(`SELECT id, data FROM documents WHERE collection = $1`)
	args := []any{collection}

	for _, p := range preds {
		val, err := json.Marshal(p.Value)
		if err != nil {
			return "", nil, fmt.Errorf("encode predicate %q: %w", p.Field, err)
		}
		args = append(args, pq.Array(strings.Split(p.Field, ".")), string(val))
		fmt.Fprintf(&b, " AND data #> $%d::text[] = $%d::jsonb", len(args)-1, len(args))
	}
	b.WriteString(` ORDER BY id`)

	return b.String(), args, nil
}

func decodeDocument(id string, raw []byte) (Document, error) {
	data := make(map[string]any)
	if err := json.Unmarshal(raw, &data); err != nil {
		return Document{}, fmt.Errorf("decode document %s: %w", id, err)
	}
	return Document{ID: id, Data: data}, nil
}
