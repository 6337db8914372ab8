package storage

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier - общее у *pgxpool.Pool и pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore - таблица key/value (по умолчанию client_storage)
type PostgresStore struct {
	db    querier
	table string
}

func NewPostgresStore(db querier, table string) *PostgresStore {
	if table == "" {
		table = "client_storage"
	}
	return &PostgresStore{db: db, table: table}
}

// EnsureSchema - создать таблицу, если её нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`, pgx.Identifier{s.table}.Sanitize())
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure storage schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = $1;`, pgx.Identifier{s.table}.Sanitize())

	var v string
	if err := s.db.QueryRow(ctx, query, key).Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errs.ErrNotFound
		}
		return "", fmt.Errorf("select storage value: %w", err)
	}
	return v, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := fmt.Sprintf(`INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now();`,
		pgx.Identifier{s.table}.Sanitize())
	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert storage value: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE key = $1;`, pgx.Identifier{s.table}.Sanitize())
	if _, err := s.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete storage value: %w", err)
	}
	return nil
}
