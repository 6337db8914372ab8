package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type kv interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

func exerciseKV(t *testing.T, s kv) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "crypto_api_token")
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, s.Set(ctx, "crypto_api_token", "t1"))
	require.NoError(t, s.Set(ctx, "crypto_api_token", "t2"))
	v, err := s.Get(ctx, "crypto_api_token")
	require.NoError(t, err)
	require.Equal(t, "t2", v)

	require.NoError(t, s.Delete(ctx, "crypto_api_token"))
	require.NoError(t, s.Delete(ctx, "crypto_api_token"))
	_, err = s.Get(ctx, "crypto_api_token")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseKV(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	t.Parallel()
	exerciseKV(t, NewFileStore(filepath.Join(t.TempDir(), "nested", "state.json")))
}

// Значение переживает новый экземпляр хранилища (перезапуск процесса)
func TestFileStore_Persists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	require.NoError(t, NewFileStore(path).Set(ctx, "crypto_api_token", "jwt"))

	v, err := NewFileStore(path).Get(ctx, "crypto_api_token")
	require.NoError(t, err)
	require.Equal(t, "jwt", v)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_CorruptFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Get(context.Background(), "k")
	require.Error(t, err)
	require.False(t, errors.Is(err, errs.ErrNotFound))
}

// fakeRedis - map поверх конструкторов результатов go-redis
type fakeRedis struct {
	data map[string]string
	fail error
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.fail != nil {
		return redis.NewStringResult("", f.fail)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.fail != nil {
		return redis.NewStatusResult("", f.fail)
	}
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	fake := &fakeRedis{data: map[string]string{}}
	exerciseKV(t, NewRedisStore(fake, "dash:"))

	require.NoError(t, NewRedisStore(fake, "dash:").Set(context.Background(), "k", "v"))
	require.Equal(t, "v", fake.data["dash:k"])
}

func TestRedisStore_Error(t *testing.T) {
	t.Parallel()

	s := NewRedisStore(&fakeRedis{data: map[string]string{}, fail: errors.New("conn reset")}, "")
	_, err := s.Get(context.Background(), "k")
	require.ErrorContains(t, err, "conn reset")
	require.False(t, errors.Is(err, errs.ErrNotFound))
}

// fakeDB - эмуляция таблицы для PostgresStore
type fakeDB struct {
	rows    map[string]string
	queries []string
}

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, sql)
	switch {
	case strings.HasPrefix(sql, "INSERT"):
		f.rows[args[0].(string)] = args[1].(string)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case strings.HasPrefix(sql, "DELETE"):
		delete(f.rows, args[0].(string))
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, sql)
	v, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func TestPostgresStore(t *testing.T) {
	t.Parallel()

	db := &fakeDB{rows: map[string]string{}}
	s := NewPostgresStore(db, "")
	require.NoError(t, s.EnsureSchema(context.Background()))
	exerciseKV(t, s)

	require.Contains(t, db.queries[0], `CREATE TABLE IF NOT EXISTS "client_storage"`)
}
