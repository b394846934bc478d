package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetDelete(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, s.Set(ctx, "b", []byte("2"), 0))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))

	require.NoError(t, s.Delete(ctx, "a", "b"))

	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ValueIsCopied(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", value, 0))
	value[0] = 'z'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestMemory_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)
	s := &memoryStorage{items: make(map[string]memoryItem), now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	_, err := s.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_EvictKeepsRefreshedEntry(t *testing.T) {
	now := time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)
	s := &memoryStorage{items: make(map[string]memoryItem), now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("old"), time.Minute))
	now = now.Add(time.Minute)

	// A reader saw the stale entry, then a writer refreshed it before eviction.
	stale := s.items["k"]
	require.True(t, s.expired(stale))
	require.NoError(t, s.Set(ctx, "k", []byte("new"), time.Minute))
	s.evict("k")

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	now = now.Add(time.Minute)
	s.evict("k")
	assert.NotContains(t, s.items, "k")
}

func newMockPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	p := NewPostgres(sqlx.NewDb(db, "postgres"), logger)
	p.now = func() time.Time { return time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC) }
	return p, mock
}

func TestPostgres_Get(t *testing.T) {
	p, mock := newMockPostgres(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM disha_kv")).
		WithArgs("disha:context:s1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"x":1}`)))

	got, err := p.Get(context.Background(), "disha:context:s1")
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetMissing(t *testing.T) {
	p, mock := newMockPostgres(t)

	mock.ExpectQuery("SELECT value").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := p.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Set(t *testing.T) {
	p, mock := newMockPostgres(t)

	mock.ExpectExec("INSERT INTO disha_kv").
		WithArgs("k", []byte("v"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, p.Set(context.Background(), "k", []byte("v"), time.Hour))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_DeleteIsSingleStatement(t *testing.T) {
	p, mock := newMockPostgres(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM disha_kv WHERE key = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, p.Delete(context.Background(), "a", "b"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SetError(t *testing.T) {
	p, mock := newMockPostgres(t)

	mock.ExpectExec("INSERT INTO disha_kv").WillReturnError(errors.New("connection reset"))

	err := p.Set(context.Background(), "k", []byte("v"), 0)
	assert.EqualError(t, err, "connection reset")
}
