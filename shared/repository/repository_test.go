package repository_test

import (
	"context"
	"errors"
	"portfolio/infras/otel/mocks"
	"portfolio/infras/postgres"
	"portfolio/shared/dto"
	"portfolio/shared/repository"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schema = `
CREATE TABLE entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT NOT NULL UNIQUE,
	note TEXT,
	created_at TIMESTAMP NOT NULL
)`

type entry struct {
	ID        int64     `db:"id"         insert:"-"`
	Email     string    `db:"email"`
	Note      *string   `db:"note"`
	CreatedAt time.Time `db:"created_at"`
	Ignored   string    `db:"-"`
}

func setupRepo(t *testing.T) repository.Repository[entry] {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)

	conn := &postgres.Connection{Read: db, Write: db}

	return repository.NewRepository[entry]("entry", "entries", "id", conn, mocks.NewOtel())
}

func TestRepository_InsertColumns(t *testing.T) {
	repo := setupRepo(t)

	assert.Equal(t, []string{"email", "note", "created_at"}, repo.InsertColumns)
}

func TestRepository_InsertAndGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	note := "hello"

	firstID, err := repo.Insert(ctx, entry{Email: "a@example.com", Note: &note, CreatedAt: time.Now()})
	require.NoError(t, err)

	secondID, err := repo.Insert(ctx, entry{Email: "b@example.com", CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.Greater(t, secondID, firstID)

	got, err := repo.Get(ctx, filterEmail("a@example.com"))
	require.NoError(t, err)
	assert.Equal(t, firstID, got.ID)
	require.NotNil(t, got.Note)
	assert.Equal(t, "hello", *got.Note)

	got, err = repo.Get(ctx, filterEmail("b@example.com"))
	require.NoError(t, err)
	assert.Nil(t, got.Note)

	missing, err := repo.Get(ctx, filterEmail("nobody@example.com"))
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestRepository_InsertUniqueViolation(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, entry{Email: "dup@example.com", CreatedAt: time.Now()})
	require.NoError(t, err)

	_, err = repo.Insert(ctx, entry{Email: "dup@example.com", CreatedAt: time.Now()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUniqueViolation))

	count, err := repo.Count(ctx, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_GetAllOrdering(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	same := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	for _, e := range []entry{
		{Email: "old@example.com", CreatedAt: same.Add(-time.Hour)},
		{Email: "tie1@example.com", CreatedAt: same},
		{Email: "tie2@example.com", CreatedAt: same},
	} {
		_, err := repo.Insert(ctx, e)
		require.NoError(t, err)
	}

	newest := dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc}

	first, err := repo.GetAll(ctx, newest, dto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "tie2@example.com", first[0].Email)
	assert.Equal(t, "tie1@example.com", first[1].Email)
	assert.Equal(t, "old@example.com", first[2].Email)

	second, err := repo.GetAll(ctx, newest, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	page, err := repo.GetAll(ctx, dto.QueryParams{Page: 2, Limit: 2, SortBy: "created_at", SortDir: dto.SortDirDesc}, dto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "old@example.com", page[0].Email)
}

func TestRepository_GetAllIgnoresUnknownSort(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, entry{Email: "a@example.com", CreatedAt: time.Now()})
	require.NoError(t, err)

	rows, err := repo.GetAll(ctx, dto.QueryParams{SortBy: "email; DROP TABLE entries", SortDir: "DESC"}, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	empty, err := repo.GetAll(ctx, dto.QueryParams{}, filterEmail("none@example.com"))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func filterEmail(email string) dto.FilterGroup {
	return dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "email", Value: email, Operator: dto.FilterOperatorEq, Table: "entries"},
	}}
}
