package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/papacapim/papacapim/internal/client/models"
	"github.com/papacapim/papacapim/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(openDB(t, filepath.Join(t.TempDir(), "session.db")))
}

func TestStore_LoadEmpty(t *testing.T) {
	_, err := newStore(t).Load(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	want := models.Session{Token: "t1", User: models.User{ID: 1, Login: "ana", Name: "Ana Clara"}}
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.Session{Token: "old", User: models.User{ID: 1, Login: "ana"}}))
	require.NoError(t, s.Save(ctx, models.Session{Token: "new", User: models.User{ID: 2, Login: "bia"}}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Token)
	assert.Equal(t, "bia", got.User.Login)
}

func TestStore_ClearThenLoadIsAbsent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.Session{Token: "t1", User: models.User{ID: 1, Login: "ana"}}))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx), "clearing twice is fine")

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, path)
	require.NoError(t, err)
	want := models.Session{Token: "t1", User: models.User{ID: 1, Login: "ana"}}
	require.NoError(t, NewStore(db).Save(ctx, want))
	require.NoError(t, db.Close())

	got, err := NewStore(openDB(t, path)).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_TokenWithoutUserIsAbsent(t *testing.T) {
	db := openDB(t, filepath.Join(t.TempDir(), "session.db"))
	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES ('token', 't1')`)
	require.NoError(t, err)

	_, err = NewStore(db).Load(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
}

func TestStore_CorruptUser(t *testing.T) {
	db := openDB(t, filepath.Join(t.TempDir(), "session.db"))
	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES ('token', 't1'), ('user', '{oops')`)
	require.NoError(t, err)

	_, err = NewStore(db).Load(context.Background())
	require.ErrorContains(t, err, "decode saved user")
	require.NotErrorIs(t, err, ErrNoSession)
}
