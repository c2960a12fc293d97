package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/papacapim/papacapim/internal/client/models"
	"github.com/papacapim/papacapim/internal/client/repositories/metadata"
	"github.com/papacapim/papacapim/internal/dbx"
)

const (
	TokenKey = "token"
	UserKey  = "user"
)

// ErrNoSession means no session has been saved.
var ErrNoSession = errors.New("no saved session")

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save writes token and user in a single transaction, replacing any
// previous session.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	user, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, UserKey, user)
	})
}

// Load returns the saved session or ErrNoSession.
func (s *Store) Load(ctx context.Context) (models.Session, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, TokenKey)
	if err != nil {
		return models.Session{}, notFoundAsNoSession(err)
	}
	raw, err := repo.Get(ctx, UserKey)
	if err != nil {
		return models.Session{}, notFoundAsNoSession(err)
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.Session{}, fmt.Errorf("decode saved user: %w", err)
	}

	return models.Session{Token: string(token), User: user}, nil
}

// Clear removes both keys together.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, TokenKey, UserKey)
	})
}

func notFoundAsNoSession(err error) error {
	if errors.Is(err, metadata.ErrNotFound) {
		return ErrNoSession
	}
	return err
}
