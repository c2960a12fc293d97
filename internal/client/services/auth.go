// Package services contains the application services of the Papacapim
// client. They sit between the screens and the API client and own the
// session side effects.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/papacapim/papacapim/internal/client/client"
	"github.com/papacapim/papacapim/internal/client/models"
	"github.com/papacapim/papacapim/internal/client/session"
	"github.com/papacapim/papacapim/internal/logging"
)

// ErrNotAuthenticated is returned by operations that need a signed-in user.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthService defines the account operations used by the screens.
//
// Contract:
//   - Login: create a session on the server, persist it and make it current.
//   - UpdateProfile / DeleteAccount: act on the current user; they do not
//     touch the session, callers decide whether to log out.
//   - Logout: forget the session locally; no network call.
//   - Restore: rehydrate the session saved by a previous run.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.Session, error)
	UpdateProfile(ctx context.Context, login, name, password string) error
	DeleteAccount(ctx context.Context) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	CurrentUser() (models.User, bool)
}

type authService struct {
	client   client.Client
	sessions *session.Manager
	logger   logging.Logger
}

func NewAuthService(c client.Client, sessions *session.Manager, logger logging.Logger) AuthService {
	return &authService{client: c, sessions: sessions, logger: logger}
}

func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	s, err := a.client.Login(ctx, username, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login error: %w", err)
	}

	if err := a.sessions.Set(ctx, s); err != nil {
		return models.Session{}, fmt.Errorf("session saving error: %w", err)
	}

	a.logger.Info(ctx, "signed in", "user", s.User.Login)
	return s, nil
}

func (a *authService) UpdateProfile(ctx context.Context, login, name, password string) error {
	u, ok := a.sessions.User()
	if !ok {
		return ErrNotAuthenticated
	}

	if err := a.client.UpdateUser(ctx, u.ID, models.NewUpdateUserRequest(login, name, password)); err != nil {
		return fmt.Errorf("update user error: %w", err)
	}
	return nil
}

func (a *authService) DeleteAccount(ctx context.Context) error {
	u, ok := a.sessions.User()
	if !ok {
		return ErrNotAuthenticated
	}

	if err := a.client.DeleteUser(ctx, u.ID); err != nil {
		return fmt.Errorf("delete user error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	a.logger.Info(ctx, "signed out")
	return nil
}

func (a *authService) Restore(ctx context.Context) error {
	if err := a.sessions.Restore(ctx); err != nil {
		return fmt.Errorf("session restore error: %w", err)
	}
	if u, ok := a.sessions.User(); ok {
		a.logger.Info(ctx, "session restored", "user", u.Login)
	}
	return nil
}

func (a *authService) CurrentUser() (models.User, bool) {
	return a.sessions.User()
}
