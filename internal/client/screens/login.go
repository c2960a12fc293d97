package screens

import (
	"context"
	"fmt"
	"sync"

	"github.com/papacapim/papacapim/internal/client/services"
	"github.com/papacapim/papacapim/internal/logging"
)

type LoginState int

const (
	LoginIdle LoginState = iota
	LoginSubmitting
	LoginAuthenticated
)

func (s LoginState) String() string {
	switch s {
	case LoginIdle:
		return "idle"
	case LoginSubmitting:
		return "submitting"
	case LoginAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("LoginState(%d)", int(s))
	}
}

type Login struct {
	auth   services.AuthService
	alerts Alerter
	nav    Navigator
	logger logging.Logger

	mu       sync.Mutex
	username string
	password string
	state    LoginState
}

func NewLogin(auth services.AuthService, alerts Alerter, nav Navigator, logger logging.Logger) *Login {
	return &Login{auth: auth, alerts: alerts, nav: nav, logger: logger.With("screen", "login")}
}

func (l *Login) SetUsername(v string) {
	l.mu.Lock()
	l.username = v
	l.mu.Unlock()
}

func (l *Login) SetPassword(v string) {
	l.mu.Lock()
	l.password = v
	l.mu.Unlock()
}

func (l *Login) Username() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.username
}

// CanSubmit gates the submit button: both fields must be non-empty and no
// attempt may be in flight.
func (l *Login) CanSubmit() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.canSubmit()
}

func (l *Login) canSubmit() bool {
	return l.username != "" && l.password != "" && l.state != LoginSubmitting
}

func (l *Login) State() LoginState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Login) Loading() bool {
	return l.State() == LoginSubmitting
}

// Submit runs Idle → Submitting → Authenticated | Idle. On success the
// session is persisted, becomes current and the feed is opened. Every
// failure produces exactly one alert.
func (l *Login) Submit(ctx context.Context) error {
	l.mu.Lock()
	if l.state == LoginSubmitting {
		l.mu.Unlock()
		return ErrBusy
	}
	if !l.canSubmit() {
		l.mu.Unlock()
		l.alerts.Alert(TitleError, MsgFillCredentials)
		return ErrValidation
	}
	username, password := l.username, l.password
	l.state = LoginSubmitting
	l.mu.Unlock()

	_, err := l.auth.Login(ctx, username, password)

	l.mu.Lock()
	if err != nil {
		l.state = LoginIdle
	} else {
		l.state = LoginAuthenticated
		l.password = ""
	}
	l.mu.Unlock()

	if err != nil {
		l.logger.Warn(ctx, "login failed", "user", username, "error", err)
		l.alerts.Alert(TitleError, describe(err, MsgBadCredentials, MsgInternal))
		return err
	}

	l.nav.Navigate(RouteFeed)
	return nil
}

// SignUp opens the registration screen.
func (l *Login) SignUp() {
	l.nav.Navigate(RouteSignUp)
}
