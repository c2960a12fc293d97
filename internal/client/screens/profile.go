package screens

import (
	"context"
	"sync"

	"github.com/papacapim/papacapim/internal/client/services"
	"github.com/papacapim/papacapim/internal/logging"
)

const defaultProfileTitle = "My account"

// EditProfile edits the signed-in user's login, name and password.
//
// A successful update always ends the session: the password is re-sent on
// every update, so the user is asked to sign in again.
type EditProfile struct {
	auth   services.AuthService
	alerts Alerter
	nav    Navigator
	logger logging.Logger

	mu       sync.Mutex
	username string
	name     string
	password string
	loading  bool
}

func NewEditProfile(auth services.AuthService, alerts Alerter, nav Navigator, logger logging.Logger) *EditProfile {
	return &EditProfile{auth: auth, alerts: alerts, nav: nav, logger: logger.With("screen", "edit_profile")}
}

// Mount fills the form from the current user.
func (p *EditProfile) Mount() {
	u, ok := p.auth.CurrentUser()
	if !ok {
		return
	}
	p.mu.Lock()
	p.username = u.Login
	p.name = u.Name
	p.mu.Unlock()
}

func (p *EditProfile) SetUsername(v string) { p.set(&p.username, v) }
func (p *EditProfile) SetName(v string)     { p.set(&p.name, v) }
func (p *EditProfile) SetPassword(v string) { p.set(&p.password, v) }

func (p *EditProfile) set(field *string, v string) {
	p.mu.Lock()
	*field = v
	p.mu.Unlock()
}

// Fields returns the username and name currently in the form.
func (p *EditProfile) Fields() (username, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.username, p.name
}

func (p *EditProfile) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Avatar is the upper-cased initial of the current login.
func (p *EditProfile) Avatar() string {
	u, _ := p.auth.CurrentUser()
	return u.Initial()
}

func (p *EditProfile) Title() string {
	if u, ok := p.auth.CurrentUser(); ok && u.Login != "" {
		return u.Login
	}
	return defaultProfileTitle
}

// Update requires username, name and password, even when only the name
// changes.
func (p *EditProfile) Update(ctx context.Context) error {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return ErrBusy
	}
	if p.username == "" || p.name == "" || p.password == "" {
		p.mu.Unlock()
		p.alerts.Alert(TitleError, MsgFillAllFields)
		return ErrValidation
	}
	username, name, password := p.username, p.name, p.password
	p.loading = true
	p.mu.Unlock()

	err := p.auth.UpdateProfile(ctx, username, name, password)

	p.mu.Lock()
	p.loading = false
	if err == nil {
		p.password = ""
	}
	p.mu.Unlock()

	if err != nil {
		p.logger.Error(ctx, "profile update failed", "error", err)
		p.alerts.Alert(TitleError, describe(err, MsgSessionExpired, MsgUpdateFailed))
		return err
	}

	p.signOut(ctx)
	p.alerts.Alert(TitleUserUpdated, MsgCreateSession)
	return nil
}

// Delete removes the account without asking for confirmation and signs out.
func (p *EditProfile) Delete(ctx context.Context) error {
	if err := p.auth.DeleteAccount(ctx); err != nil {
		p.logger.Error(ctx, "account deletion failed", "error", err)
		p.alerts.Alert(TitleError, describe(err, MsgSessionExpired, MsgDeleteFailed))
		return err
	}

	p.signOut(ctx)
	p.alerts.Alert(TitleAccountDeleted, MsgAccountDeleted)
	return nil
}

// Cancel leaves the screen without touching the network.
func (p *EditProfile) Cancel() {
	p.nav.GoBack()
}

// Logout ends the session locally.
func (p *EditProfile) Logout(ctx context.Context) error {
	return p.signOut(ctx)
}

// signOut clears the auth context and the stored session. The in-memory
// session is dropped even if the store cannot be cleared.
func (p *EditProfile) signOut(ctx context.Context) error {
	err := p.auth.Logout(ctx)
	if err != nil {
		p.logger.Error(ctx, "logout failed", "error", err)
	}
	p.nav.Navigate(RouteLogin)
	return err
}
