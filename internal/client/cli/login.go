package cli

import (
	"context"

	"github.com/papacapim/papacapim/internal/client/screens"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for credentials and submits them through the login screen.
// Failures have already been shown as alerts when the error is returned.
func (a *App) Login(ctx context.Context) error {
	a.resetNav()
	scr := screens.NewLogin(a.authService, a, a, a.logger)

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	scr.SetUsername(username)
	scr.SetPassword(password)
	if err := scr.Submit(ctx); err != nil {
		return err
	}

	if a.route == screens.RouteFeed {
		printlnFn("Login successful, welcome " + scr.Username())
	}
	return nil
}

// SignUp only routes to registration, which the terminal client does not
// provide.
func (a *App) SignUp(context.Context) error {
	a.resetNav()
	scr := screens.NewLogin(a.authService, a, a, a.logger)
	scr.SignUp()
	if a.route == screens.RouteSignUp {
		printlnFn("Sign up is not available in the terminal client")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not signed in")
		return nil
	}
	if err := a.authService.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		a.Alert(screens.TitleError, screens.MsgInternal)
		return err
	}
	printlnFn("Logged out")
	return nil
}
