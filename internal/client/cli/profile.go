package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/papacapim/papacapim/internal/client/screens"
)

// Profile runs the edit profile screen until the user saves, cancels,
// deletes the account or logs out.
//
//	login <value>   set the login
//	name <value>    set the name
//	password        set the password (prompted without echo)
//	save            send the update; the session ends on success
//	delete          delete the account
//	logout          sign out
//	cancel          go back without changes
func (a *App) Profile(ctx context.Context) error {
	a.resetNav()
	scr := screens.NewEditProfile(a.authService, a, a, a.logger)
	scr.Mount()

	fmt.Fprintf(a.out, "[%s] %s\n", scr.Avatar(), scr.Title())
	a.printProfile(scr)

	for {
		line, err := getSimpleText(a.reader, "profile: login <v> | name <v> | password | save | delete | logout | cancel", a.out)
		if err != nil {
			return err
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "login":
			scr.SetUsername(arg)
		case "name":
			scr.SetName(arg)
		case "password":
			pw, err := getPassword(a.reader, a.out)
			if err != nil {
				return err
			}
			scr.SetPassword(pw)
		case "show":
			a.printProfile(scr)
		case "save":
			_ = scr.Update(ctx)
		case "delete":
			_ = scr.Delete(ctx)
		case "logout":
			_ = scr.Logout(ctx)
		case "cancel", "back":
			scr.Cancel()
		case "":
		default:
			fmt.Fprintln(a.out, "Unknown profile command:", cmd)
		}

		if a.route == screens.RouteLogin || a.wentBack {
			return nil
		}
	}
}

func (a *App) printProfile(scr *screens.EditProfile) {
	username, name := scr.Fields()
	fmt.Fprintf(a.out, "login: %s\nname:  %s\n", username, name)
}
