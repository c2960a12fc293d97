package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	SignUp(ctx context.Context) error
	Profile(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Papacapim CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
//	Not logged in:
//	  - help             show available commands
//	  - login            sign in
//	  - signup           create an account
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - help             show available commands
//	  - search [text]    search posts, optionally starting with text
//	  - profile          edit or delete the account
//	  - logout           sign out
//	  - exit | quit      leave the program
//
// Errors returned by command handlers are ignored here; the screens have
// already turned them into alerts.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("papacapim %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: search [text], profile, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already signed in, use logout first")
				continue
			}
			_ = a.Login(ctx)

		case "signup":
			_ = a.SignUp(ctx)

		case "search", "s":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			_ = a.Search(ctx, strings.Join(parts[1:], " "))

		case "profile":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			_ = a.Profile(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
