// Package cli provides the interactive Papacapim command-line client.
//
// It wires configuration, the local session database, the API client and
// the screen controllers behind a small REPL. A session saved by a previous
// run is restored on startup, so a signed-in user goes straight to the
// prompt.
//
// Commands:
//   - login / signup / logout
//   - profile: edit login and name, delete the account
//   - search: search posts line by line and open their comments
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
