// Package screens implements the Papacapim screens as UI-agnostic
// controllers: Login, EditProfile, SearchPosts and Comments.
//
// Each controller owns its form state and its request flow. It reports to the
// user through an Alerter (one blocking dialog per failure) and moves between
// screens through a Navigator, so the same controller can back a terminal
// REPL or any other front end. Controllers are safe for concurrent use and
// never hold their lock across a network call.
package screens
