// Package session keeps the signed-in user and token.
//
// Store persists the pair in the local database so it survives restarts.
// Manager is the in-process auth context shared by every screen: it is
// created once, restored from the Store on startup and handed to the
// components that need it.
package session
