// Package client talks to the Papacapim REST API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     sessions, profile update/delete, post search and replies.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) with a
//     generic Request method. Every call carries an X-Request-ID and, when
//     the TokenSource yields one, an "Authorization: Bearer" header.
//
// # Error Handling
//
// Failures are classified so callers can match them with errors.Is:
//   - ErrUnavailable: the server could not be reached or timed out.
//   - ErrUnauthorized: HTTP 401 or 403.
//   - ErrServer: any other non-2xx status; errors.As gives *StatusError.
//
// Nothing is retried.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context; cancelling it aborts the request.
package client
