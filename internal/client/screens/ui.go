package screens

import (
	"errors"

	"github.com/papacapim/papacapim/internal/client/client"
	"github.com/papacapim/papacapim/internal/client/models"
)

var (
	// ErrValidation marks input rejected before any network call.
	ErrValidation = errors.New("validation error")
	// ErrBusy is returned when an action is already in flight.
	ErrBusy = errors.New("action already in progress")
	// ErrSuperseded is returned by a search whose result arrived after a
	// newer query was issued; the result is dropped.
	ErrSuperseded = errors.New("search superseded by a newer query")
)

// Alerter shows a blocking alert dialog.
type Alerter interface {
	Alert(title, message string)
}

type Route string

const (
	RouteLogin  Route = "login"
	RouteSignUp Route = "signup"
	RouteFeed   Route = "feed"
)

// Navigator moves between screens.
type Navigator interface {
	Navigate(route Route)
	OpenPost(post models.Post)
	GoBack()
}

const (
	TitleError   = "Error"
	TitleWarning = "Warning"

	TitleUserUpdated    = "User updated"
	TitleAccountDeleted = "Account deleted"

	MsgBadCredentials  = "Invalid username or password."
	MsgUnavailable     = "Could not reach the server. Check your connection and try again."
	MsgSessionExpired  = "Your session is no longer valid. Please sign in again."
	MsgInternal        = "An internal error occurred."
	MsgFillAllFields   = "Please fill in all fields."
	MsgFillCredentials = "Please enter your username and password."
	MsgUpdateFailed    = "Could not update your data."
	MsgDeleteFailed    = "Could not delete the account."
	MsgCreateSession   = "Create a new session."
	MsgAccountDeleted  = "Your account was deleted successfully."
	MsgSearchFailed    = "Could not search posts."
	MsgRepliesFailed   = "Could not load replies."
	MsgReplyFailed     = "Could not add the reply."
	MsgEmptyReply      = "The comment cannot be empty."
)

// describe turns err into the message shown to the user. Connectivity and
// authorization failures get their own text; everything else gets fallback.
func describe(err error, unauthorized, fallback string) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return unauthorized
	case errors.Is(err, client.ErrUnavailable):
		return MsgUnavailable
	default:
		return fallback
	}
}
