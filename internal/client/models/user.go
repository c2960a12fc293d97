package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// User is the profile snapshot returned by the API. The password is
// write-only and therefore never part of this type.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"user_login"`
	Name  string `json:"name,omitempty"`
}

// Initial returns the upper-cased first letter of the login, or "" for an
// empty login.
func (u User) Initial() string {
	r, size := utf8.DecodeRuneInString(strings.TrimSpace(u.Login))
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// UserUpdate is the editable part of a profile. Password and its
// confirmation are always sent together.
type UserUpdate struct {
	Login                string `json:"login"`
	Name                 string `json:"name"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// UpdateUserRequest is the PATCH /users/:id payload.
type UpdateUserRequest struct {
	User UserUpdate `json:"user"`
}

// NewUpdateUserRequest fills password_confirmation from password.
func NewUpdateUserRequest(login, name, password string) UpdateUserRequest {
	return UpdateUserRequest{User: UserUpdate{
		Login:                login,
		Name:                 name,
		Password:             password,
		PasswordConfirmation: password,
	}}
}
