package models

// Credentials is the POST /sessions payload.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Session pairs the opaque token with the user it was issued for.
type Session struct {
	Token string
	User  User
}

// SessionResponse mirrors the flat POST /sessions response:
// {"token": "...", "id": 1, "user_login": "ana", ...}.
type SessionResponse struct {
	Token string `json:"token"`
	User
}

func (r SessionResponse) Session() Session {
	return Session{Token: r.Token, User: r.User}
}
