package response

import "github.com/sposioggi/espositori-api/internal/authclient"

type LoginResponse struct {
	Token string          `json:"token"`
	User  authclient.User `json:"user"`
}

type SessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	User          authclient.User `json:"user,omitempty"`
}
