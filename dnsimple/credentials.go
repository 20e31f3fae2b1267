package dnsimple

import (
	"net/http"
)

// Credentials authenticates outgoing requests.
// Implementations are immutable values.
type Credentials interface {
	// Authenticate sets the authorization on req
	Authenticate(req *http.Request)
}

// BasicAuth authenticates with HTTP Basic username and password
type BasicAuth struct {
	Username string
	Password string
}

// NewBasicAuth returns Basic credentials
func NewBasicAuth(username, password string) BasicAuth {
	return BasicAuth{Username: username, Password: password}
}

// Authenticate implements Credentials
func (a BasicAuth) Authenticate(req *http.Request) {
	req.SetBasicAuth(a.Username, a.Password)
}

// TokenAuth authenticates with an OAuth or account access token sent as a bearer token
type TokenAuth struct {
	Token string
}

// NewTokenAuth returns bearer-token credentials
func NewTokenAuth(token string) TokenAuth {
	return TokenAuth{Token: token}
}

// Authenticate implements Credentials
func (a TokenAuth) Authenticate(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.Token)
}
