package qkart

import (
	"context"
	"fmt"
	"net/http"
)

// Session is the client-side login state: the bearer token plus the username
// and wallet balance reported at login. It is created by Login, passed
// explicitly to authenticated calls, and destroyed by Clear.
type Session struct {
	Token    string
	Username string
	Balance  int64
}

// Active reports whether the session holds a token.
func (s *Session) Active() bool {
	return s != nil && s.Token != ""
}

// Clear logs the session out by dropping its state. Idempotent; the token is
// stateless server-side so nothing else is required.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.Token = ""
	s.Username = ""
	s.Balance = 0
}

const (
	credentialMin = 6
	credentialMax = 32
)

// Register creates a new account. Credential lengths are checked before the
// request goes out, mirroring the server-side rule.
func (c *Client) Register(ctx context.Context, username, password string) error {
	if err := checkCredential("username", username); err != nil {
		return err
	}
	if err := checkCredential("password", password); err != nil {
		return err
	}
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/register", nil, body, nil)
}

// Login authenticates and returns a fresh Session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		Balance  int64  `json:"balance"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &Session{Token: out.Token, Username: out.Username, Balance: out.Balance}, nil
}

func checkCredential(field, value string) error {
	if len(value) < credentialMin || len(value) > credentialMax {
		return fmt.Errorf("qkart: %s must be between %d and %d characters in length", field, credentialMin, credentialMax)
	}
	return nil
}
