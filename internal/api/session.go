package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated identity returned by login and verify.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Nom   string `json:"nom,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Claims are the fields of interest decoded from the bearer token. The
// token is decoded without signature verification: the server is the
// authority, the client only reads its own identity out of it.
type Claims struct {
	UserID    int64
	Email     string
	Role      string
	ExpiresAt time.Time
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Session holds the bearer token for one authenticated user. Login
// populates it, Logout and any 401 clear it. It replaces ambient token
// storage: the client owns exactly one session and every request reads
// the token through it.
//
// Thread Safety: safe for concurrent use.
type Session struct {
	client *Client

	mu    sync.RWMutex
	token string
	user  User
}

func newSession(c *Client) *Session {
	return &Session{client: c}
}

// Login authenticates and stores the bearer token. Tenant users log in
// with the same endpoint using their registered email.
func (s *Session) Login(ctx context.Context, email, password string) (User, error) {
	resp, err := postJSON[loginResponse](ctx, s.client, "/auth/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return User{}, err
	}
	s.mu.Lock()
	s.token = resp.Token
	s.user = resp.User
	s.mu.Unlock()
	return resp.User, nil
}

// Logout discards the token. Purely local, the server keeps no session
// state.
func (s *Session) Logout() {
	s.clear()
}

// Verify asks the server whether the current token is still accepted and
// returns the authenticated user. A 401 clears the session.
func (s *Session) Verify(ctx context.Context) (User, error) {
	if !s.Active() {
		return User{}, ErrNotAuthenticated
	}
	var user User
	if err := s.client.do(ctx, http.MethodGet, "/auth/verify", nil, "", &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Active reports whether a token is present.
func (s *Session) Active() bool {
	return s.Token() != ""
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the identity stored at login.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetToken installs an externally obtained token, e.g. one persisted
// from a previous run.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *Session) clear() {
	s.mu.Lock()
	s.token = ""
	s.user = User{}
	s.mu.Unlock()
}

// Claims decodes the stored token's payload without verifying the
// signature.
func (s *Session) Claims() (Claims, error) {
	token := s.Token()
	if token == "" {
		return Claims{}, ErrNotAuthenticated
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, fmt.Errorf("api: decoding token: %w", err)
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("api: unexpected token claims")
	}

	var c Claims
	if v, ok := mc["id"].(float64); ok {
		c.UserID = int64(v)
	}
	c.Email, _ = mc["email"].(string)
	c.Role, _ = mc["role"].(string)
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}
