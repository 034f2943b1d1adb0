// Package admin holds the dashboard session gate. This is a placeholder
// credential check, not an authentication boundary: fixed literals, no
// lockout, no rate limit. Replace it before exposing the admin surface
// beyond a trusted network.
package admin

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid access credentials")

const sessionTTL = 12 * time.Hour

type Gate struct {
	user string
	pass string

	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry
	now      func() time.Time
}

func NewGate(user, pass string) *Gate {
	return &Gate{
		user:     user,
		pass:     pass,
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Login checks the credentials and hands out an opaque bearer token.
func (g *Gate) Login(user, pass string) (string, error) {
	if user != g.user || pass != g.pass {
		return "", ErrInvalidCredentials
	}
	token := uuid.NewString()
	g.mu.Lock()
	g.sessions[token] = g.now().Add(sessionTTL)
	g.mu.Unlock()
	return token, nil
}

func (g *Gate) Check(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	exp, ok := g.sessions[token]
	if !ok {
		return false
	}
	if g.now().After(exp) {
		delete(g.sessions, token)
		return false
	}
	return true
}

func (g *Gate) Logout(token string) {
	g.mu.Lock()
	delete(g.sessions, token)
	g.mu.Unlock()
}
