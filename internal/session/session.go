// Package session provides server-side session records keyed by opaque
// tokens. Student and admin sessions live under separate cookies and are
// fully independent; both may exist in the same browser.
package session

import (
	"sync"
	"time"
)

// Role discriminates which login surface a session belongs to.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Identity is the lightweight denormalized copy of who is logged in.
// Handlers re-read the full row per request; this is for display and
// authorization only.
type Identity struct {
	Role  Role
	ID    int64
	Name  string
	Email string
}

// Store is the pluggable backing for session records. The in-memory
// implementation suits single-process deployments; a multi-process
// deployment must supply a shared implementation instead.
type Store interface {
	Get(token string) (Identity, bool)
	Put(token string, identity Identity)
	Delete(token string)
}

type entry struct {
	identity  Identity
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded map with TTL expiry enforced on read.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
}

// NewMemoryStore creates a MemoryStore whose records expire ttl after
// creation.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Get returns the identity for a token, evicting it if expired.
func (s *MemoryStore) Get(token string) (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return Identity{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, token)
		return Identity{}, false
	}
	return e.identity, true
}

// Put stores an identity under the token.
func (s *MemoryStore) Put(token string, identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = entry{
		identity:  identity,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Delete removes the record. Deleting an unknown token is a no-op.
func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, token)
}
