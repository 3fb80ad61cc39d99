package session

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	studentCookie = "counselport_student"
	adminCookie   = "counselport_admin"
)

// Manager binds browser cookies to the session store. One cookie per role
// so a student and an admin login can coexist in the same browser.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager creates a Manager over the given store.
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

func cookieName(role Role) string {
	if role == RoleAdmin {
		return adminCookie
	}
	return studentCookie
}

// Establish creates a session record for the identity and sets the role
// cookie. Returns the issued token.
func (m *Manager) Establish(c *gin.Context, identity Identity) string {
	token := uuid.NewString()
	m.store.Put(token, identity)
	c.SetCookie(cookieName(identity.Role), token, int(m.ttl.Seconds()), "/", "", false, true)
	return token
}

// Current returns the identity bound to the request for the given role.
func (m *Manager) Current(c *gin.Context, role Role) (Identity, bool) {
	token, err := c.Cookie(cookieName(role))
	if err != nil || token == "" {
		return Identity{}, false
	}
	identity, ok := m.store.Get(token)
	if !ok || identity.Role != role {
		return Identity{}, false
	}
	return identity, true
}

// Destroy removes the session record and clears the cookie. Safe to call
// without an active session.
func (m *Manager) Destroy(c *gin.Context, role Role) {
	if token, err := c.Cookie(cookieName(role)); err == nil && token != "" {
		m.store.Delete(token)
	}
	c.SetCookie(cookieName(role), "", -1, "/", "", false, true)
}
