// Package middleware contains the Gin middleware for session guards.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rjoshi/counselport/internal/session"
)

const identityKey = "identity"

// SessionMiddleware guards routes that require an authenticated session.
// A missing or expired session redirects to the matching login page with
// no flash message.
type SessionMiddleware struct {
	sessions *session.Manager
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(sessions *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireStudent aborts to the student login page unless a valid student
// session is attached to the request.
func (m *SessionMiddleware) RequireStudent() gin.HandlerFunc {
	return m.require(session.RoleStudent, "/student/login")
}

// RequireAdmin aborts to the admin login page unless a valid admin
// session is attached to the request.
func (m *SessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.require(session.RoleAdmin, "/admin/login")
}

func (m *SessionMiddleware) require(role session.Role, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := m.sessions.Current(c, role)
		if !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity attached by a Require* guard.
func CurrentIdentity(c *gin.Context) (session.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return session.Identity{}, false
	}
	identity, ok := value.(session.Identity)
	return identity, ok
}
