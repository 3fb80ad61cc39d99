package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStorePutGetDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	identity := Identity{Role: RoleStudent, ID: 7, Name: "Asha", Email: "a@x.com"}
	store.Put("tok", identity)

	got, ok := store.Get("tok")
	assert.True(t, ok)
	assert.Equal(t, identity, got)

	store.Delete("tok")
	_, ok = store.Get("tok")
	assert.False(t, ok)

	// Deleting again is a no-op
	store.Delete("tok")
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	store.Put("tok", Identity{Role: RoleAdmin, ID: 1})

	time.Sleep(5 * time.Millisecond)

	_, ok := store.Get("tok")
	assert.False(t, ok, "expired session must not resolve")
}

func TestMemoryStoreIndependentRoles(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	store.Put("student-tok", Identity{Role: RoleStudent, ID: 1})
	store.Put("admin-tok", Identity{Role: RoleAdmin, ID: 2})

	student, ok := store.Get("student-tok")
	assert.True(t, ok)
	assert.Equal(t, RoleStudent, student.Role)

	admin, ok := store.Get("admin-tok")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, admin.Role)
}
