// Package repositories contains the PostgreSQL data access layer.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances for dependency injection.
type Repositories struct {
	Students *StudentRepository
	Admins   *AdminRepository
}

// NewRepositories creates all repositories over a shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Students: NewStudentRepository(db),
		Admins:   NewAdminRepository(db),
	}
}
