package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rjoshi/counselport/internal/app/models"
	"github.com/rjoshi/counselport/internal/pkg/apperrors"
	"github.com/rjoshi/counselport/internal/pkg/dberrors"
	"github.com/rjoshi/counselport/internal/pkg/logger"
)

// AdminRepository handles admin database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new admin and returns its generated id.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	sql, args, err := r.sb.Insert("admins").
		Columns("name", "email", "password").
		Values(admin.Name, admin.Email, admin.Password).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create admin SQL")
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_email_key") {
			logger.Warn().Str("email", admin.Email).Msg("Attempted to create admin with duplicate email")
			return 0, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Str("email", admin.Email).Msg("Error executing create admin query")
		return 0, fmt.Errorf("error creating admin: %w", err)
	}

	logger.Info().Int64("adminID", id).Str("email", admin.Email).Msg("Admin created")
	return id, nil
}

// GetByEmail retrieves an admin by email.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "password", "created_at").
		From("admins").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin by email query: %w", err)
	}

	var admin models.Admin
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return &admin, nil
}

// CountAdmins returns the number of admin rows. Used by the seeder.
func (r *AdminRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting admins: %w", err)
	}
	return count, nil
}
