// Package seed bootstraps initial data after migrations.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/rjoshi/counselport/internal/app/models"
	"github.com/rjoshi/counselport/internal/app/repositories"
	"github.com/rjoshi/counselport/internal/config"
	"github.com/rjoshi/counselport/internal/pkg/auth"
)

// CreateDefaultAdmin creates the configured admin account when the admins
// table is empty. Skipped entirely when no seed credentials are
// configured.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		lgr.Debug().Msg("No seed admin configured, skipping")
		return nil
	}

	adminRepo := repositories.NewAdminRepository(dbPool)

	count, err := adminRepo.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	name := cfg.Seed.AdminName
	if name == "" {
		name = "Administrator"
	}

	id, err := adminRepo.Create(ctx, &models.Admin{
		Name:     name,
		Email:    cfg.Seed.AdminEmail,
		Password: hashed,
	})
	if err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	lgr.Info().Int64("adminID", id).Str("email", cfg.Seed.AdminEmail).Msg("Seed admin account created")
	return nil
}
