package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rjoshi/counselport/internal/app/models"
	"github.com/rjoshi/counselport/internal/pkg/apperrors"
	"github.com/rjoshi/counselport/internal/pkg/auth"
	"github.com/rjoshi/counselport/internal/pkg/validation"
)

// AdminService handles admin accounts and the allocation workflow.
type AdminService struct {
	admins   AdminStore
	students StudentStore
	offers   OfferWriter
	logger   zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(admins AdminStore, students StudentStore, offers OfferWriter, logger zerolog.Logger) *AdminService {
	return &AdminService{
		admins:   admins,
		students: students,
		offers:   offers,
		logger:   logger,
	}
}

// SignUp creates an admin account.
func (s *AdminService) SignUp(ctx context.Context, name, email, password string) error {
	if !validation.ValidName(name) {
		return apperrors.ErrInvalidName
	}
	if !validation.ValidEmail(email) {
		return apperrors.ErrInvalidEmail
	}
	if password == "" {
		return apperrors.ErrEmptyField
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Password hashing failed")
		return apperrors.ErrAccountCreation
	}

	admin := &models.Admin{Name: name, Email: email, Password: hashed}
	if _, err := s.admins.Create(ctx, admin); err != nil {
		return err
	}
	return nil
}

// LogIn authenticates an admin. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AdminService) LogIn(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(admin.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return admin, nil
}

// ListRanked returns all students ordered by descending plus-two total.
func (s *AdminService) ListRanked(ctx context.Context) ([]RankedStudent, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(students), nil
}

// Allocate overwrites the student's allocated branch and records which
// admin did it. The branch is not checked against the student's stated
// choices; admins have override authority.
func (s *AdminService) Allocate(ctx context.Context, studentID int64, branch string, adminID int64) error {
	if branch == "" {
		return apperrors.ErrEmptyField
	}
	if err := s.students.SetAllocation(ctx, studentID, branch, adminID); err != nil {
		return err
	}
	s.logger.Info().Int64("studentID", studentID).Int64("adminID", adminID).Str("branch", branch).Msg("Branch allocated")
	return nil
}

// VerifyPayment flags the payment as verified and synchronously generates
// the offer letter. Re-running regenerates the same document. If the
// letter write fails after the flags are set the row and the filesystem
// disagree until the next run; there is no rollback.
func (s *AdminService) VerifyPayment(ctx context.Context, studentID int64) error {
	if err := s.students.SetPaymentVerified(ctx, studentID); err != nil {
		return err
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if _, err := s.offers.Generate(student); err != nil {
		s.logger.Error().Err(err).Int64("studentID", studentID).Msg("Offer generation failed after payment was flagged verified")
		return err
	}

	s.logger.Info().Int64("studentID", studentID).Msg("Payment verified and offer generated")
	return nil
}
