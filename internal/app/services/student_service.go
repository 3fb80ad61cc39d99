package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/rjoshi/counselport/internal/app/models"
	"github.com/rjoshi/counselport/internal/pkg/apperrors"
	"github.com/rjoshi/counselport/internal/pkg/auth"
	"github.com/rjoshi/counselport/internal/pkg/validation"
)

// StudentService handles student registration, login and dashboard
// mutations.
type StudentService struct {
	students StudentStore
	receipts ReceiptStore
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, receipts ReceiptStore, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students: students,
		receipts: receipts,
		logger:   logger,
	}
}

// SignUp creates a student account. The name is checked against the
// allow-list before any persistence happens.
func (s *StudentService) SignUp(ctx context.Context, name, email, password, phone string) error {
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
		// The plaintext is deliberately never logged
		s.logger.Error().Err(err).Str("email", email).Msg("Password hashing failed")
		return apperrors.ErrAccountCreation
	}

	student := &models.Student{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: hashed,
	}
	if _, err := s.students.Create(ctx, student); err != nil {
		return err
	}
	return nil
}

// LogIn authenticates a student by email and password. An unknown email
// and a wrong password both yield ErrInvalidCredentials so the response
// cannot be used to enumerate accounts.
func (s *StudentService) LogIn(ctx context.Context, email, password string) (*models.Student, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(student.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return student, nil
}

// Dashboard re-reads the student's row. Session copies of marks,
// allocation and payment state are never trusted; admins mutate those
// fields independently.
func (s *StudentService) Dashboard(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// SubmitDetails overwrites profile, marks and branch choices
// unconditionally.
func (s *StudentService) SubmitDetails(ctx context.Context, id int64, details models.StudentDetails) error {
	if !validation.ValidName(details.Name) {
		return apperrors.ErrInvalidName
	}
	return s.students.UpdateDetails(ctx, id, details)
}

// UploadReceipt stores the uploaded payment receipt and records it
// against the student, resetting the verification flag.
func (s *StudentService) UploadReceipt(ctx context.Context, id int64, fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return apperrors.ErrNoFile
	}

	storedName, err := s.receipts.SaveFile(fileHeader)
	if err != nil {
		return fmt.Errorf("failed to store receipt: %w", err)
	}
	return s.students.SetReceipt(ctx, id, storedName)
}

// AcceptAllocation marks the allocated branch as accepted. Calling it
// again has no additional effect.
func (s *StudentService) AcceptAllocation(ctx context.Context, id int64) error {
	return s.students.SetAccepted(ctx, id)
}
