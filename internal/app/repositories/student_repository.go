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

var studentColumns = []string{
	"id", "name", "email", "phone", "password",
	"highschool_marks_json", "plus2_marks_json",
	"branch_choice1", "branch_choice2",
	"allocated_branch", "allocated_by_admin", "accepted_allocation",
	"payment_receipt", "payment_verified", "offer_generated",
	"created_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student and returns its generated id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("name", "email", "phone", "password").
		Values(student.Name, student.Email, student.Phone, student.Password).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			logger.Warn().Str("email", student.Email).Msg("Attempted to create student with duplicate email")
			return 0, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Int64("studentID", id).Str("email", student.Email).Msg("Student created")
	return id, nil
}

// GetByEmail retrieves a student by email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by email query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetByID retrieves a student by id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by id query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetAll retrieves every student in stable id order. Ranking relies on
// this order being deterministic for tie-breaking.
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// UpdateDetails overwrites profile, marks and branch choices. Last write
// wins, no merging.
func (r *StudentRepository) UpdateDetails(ctx context.Context, id int64, details models.StudentDetails) error {
	sql, args, err := r.sb.Update("students").
		Set("name", details.Name).
		Set("phone", details.Phone).
		Set("highschool_marks_json", details.HighSchoolMarks.Encode()).
		Set("plus2_marks_json", details.PlusTwoMarks.Encode()).
		Set("branch_choice1", details.BranchChoice1).
		Set("branch_choice2", details.BranchChoice2).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update details query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error updating student details")
		return fmt.Errorf("error updating student details: %w", err)
	}
	return nil
}

// SetReceipt records an uploaded receipt filename and resets the
// verification flag; a re-upload always requires re-verification.
func (r *StudentRepository) SetReceipt(ctx context.Context, id int64, filename string) error {
	sql, args, err := r.sb.Update("students").
		Set("payment_receipt", filename).
		Set("payment_verified", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set receipt query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error recording payment receipt")
		return fmt.Errorf("error recording payment receipt: %w", err)
	}
	return nil
}

// SetAccepted marks the allocation as accepted. Idempotent.
func (r *StudentRepository) SetAccepted(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("students").
		Set("accepted_allocation", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build accept allocation query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error accepting allocation")
		return fmt.Errorf("error accepting allocation: %w", err)
	}
	return nil
}

// SetAllocation overwrites the allocated branch and the allocating admin.
func (r *StudentRepository) SetAllocation(ctx context.Context, id int64, branch string, adminID int64) error {
	sql, args, err := r.sb.Update("students").
		Set("allocated_branch", branch).
		Set("allocated_by_admin", adminID).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build allocate query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("studentID", id).Str("branch", branch).Msg("Error allocating branch")
		return fmt.Errorf("error allocating branch: %w", err)
	}
	return nil
}

// SetPaymentVerified flips the payment and offer flags.
func (r *StudentRepository) SetPaymentVerified(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("students").
		Set("payment_verified", true).
		Set("offer_generated", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build verify payment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error verifying payment")
		return fmt.Errorf("error verifying payment: %w", err)
	}
	return nil
}

// scanStudent maps a row to the model, decoding the marks JSON columns.
func scanStudent(row pgx.Row) (*models.Student, error) {
	var (
		s       models.Student
		hsJSON  *string
		p2JSON  *string
		choice1 *string
		choice2 *string
	)

	err := row.Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Password,
		&hsJSON, &p2JSON,
		&choice1, &choice2,
		&s.AllocatedBranch, &s.AllocatedByAdminID, &s.AcceptedAllocation,
		&s.PaymentReceipt, &s.PaymentVerified, &s.OfferGenerated,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if hsJSON != nil {
		s.HighSchoolMarks = models.DecodeHighSchoolMarks(*hsJSON)
	}
	if p2JSON != nil {
		s.PlusTwoMarks = models.DecodePlusTwoMarks(*p2JSON)
	}
	if choice1 != nil {
		s.BranchChoice1 = *choice1
	}
	if choice2 != nil {
		s.BranchChoice2 = *choice2
	}
	return &s, nil
}
