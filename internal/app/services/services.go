// Package services holds the business logic between controllers and the
// data layer.
package services

import (
	"context"
	"mime/multipart"

	"github.com/rjoshi/counselport/internal/app/models"
)

// StudentStore is the repository surface the services need for students.
// Satisfied by repositories.StudentRepository; tests substitute fakes.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]models.Student, error)
	UpdateDetails(ctx context.Context, id int64, details models.StudentDetails) error
	SetReceipt(ctx context.Context, id int64, filename string) error
	SetAccepted(ctx context.Context, id int64) error
	SetAllocation(ctx context.Context, id int64, branch string, adminID int64) error
	SetPaymentVerified(ctx context.Context, id int64) error
}

// AdminStore is the repository surface the services need for admins.
type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// ReceiptStore persists uploaded payment receipts.
type ReceiptStore interface {
	SaveFile(fileHeader *multipart.FileHeader) (string, error)
}

// OfferWriter renders and stores offer letters.
type OfferWriter interface {
	Generate(student *models.Student) (string, error)
}
