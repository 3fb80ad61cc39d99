package services

import (
	"context"
	"mime/multipart"

	"github.com/rjoshi/counselport/internal/app/models"
	"github.com/rjoshi/counselport/internal/pkg/apperrors"
)

// fakeStudentStore is an in-memory StudentStore for service tests.
type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) (int64, error) {
	for _, existing := range f.students {
		if existing.Email == student.Email {
			return 0, apperrors.ErrEmailExists
		}
	}
	student.ID = f.nextID
	f.nextID++
	copied := *student
	f.students[student.ID] = &copied
	return student.ID, nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]models.Student, error) {
	all := make([]models.Student, 0, len(f.students))
	for id := int64(1); id < f.nextID; id++ {
		if s, ok := f.students[id]; ok {
			all = append(all, *s)
		}
	}
	return all, nil
}

func (f *fakeStudentStore) UpdateDetails(_ context.Context, id int64, details models.StudentDetails) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.Name = details.Name
	s.Phone = details.Phone
	s.HighSchoolMarks = details.HighSchoolMarks
	s.PlusTwoMarks = details.PlusTwoMarks
	s.BranchChoice1 = details.BranchChoice1
	s.BranchChoice2 = details.BranchChoice2
	return nil
}

func (f *fakeStudentStore) SetReceipt(_ context.Context, id int64, filename string) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.PaymentReceipt = &filename
	s.PaymentVerified = false
	return nil
}

func (f *fakeStudentStore) SetAccepted(_ context.Context, id int64) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.AcceptedAllocation = true
	return nil
}

func (f *fakeStudentStore) SetAllocation(_ context.Context, id int64, branch string, adminID int64) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.AllocatedBranch = &branch
	s.AllocatedByAdminID = &adminID
	return nil
}

func (f *fakeStudentStore) SetPaymentVerified(_ context.Context, id int64) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.PaymentVerified = true
	s.OfferGenerated = true
	return nil
}

// fakeAdminStore is an in-memory AdminStore for service tests.
type fakeAdminStore struct {
	admins map[int64]*models.Admin
	nextID int64
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[int64]*models.Admin), nextID: 1}
}

func (f *fakeAdminStore) Create(_ context.Context, admin *models.Admin) (int64, error) {
	for _, existing := range f.admins {
		if existing.Email == admin.Email {
			return 0, apperrors.ErrEmailExists
		}
	}
	admin.ID = f.nextID
	f.nextID++
	copied := *admin
	f.admins[admin.ID] = &copied
	return admin.ID, nil
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

// fakeReceiptStore records saved receipts without touching the filesystem.
type fakeReceiptStore struct {
	saved []string
	err   error
}

func (f *fakeReceiptStore) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	name := "stored-" + fileHeader.Filename
	f.saved = append(f.saved, name)
	return name, nil
}

// fakeOfferWriter records which students had an offer generated.
type fakeOfferWriter struct {
	generated []int64
	branches  []string
	err       error
}

func (f *fakeOfferWriter) Generate(student *models.Student) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.generated = append(f.generated, student.ID)
	f.branches = append(f.branches, student.AllocatedBranchName())
	return "offer_path", nil
}
