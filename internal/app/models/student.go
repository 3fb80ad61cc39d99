package models

import "time"

// Student defines the student model based on the 'students' table.
// Marks are stored as JSON text columns and decoded at the repository
// boundary; nullable columns map to pointer fields.
type Student struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Phone    string `json:"phone" db:"phone"`
	Password string `json:"-" db:"password"` // bcrypt hash, never rendered

	HighSchoolMarks HighSchoolMarks `json:"highschoolMarks" db:"highschool_marks_json"`
	PlusTwoMarks    PlusTwoMarks    `json:"plus2Marks" db:"plus2_marks_json"`

	BranchChoice1 string `json:"branchChoice1" db:"branch_choice1"`
	BranchChoice2 string `json:"branchChoice2" db:"branch_choice2"`

	AllocatedBranch    *string `json:"allocatedBranch" db:"allocated_branch"`
	AllocatedByAdminID *int64  `json:"allocatedByAdmin" db:"allocated_by_admin"`
	AcceptedAllocation bool    `json:"acceptedAllocation" db:"accepted_allocation"`

	PaymentReceipt  *string `json:"paymentReceipt" db:"payment_receipt"`
	PaymentVerified bool    `json:"paymentVerified" db:"payment_verified"`
	OfferGenerated  bool    `json:"offerGenerated" db:"offer_generated"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// HasAllocation reports whether an admin has allocated a branch. Value
// receiver so templates can call it on ranked list entries.
func (s Student) HasAllocation() bool {
	return s.AllocatedBranch != nil && *s.AllocatedBranch != ""
}

// AllocatedBranchName returns the allocated branch, or "" when none.
func (s Student) AllocatedBranchName() string {
	if s.HasAllocation() {
		return *s.AllocatedBranch
	}
	return ""
}

// ReceiptFile returns the stored receipt filename, or "" when none.
func (s Student) ReceiptFile() string {
	if s.PaymentReceipt != nil {
		return *s.PaymentReceipt
	}
	return ""
}

// StudentDetails carries the profile fields a student may overwrite from
// the dashboard. Saving is last-write-wins, no merging.
type StudentDetails struct {
	Name            string
	Phone           string
	HighSchoolMarks HighSchoolMarks
	PlusTwoMarks    PlusTwoMarks
	BranchChoice1   string
	BranchChoice2   string
}
