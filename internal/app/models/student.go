package models

// AccountType distinguishes student-only accounts from accounts shared with a parent
type AccountType string

const (
	// AccountTypeStudent is a plain student account
	AccountTypeStudent AccountType = "student"
	// AccountTypeStudentAndParent is a student account with parent contact details
	AccountTypeStudentAndParent AccountType = "student_and_parent"
)

// IsValid reports whether the account type is a member of the closed enumeration
func (a AccountType) IsValid() bool {
	return a == AccountTypeStudent || a == AccountTypeStudentAndParent
}

// FeeStatus tracks the payment state of a student's fees
type FeeStatus string

const (
	// FeeStatusPaid means fees are fully paid
	FeeStatusPaid FeeStatus = "paid"
	// FeeStatusPending means a payment is due but not overdue
	FeeStatusPending FeeStatus = "payment_pending"
	// FeeStatusOverdue means a payment deadline has passed
	FeeStatusOverdue FeeStatus = "payment_overdue"
)

// IsValid reports whether the fee status is a member of the closed enumeration
func (f FeeStatus) IsValid() bool {
	return f == FeeStatusPaid || f == FeeStatusPending || f == FeeStatusOverdue
}

// Student defines the student model based on the 'students' table.
// A student always belongs to exactly one mentor; deleting the mentor
// cascades to its students.
type Student struct {
	ID                   int64       `json:"id" db:"id"`
	FullName             string      `json:"full_name" db:"full_name"`
	Email                string      `json:"email" db:"email"`
	Password             string      `json:"-" db:"password"` // Hashed default password, never mentor-supplied
	AccountType          AccountType `json:"account_type" db:"account_type"`
	ParentName           *string     `json:"parent_name" db:"parent_name"`
	ParentEmail          *string     `json:"parent_email" db:"parent_email"`
	CurrentCGPA          float64     `json:"current_cgpa" db:"current_cgpa"`
	AttendancePercentage float64     `json:"attendance_percentage" db:"attendance_percentage"`
	FeeStatus            FeeStatus   `json:"fee_status" db:"fee_status"`
	Backlogs             int         `json:"backlogs" db:"backlogs"`
	MentorID             int64       `json:"mentor_id" db:"mentor_id"`
}
