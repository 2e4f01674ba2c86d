package dto

import "github.com/pravartak/mentorhub/internal/app/models"

// AddStudentRequest represents a request to add a student to a mentor's roster.
// Numeric fields are typed loosely because clients send them both as JSON
// numbers and as strings; the service coerces them into their semantic types
// before anything else touches them.
type AddStudentRequest struct {
	FullName             string      `json:"full_name"`
	Email                string      `json:"email"`
	AccountType          string      `json:"account_type"`
	ParentName           *string     `json:"parent_name"`
	ParentEmail          *string     `json:"parent_email"`
	CurrentCGPA          interface{} `json:"current_cgpa"`
	AttendancePercentage interface{} `json:"attendance_percentage"`
	FeeStatus            string      `json:"fee_status"`
	Backlogs             interface{} `json:"backlogs"`
	MentorID             interface{} `json:"mentor_id"`
}

// UpdateStudentRequest represents a partial update of a student's tracked
// signals. A nil field is absent, not zero; identity fields are immutable
// and have no place here.
type UpdateStudentRequest struct {
	CurrentCGPA          interface{} `json:"current_cgpa"`
	AttendancePercentage interface{} `json:"attendance_percentage"`
	FeeStatus            *string     `json:"fee_status"`
	Backlogs             interface{} `json:"backlogs"`
}

// IsEmpty reports whether no updatable field was supplied
func (r *UpdateStudentRequest) IsEmpty() bool {
	return r.CurrentCGPA == nil && r.AttendancePercentage == nil && r.FeeStatus == nil && r.Backlogs == nil
}

// StudentResponse represents a student record with numeric fields already
// coerced, so the response never echoes raw unparsed input
type StudentResponse struct {
	ID                   int64   `json:"id" example:"1"`
	FullName             string  `json:"full_name" example:"Ravi Kumar"`
	Email                string  `json:"email" example:"ravi@college.edu"`
	AccountType          string  `json:"account_type" example:"student" enums:"student,student_and_parent"`
	ParentName           *string `json:"parent_name"`
	ParentEmail          *string `json:"parent_email"`
	CurrentCGPA          float64 `json:"current_cgpa" example:"7.5"`
	AttendancePercentage float64 `json:"attendance_percentage" example:"85"`
	FeeStatus            string  `json:"fee_status" example:"paid" enums:"paid,payment_pending,payment_overdue"`
	Backlogs             int     `json:"backlogs" example:"1"`
	MentorID             int64   `json:"mentor_id" example:"1"`
}

// NewStudentResponse maps a student record to its response shape
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:                   s.ID,
		FullName:             s.FullName,
		Email:                s.Email,
		AccountType:          string(s.AccountType),
		ParentName:           s.ParentName,
		ParentEmail:          s.ParentEmail,
		CurrentCGPA:          s.CurrentCGPA,
		AttendancePercentage: s.AttendancePercentage,
		FeeStatus:            string(s.FeeStatus),
		Backlogs:             s.Backlogs,
		MentorID:             s.MentorID,
	}
}

// StudentListResponse represents a mentor's roster in storage order
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
}
