package models

// Mentor defines the mentor model based on the 'mentors' table
type Mentor struct {
	ID        int64  `json:"id" db:"id" example:"1"`                          // Unique identifier for the mentor
	FullName  string `json:"full_name" db:"full_name" example:"Asha Verma"`   // Mentor's full name
	Email     string `json:"email" db:"email" example:"asha@college.edu"`     // Mentor's email address (unique, lowercase)
	Password  string `json:"-" db:"password"`                                 // Mentor's hashed password (excluded from JSON)
	Expertise string `json:"expertise" db:"expertise" example:"Data Science"` // Mentor's area of expertise
}
