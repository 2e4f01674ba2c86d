package dto

// RegisterMentorRequest represents a mentor registration request.
// Fields are deliberately unbound: presence is checked in the service so
// every missing field can be reported together, not just the first.
type RegisterMentorRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Expertise string `json:"expertise"`
}

// MentorResponse represents a created mentor, without the credential hash
type MentorResponse struct {
	ID        int64  `json:"id" example:"1"`
	FullName  string `json:"full_name" example:"Asha Verma"`
	Email     string `json:"email" example:"asha@college.edu"`
	Expertise string `json:"expertise" example:"Data Science"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile represents the authenticated account in a login response.
// Expertise is only set for mentors.
type UserProfile struct {
	ID        int64  `json:"id" example:"1"`
	FullName  string `json:"full_name" example:"Asha Verma"`
	Email     string `json:"email" example:"asha@college.edu"`
	Role      string `json:"role" example:"mentor" enums:"mentor,student"`
	Expertise string `json:"expertise,omitempty" example:"Data Science"`
}

// LoginResponse represents a successful authentication
type LoginResponse struct {
	User        UserProfile `json:"user"`
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType" example:"Bearer"`
	ExpiresIn   int         `json:"expiresIn" example:"3600"`
}
