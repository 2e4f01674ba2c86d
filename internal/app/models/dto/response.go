package dto

// APIResponse represents a standard success envelope for API endpoints
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// NewAPIResponse creates a success envelope around a payload
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// SuccessResponse represents a bare success flag, used by operations that
// deliberately do not echo the affected record
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}
