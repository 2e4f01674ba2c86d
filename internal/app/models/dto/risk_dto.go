package dto

// PredictRequest represents the signals fed to the dropout classifier.
// The legacy field names cgpa/attendance are accepted alongside the
// canonical ones for compatibility with older dashboard builds.
type PredictRequest struct {
	CurrentCGPA          interface{} `json:"current_cgpa"`
	CGPA                 interface{} `json:"cgpa"`
	AttendancePercentage interface{} `json:"attendance_percentage"`
	Attendance           interface{} `json:"attendance"`
	FeeStatus            string      `json:"fee_status"`
	Backlogs             interface{} `json:"backlogs"`
}

// CGPAValue returns the canonical field when present, the legacy alias otherwise
func (r *PredictRequest) CGPAValue() interface{} {
	if r.CurrentCGPA != nil {
		return r.CurrentCGPA
	}
	return r.CGPA
}

// AttendanceValue returns the canonical field when present, the legacy alias otherwise
func (r *PredictRequest) AttendanceValue() interface{} {
	if r.AttendancePercentage != nil {
		return r.AttendancePercentage
	}
	return r.Attendance
}

// DropoutPredictionResponse represents the raw classifier output: the binary
// label (0 retain, 1 at-risk) and the max-class probability when the model
// exposes one
type DropoutPredictionResponse struct {
	Prediction  int      `json:"prediction" example:"0"`
	Probability *float64 `json:"probability" example:"0.82"`
}

// RiskResponse represents the thresholded risk verdict
type RiskResponse struct {
	RiskLevel string `json:"risk_level" example:"Low" enums:"Low,Medium,High"`
}

// ModelInfoResponse reports classifier availability and metadata for debugging
type ModelInfoResponse struct {
	ModelLoaded bool   `json:"model_loaded" example:"true"`
	ScorerURL   string `json:"scorer_url,omitempty" example:"http://localhost:9000"`
	ModelName   string `json:"model_name,omitempty" example:"dropout-xgb"`
}
