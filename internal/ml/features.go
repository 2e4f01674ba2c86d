package ml

// Features is the record the classifier was trained on. The identity columns
// carry no signal for scoring, so they are pinned to fixed placeholders; only
// the four tracked signals vary per call.
type Features struct {
	Name       string  `json:"Name"`
	RollNo     int     `json:"Roll No"`
	Gender     string  `json:"Gender"`
	Category   string  `json:"Category"`
	FeesStatus string  `json:"Fees_Status"`
	Attendance float64 `json:"Attendance"`
	Marks      float64 `json:"Marks"`
	Backlog    int     `json:"Backlog"`
}

// Placeholder values for the identity columns of the training schema
const (
	placeholderName     = "Student"
	placeholderRollNo   = 1
	placeholderGender   = "Male"
	placeholderCategory = "General"
)

// BuildFeatures maps validated domain signals onto the training schema.
// CGPA (out of 10) is rescaled to the Marks column (out of 100); fee status
// is passed through as its categorical label, not the integer-coded form.
func BuildFeatures(cgpa, attendancePct float64, feeStatus string, backlogs int) Features {
	return Features{
		Name:       placeholderName,
		RollNo:     placeholderRollNo,
		Gender:     placeholderGender,
		Category:   placeholderCategory,
		FeesStatus: feeStatus,
		Attendance: attendancePct,
		Marks:      cgpa * 10,
		Backlog:    backlogs,
	}
}

// Label values returned by the classifier
const (
	// LabelRetain means the student is predicted to stay
	LabelRetain = 0
	// LabelAtRisk means the student is predicted to drop out
	LabelAtRisk = 1
)

// Prediction is a classifier verdict: the binary label and, when the model
// exposes one, a probability distribution over both classes.
type Prediction struct {
	Label         int
	Probabilities []float64
}

// PositiveProbability returns the probability of the at-risk class, if available
func (p Prediction) PositiveProbability() (float64, bool) {
	if len(p.Probabilities) < 2 {
		return 0, false
	}
	return p.Probabilities[LabelAtRisk], true
}

// MaxProbability returns the highest class probability, if available
func (p Prediction) MaxProbability() (float64, bool) {
	if len(p.Probabilities) == 0 {
		return 0, false
	}
	max := p.Probabilities[0]
	for _, v := range p.Probabilities[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}
