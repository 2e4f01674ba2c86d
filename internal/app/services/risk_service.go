package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pravartak/mentorhub/internal/app/models"
	"github.com/pravartak/mentorhub/internal/app/models/dto"
	"github.com/pravartak/mentorhub/internal/ml"
	"github.com/pravartak/mentorhub/internal/pkg/apperrors"
)

// Risk levels derived from the at-risk probability
const (
	RiskLevelLow    = "Low"
	RiskLevelMedium = "Medium"
	RiskLevelHigh   = "High"
)

// Probability thresholds for the risk levels. Fixed constants, not
// configurable per call.
const (
	riskHighThreshold   = 0.7
	riskMediumThreshold = 0.4
)

// Fallback probabilities used when the classifier yields a label but no
// usable distribution. These are degraded-mode defaults, not real scores.
const (
	fallbackAtRiskProbability = 0.5
	fallbackRetainProbability = 0.2
)

type riskService struct {
	// classifier is nil when the scorer failed its startup probe; every
	// prediction then fails with ErrModelUnavailable until restart.
	classifier ml.Classifier
	scorerURL  string
	modelName  string
	logger     zerolog.Logger
}

// NewRiskService creates a new RiskService. A nil classifier is a permanent
// model-unavailable condition for this process.
func NewRiskService(classifier ml.Classifier, scorerURL, modelName string, logger zerolog.Logger) RiskService {
	return &riskService{
		classifier: classifier,
		scorerURL:  scorerURL,
		modelName:  modelName,
		logger:     logger,
	}
}

// validatedSignals is the strict internal record built from a PredictRequest
type validatedSignals struct {
	cgpa       float64
	attendance float64
	feeStatus  models.FeeStatus
	backlogs   int
}

func (s *riskService) validate(req *dto.PredictRequest) (*validatedSignals, error) {
	cgpaValue := req.CGPAValue()
	attendanceValue := req.AttendanceValue()

	missing := make([]string, 0, 4)
	if isMissing(cgpaValue) {
		missing = append(missing, "current_cgpa")
	}
	if isMissing(attendanceValue) {
		missing = append(missing, "attendance_percentage")
	}
	if req.FeeStatus == "" {
		missing = append(missing, "fee_status")
	}
	if isMissing(req.Backlogs) {
		missing = append(missing, "backlogs")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			"Missing fields: "+strings.Join(missing, ", ")).
			WithDetails(map[string]interface{}{"fields": missing})
	}

	feeStatus := models.FeeStatus(req.FeeStatus)
	if !feeStatus.IsValid() {
		return nil, apperrors.NewValidationError("Invalid fee_status")
	}

	cgpa, errCGPA := coerceFloat(cgpaValue)
	attendance, errAtt := coerceFloat(attendanceValue)
	backlogs, errBack := coerceInt(req.Backlogs)
	if errCGPA != nil || errAtt != nil || errBack != nil {
		return nil, apperrors.NewValidationError("Invalid numeric fields")
	}

	return &validatedSignals{
		cgpa:       cgpa,
		attendance: attendance,
		feeStatus:  feeStatus,
		backlogs:   backlogs,
	}, nil
}

// PredictDropout returns the classifier's raw verdict: the binary label and
// the max-class probability without threshold mapping. Existing callers
// depend on the unmapped numeric form.
func (s *riskService) PredictDropout(ctx context.Context, req *dto.PredictRequest) (*dto.DropoutPredictionResponse, error) {
	if s.classifier == nil {
		return nil, apperrors.ErrModelUnavailable
	}

	signals, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	features := ml.BuildFeatures(signals.cgpa, signals.attendance, string(signals.feeStatus), signals.backlogs)
	prediction, err := s.classifier.Predict(ctx, features)
	if err != nil {
		s.logger.Error().Err(err).Msg("Dropout prediction failed")
		return nil, apperrors.ErrPredictionFailed
	}

	resp := &dto.DropoutPredictionResponse{Prediction: prediction.Label}
	if prob, ok := prediction.MaxProbability(); ok {
		resp.Probability = &prob
	}
	return resp, nil
}

// ScoreRisk maps the classifier's at-risk probability onto a discrete risk
// level. When the model yields no usable distribution the fixed degraded-mode
// defaults stand in for it.
func (s *riskService) ScoreRisk(ctx context.Context, req *dto.PredictRequest) (*dto.RiskResponse, error) {
	if s.classifier == nil {
		return nil, apperrors.ErrModelUnavailable
	}

	signals, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	features := ml.BuildFeatures(signals.cgpa, signals.attendance, string(signals.feeStatus), signals.backlogs)
	prediction, err := s.classifier.Predict(ctx, features)
	if err != nil {
		s.logger.Error().Err(err).Msg("Risk prediction failed")
		return nil, apperrors.ErrPredictionFailed
	}

	prob, ok := prediction.PositiveProbability()
	if !ok {
		if prediction.Label == ml.LabelAtRisk {
			prob = fallbackAtRiskProbability
		} else {
			prob = fallbackRetainProbability
		}
		s.logger.Warn().
			Int("label", prediction.Label).
			Float64("fallbackProbability", prob).
			Msg("Classifier returned no probabilities, using degraded-mode default")
	}

	return &dto.RiskResponse{RiskLevel: RiskLevelFromProbability(prob)}, nil
}

// RiskLevelFromProbability applies the fixed thresholds to an at-risk
// probability: >= 0.7 High, >= 0.4 Medium, otherwise Low.
func RiskLevelFromProbability(prob float64) string {
	switch {
	case prob >= riskHighThreshold:
		return RiskLevelHigh
	case prob >= riskMediumThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// ModelInfo reports classifier availability for the diagnostics endpoint
func (s *riskService) ModelInfo(ctx context.Context) *dto.ModelInfoResponse {
	return &dto.ModelInfoResponse{
		ModelLoaded: s.classifier != nil,
		ScorerURL:   s.scorerURL,
		ModelName:   s.modelName,
	}
}
