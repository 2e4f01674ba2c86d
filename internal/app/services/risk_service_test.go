package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pravartak/mentorhub/internal/app/models/dto"
	"github.com/pravartak/mentorhub/internal/ml"
	"github.com/pravartak/mentorhub/internal/pkg/apperrors"
)

func validPredictRequest() *dto.PredictRequest {
	return &dto.PredictRequest{
		CurrentCGPA:          6.5,
		AttendancePercentage: 70.0,
		FeeStatus:            "payment_pending",
		Backlogs:             2.0,
	}
}

func newTestRiskService(classifier ml.Classifier) RiskService {
	return NewRiskService(classifier, "http://scorer:9000", "dropout-rf", zerolog.Nop())
}

func TestPredictDropout_Success(t *testing.T) {
	classifier := &fakeClassifier{prediction: ml.Prediction{Label: ml.LabelAtRisk, Probabilities: []float64{0.18, 0.82}}}
	svc := newTestRiskService(classifier)

	resp, err := svc.PredictDropout(context.Background(), validPredictRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Prediction)
	require.NotNil(t, resp.Probability)
	assert.Equal(t, 0.82, *resp.Probability)

	// Signals are mapped onto the training schema before scoring
	assert.Equal(t, 65.0, classifier.lastInput.Marks)
	assert.Equal(t, 70.0, classifier.lastInput.Attendance)
	assert.Equal(t, "payment_pending", classifier.lastInput.FeesStatus)
	assert.Equal(t, 2, classifier.lastInput.Backlog)
}

func TestPredictDropout_MaxProbabilityForRetainLabel(t *testing.T) {
	classifier := &fakeClassifier{prediction: ml.Prediction{Label: ml.LabelRetain, Probabilities: []float64{0.9, 0.1}}}
	svc := newTestRiskService(classifier)

	resp, err := svc.PredictDropout(context.Background(), validPredictRequest())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Prediction)
	require.NotNil(t, resp.Probability)
	assert.Equal(t, 0.9, *resp.Probability)
}

func TestPredictDropout_NoProbabilities(t *testing.T) {
	classifier := &fakeClassifier{prediction: ml.Prediction{Label: ml.LabelRetain}}
	svc := newTestRiskService(classifier)

	resp, err := svc.PredictDropout(context.Background(), validPredictRequest())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Prediction)
	assert.Nil(t, resp.Probability)
}

func TestPredictDropout_ModelUnavailable(t *testing.T) {
	svc := newTestRiskService(nil)

	_, err := svc.PredictDropout(context.Background(), validPredictRequest())
	assert.ErrorIs(t, err, apperrors.ErrModelUnavailable)
}

func TestPredictDropout_ClassifierError(t *testing.T) {
	classifier := &fakeClassifier{err: errors.New("scorer timeout")}
	svc := newTestRiskService(classifier)

	_, err := svc.PredictDropout(context.Background(), validPredictRequest())
	assert.ErrorIs(t, err, apperrors.ErrPredictionFailed)
}

func TestPredictDropout_MissingFieldsReportedTogether(t *testing.T) {
	classifier := &fakeClassifier{}
	svc := newTestRiskService(classifier)

	_, err := svc.PredictDropout(context.Background(), &dto.PredictRequest{FeeStatus: "paid"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Missing fields: current_cgpa, attendance_percentage, backlogs", err.Error())
	assert.Zero(t, classifier.calls)
}

func TestPredictDropout_LegacyFieldAliases(t *testing.T) {
	classifier := &fakeClassifier{prediction: ml.Prediction{Label: ml.LabelRetain}}
	svc := newTestRiskService(classifier)

	_, err := svc.PredictDropout(context.Background(), &dto.PredictRequest{
		CGPA:       "8.2",
		Attendance: 91.0,
		FeeStatus:  "paid",
		Backlogs:   0.0,
	})
	require.NoError(t, err)
	assert.Equal(t, 82.0, classifier.lastInput.Marks)
	assert.Equal(t, 91.0, classifier.lastInput.Attendance)
}

func TestScoreRisk_Thresholds(t *testing.T) {
	tests := []struct {
		probability float64
		want        string
	}{
		{0.9, RiskLevelHigh},
		{0.7, RiskLevelHigh},
		{0.69999, RiskLevelMedium},
		{0.4, RiskLevelMedium},
		{0.39999, RiskLevelLow},
		{0.0, RiskLevelLow},
	}
	for _, tc := range tests {
		classifier := &fakeClassifier{prediction: ml.Prediction{
			Label:         ml.LabelAtRisk,
			Probabilities: []float64{1 - tc.probability, tc.probability},
		}}
		svc := newTestRiskService(classifier)

		resp, err := svc.ScoreRisk(context.Background(), validPredictRequest())
		require.NoError(t, err, "probability %v", tc.probability)
		assert.Equal(t, tc.want, resp.RiskLevel, "probability %v", tc.probability)
	}
}

func TestScoreRisk_FallbackWithoutProbabilities(t *testing.T) {
	// At-risk label defaults to 0.5, which lands in Medium
	classifier := &fakeClassifier{prediction: ml.Prediction{Label: ml.LabelAtRisk}}
	resp, err := newTestRiskService(classifier).ScoreRisk(context.Background(), validPredictRequest())
	require.NoError(t, err)
	assert.Equal(t, RiskLevelMedium, resp.RiskLevel)

	// Retain label defaults to 0.2, which lands in Low
	classifier = &fakeClassifier{prediction: ml.Prediction{Label: ml.LabelRetain}}
	resp, err = newTestRiskService(classifier).ScoreRisk(context.Background(), validPredictRequest())
	require.NoError(t, err)
	assert.Equal(t, RiskLevelLow, resp.RiskLevel)
}

func TestScoreRisk_InvalidFeeStatus(t *testing.T) {
	svc := newTestRiskService(&fakeClassifier{})

	req := validPredictRequest()
	req.FeeStatus = "unpaid"
	_, err := svc.ScoreRisk(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Invalid fee_status", err.Error())
}

func TestModelInfo(t *testing.T) {
	svc := newTestRiskService(&fakeClassifier{})
	info := svc.ModelInfo(context.Background())
	assert.True(t, info.ModelLoaded)
	assert.Equal(t, "http://scorer:9000", info.ScorerURL)
	assert.Equal(t, "dropout-rf", info.ModelName)

	svc = newTestRiskService(nil)
	info = svc.ModelInfo(context.Background())
	assert.False(t, info.ModelLoaded)
}
