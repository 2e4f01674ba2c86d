package ml

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFeatures_TrainingSchema(t *testing.T) {
	features := BuildFeatures(7.5, 85, "payment_pending", 2)

	assert.Equal(t, "Student", features.Name)
	assert.Equal(t, 1, features.RollNo)
	assert.Equal(t, "Male", features.Gender)
	assert.Equal(t, "General", features.Category)
	assert.Equal(t, "payment_pending", features.FeesStatus)
	assert.Equal(t, 85.0, features.Attendance)
	assert.Equal(t, 75.0, features.Marks)
	assert.Equal(t, 2, features.Backlog)
}

func TestFeatures_WireNames(t *testing.T) {
	body, err := json.Marshal(BuildFeatures(8, 90, "paid", 0))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	// Column names must match the training data exactly, spaces included
	for _, key := range []string{"Name", "Roll No", "Gender", "Category", "Fees_Status", "Attendance", "Marks", "Backlog"} {
		assert.Contains(t, decoded, key)
	}
}

func TestPrediction_PositiveProbability(t *testing.T) {
	p := Prediction{Label: LabelAtRisk, Probabilities: []float64{0.3, 0.7}}
	prob, ok := p.PositiveProbability()
	assert.True(t, ok)
	assert.Equal(t, 0.7, prob)

	_, ok = Prediction{Label: LabelAtRisk}.PositiveProbability()
	assert.False(t, ok)

	_, ok = Prediction{Label: LabelRetain, Probabilities: []float64{1}}.PositiveProbability()
	assert.False(t, ok)
}

func TestPrediction_MaxProbability(t *testing.T) {
	p := Prediction{Label: LabelRetain, Probabilities: []float64{0.8, 0.2}}
	prob, ok := p.MaxProbability()
	assert.True(t, ok)
	assert.Equal(t, 0.8, prob)

	_, ok = Prediction{}.MaxProbability()
	assert.False(t, ok)
}
