package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMissing(t *testing.T) {
	assert.True(t, isMissing(nil))
	assert.True(t, isMissing(""))
	assert.True(t, isMissing("   "))
	assert.False(t, isMissing(0.0))
	assert.False(t, isMissing("0"))
}

func TestCoerceFloat(t *testing.T) {
	for _, tc := range []struct {
		in   interface{}
		want float64
	}{
		{7.5, 7.5},
		{8, 8},
		{"7.5", 7.5},
		{" 85 ", 85},
		{json.Number("9.1"), 9.1},
	} {
		got, err := coerceFloat(tc.in)
		require.NoError(t, err, "input %v", tc.in)
		assert.Equal(t, tc.want, got)
	}

	for _, in := range []interface{}{"abc", nil, true, "7,5"} {
		_, err := coerceFloat(in)
		assert.Error(t, err, "input %v", in)
	}
}

func TestCoerceInt(t *testing.T) {
	for _, tc := range []struct {
		in   interface{}
		want int
	}{
		{2, 2},
		// JSON numbers decode as float64 even when integral
		{3.0, 3},
		{"4", 4},
		{json.Number("5"), 5},
	} {
		got, err := coerceInt(tc.in)
		require.NoError(t, err, "input %v", tc.in)
		assert.Equal(t, tc.want, got)
	}

	for _, in := range []interface{}{2.5, "2.5", "abc", nil, true} {
		_, err := coerceInt(in)
		assert.Error(t, err, "input %v", in)
	}
}
