package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEstimate_EmptyInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prices []float64
	}{
		{"nil", nil},
		{"empty", []float64{}},
		{"all invalid", []float64{math.NaN(), math.Inf(1), -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := ComputeEstimate(tt.prices, DefaultFeeConfig(), 0.88)
			assert.Zero(t, e.SampleSize)
			assert.Zero(t, e.CleanedCount)
			assert.Equal(t, ConfidenceLow, e.Confidence)
			assert.Nil(t, e.AvgActive)
			assert.Nil(t, e.MedianActive)
			assert.Nil(t, e.Scenarios.Base.ExpectedSale)
			assert.NotEmpty(t, e.GeneratedAt)
		})
	}
}

func TestComputeEstimate_EndToEnd(t *testing.T) {
	t.Parallel()

	// 100 is an outlier and gets dropped; the cleaned sample is
	// [9,10,11,12,12,13]. Sample size stays 7 (pre-filter), so the
	// confidence boundary at 6 is crossed and the label is medium.
	raw := []float64{10, 12, 11, 13, 9, 12, 100}
	e := ComputeEstimate(raw, DefaultFeeConfig(), 0.88)

	assert.Equal(t, 7, e.SampleSize)
	assert.Equal(t, 6, e.CleanedCount)
	require.NotNil(t, e.AvgActive)
	assert.InDelta(t, 11.17, *e.AvgActive, 0.001)
	require.NotNil(t, e.MedianActive)
	assert.InDelta(t, 11.5, *e.MedianActive, 0.001)
	assert.Equal(t, ConfidenceMedium, e.Confidence)
	require.NotNil(t, e.Scenarios.Base.ExpectedSale)
}

func TestComputeEstimate_Idempotent(t *testing.T) {
	t.Parallel()

	raw := []float64{19.99, 24.5, 22, 18, 30, 21.5, 25, 23}
	fc := FeeConfig{FeeRate: 0.13, ShippingEstimate: 7}

	a := ComputeEstimate(raw, fc, 0.88)
	b := ComputeEstimate(raw, fc, 0.88)

	// Identical except the generation timestamp.
	a.GeneratedAt = ""
	b.GeneratedAt = ""
	assert.Equal(t, a, b)
}

func TestComputeEstimate_DropsInvalidKeepsValid(t *testing.T) {
	t.Parallel()

	raw := []float64{20, math.NaN(), 22, math.Inf(-1), 21, -3}
	e := ComputeEstimate(raw, DefaultFeeConfig(), 0.88)

	assert.Equal(t, 3, e.SampleSize)
	assert.Equal(t, 3, e.CleanedCount)
	require.NotNil(t, e.AvgActive)
	assert.InDelta(t, 21, *e.AvgActive, 0.001)
}

func TestComputeEstimate_MedianEvenLength(t *testing.T) {
	t.Parallel()

	e := ComputeEstimate([]float64{10, 20, 30, 40}, DefaultFeeConfig(), 0.88)
	require.NotNil(t, e.MedianActive)
	assert.InDelta(t, 25, *e.MedianActive, 0.001)
}

func TestComputeEstimate_SingleObservation(t *testing.T) {
	t.Parallel()

	e := ComputeEstimate([]float64{59.99}, DefaultFeeConfig(), 0.88)
	assert.Equal(t, 1, e.SampleSize)
	assert.Equal(t, 1, e.CleanedCount)
	assert.Equal(t, ConfidenceLow, e.Confidence)
	require.NotNil(t, e.AvgActive)
	assert.InDelta(t, 59.99, *e.AvgActive, 0.001)
}

func TestMedianOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, medianOf(tt.values), 0.0001)
		})
	}
}
