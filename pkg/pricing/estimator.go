package pricing

import (
	"math"
	"sort"
	"time"
)

// ComputeEstimate runs the full estimation pipeline: sanitize the raw
// sample, filter outliers, average, score confidence, and project
// scenarios. It is a pure function of its inputs except for GeneratedAt.
// Malformed numeric input (NaN, infinities, negatives) is dropped rather
// than rejected; an empty usable sample yields a low-confidence estimate
// with nil averages.
func ComputeEstimate(rawPrices []float64, fc FeeConfig, binFactor float64) Estimate {
	sample := sanitize(rawPrices)
	if len(sample) == 0 {
		return Estimate{
			Confidence:  ConfidenceLow,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		}
	}

	cleaned := FilterOutliers(sample)

	var avg, median *float64
	var avgRaw float64
	if len(cleaned) > 0 {
		avgRaw = mean(cleaned)
		avg = ptr(round2(avgRaw))
		median = ptr(round2(medianOf(cleaned)))
	}

	return Estimate{
		SampleSize:   len(sample),
		CleanedCount: len(cleaned),
		AvgActive:    avg,
		MedianActive: median,
		Confidence:   ScoreConfidence(cleaned, len(sample), avgRaw),
		Scenarios:    ProjectScenarios(avg, fc, binFactor),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	}
}

// sanitize keeps only finite, non-negative prices.
func sanitize(prices []float64) []float64 {
	out := make([]float64, 0, len(prices))
	for _, v := range prices {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// medianOf returns the standard median: the middle element for odd-length
// input, the average of the two middle elements for even-length.
func medianOf(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
