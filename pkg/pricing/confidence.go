package pricing

import "math"

// Confidence thresholds.
const (
	highMinSamples   = 12
	mediumMinSamples = 6
	highMaxVariation = 0.25
)

// ScoreConfidence assigns a coarse confidence label to an estimate.
// sampleSize is the observation count before outlier filtering, while the
// dispersion check runs on the cleaned sample around avg. That asymmetry
// is deliberate: sample size reflects how much market data was gathered,
// dispersion reflects how tight the usable prices are.
func ScoreConfidence(cleaned []float64, sampleSize int, avg float64) Confidence {
	if sampleSize >= highMinSamples {
		sd := stddev(cleaned, avg)
		if sd/math.Max(avg, 0.0001) < highMaxVariation {
			return ConfidenceHigh
		}
	}
	if sampleSize >= mediumMinSamples {
		return ConfidenceMedium
	}
	return ConfidenceLow
}

// stddev computes the population standard deviation of values around avg.
func stddev(values []float64, avg float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - avg
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
