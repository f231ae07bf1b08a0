package pricing

import "sort"

// FilterOutliers removes statistical outliers from a price sample using
// the interquartile range method. Quartiles use the nearest-rank method
// with no interpolation: Q1 at index floor((n-1)*0.25), Q3 at index
// floor((n-1)*0.75) of the ascending sort. Values outside
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR] are dropped; the bounds are inclusive.
//
// The input is not modified. An empty input returns an empty slice.
func FilterOutliers(prices []float64) []float64 {
	if len(prices) == 0 {
		return []float64{}
	}

	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)

	n := len(sorted)
	q1 := sorted[(n-1)/4]
	q3 := sorted[(n-1)*3/4]
	iqr := q3 - q1

	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	kept := make([]float64, 0, n)
	for _, v := range sorted {
		if v >= lower && v <= upper {
			kept = append(kept, v)
		}
	}
	return kept
}
