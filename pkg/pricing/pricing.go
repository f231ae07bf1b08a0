// Package pricing implements the resale price estimation core: outlier
// filtering, scenario projection, confidence scoring, and the buy/sell
// margin solver. All functions are pure and safe for concurrent use.
package pricing

import "math"

// Confidence is a coarse label for how trustworthy an estimate is.
type Confidence string

// Confidence levels.
const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// DefaultBinFactor is the assumed fraction of an active listing's price
// realized at actual sale.
const DefaultBinFactor = 0.88

// FeeConfig holds the marketplace fee rate and shipping assumptions used
// by the projector and solver.
type FeeConfig struct {
	// FeeRate is the marketplace's cut as a fraction in [0,1).
	FeeRate float64 `json:"fee_rate"`
	// ShippingEstimate is what the seller expects to pay to ship.
	ShippingEstimate float64 `json:"shipping_estimate"`
	// ShippingPaid is what the buyer is charged for shipping. It counts
	// toward total revenue under the revenue-based fee model.
	ShippingPaid float64 `json:"shipping_paid"`
}

// DefaultFeeConfig returns the global fallback fee configuration.
func DefaultFeeConfig() FeeConfig {
	return FeeConfig{
		FeeRate:          0.13,
		ShippingEstimate: 7,
	}
}

// Scenario holds one projected sale outcome.
type Scenario struct {
	SaleFactor   float64  `json:"sale_factor"`
	ExpectedSale *float64 `json:"expected_sale"`
	NetExpected  *float64 `json:"net_expected"`
}

// Scenarios groups the three named projections.
type Scenarios struct {
	Optimistic   Scenario `json:"optimistic"`
	Base         Scenario `json:"base"`
	Conservative Scenario `json:"conservative"`
}

// Estimate is the orchestrator's output, computed fresh on each request
// and never mutated after creation.
type Estimate struct {
	SampleSize   int        `json:"sample_size"`
	CleanedCount int        `json:"cleaned_count"`
	AvgActive    *float64   `json:"avg_active"`
	MedianActive *float64   `json:"median_active"`
	Confidence   Confidence `json:"confidence"`
	Scenarios    Scenarios  `json:"scenarios"`
	GeneratedAt  string     `json:"generated_at"`
}

// MarginSolution holds the solver's output for a target margin request.
// Fields are nil when the corresponding value is undefined, for example
// when the margin target is infeasible given the fee structure.
type MarginSolution struct {
	TargetMarginPct   float64  `json:"target_margin_pct,omitempty"`
	SuggestedBuy      *float64 `json:"suggested_buy"`
	RequiredSalePrice *float64 `json:"required_sale_price"`
	Profit            *float64 `json:"profit"`
	ProfitPct         *float64 `json:"profit_pct"`
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr(v float64) *float64 {
	return &v
}
