package pricing

import "math"

// Sale factor spreads around the base bin factor.
const (
	optimisticSpread   = 0.07
	conservativeSpread = 0.06
	conservativeFloor  = 0.6
)

// ProjectScenarios computes optimistic, base, and conservative sale
// projections from the cleaned average active price. The optimistic sale
// factor is the bin factor plus 0.07 capped at 1.0; the conservative
// factor is the bin factor minus 0.06 floored at 0.6. For each scenario,
// expectedSale = avg * saleFactor and
// netExpected = expectedSale * (1 - feeRate) - shippingEstimate.
// A nil avg propagates as nil expected values. Monetary outputs are
// rounded to 2 decimals.
func ProjectScenarios(avg *float64, fc FeeConfig, binFactor float64) Scenarios {
	if binFactor <= 0 {
		binFactor = DefaultBinFactor
	}
	return Scenarios{
		Optimistic:   projectScenario(avg, fc, math.Min(binFactor+optimisticSpread, 1.0)),
		Base:         projectScenario(avg, fc, binFactor),
		Conservative: projectScenario(avg, fc, math.Max(conservativeFloor, binFactor-conservativeSpread)),
	}
}

func projectScenario(avg *float64, fc FeeConfig, saleFactor float64) Scenario {
	s := Scenario{SaleFactor: saleFactor}
	if avg == nil {
		return s
	}

	expected := *avg * saleFactor
	net := expected*(1-fc.FeeRate) - fc.ShippingEstimate

	s.ExpectedSale = ptr(round2(expected))
	s.NetExpected = ptr(round2(net))
	return s
}
