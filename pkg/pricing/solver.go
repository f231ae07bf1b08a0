package pricing

import "math"

// The solver operates on a revenue-based fee model: marketplace fees and
// the target net are computed against totalRevenue = price + shippingPaid,
// not against price alone. Shipping charged to the buyer is treated as
// taxable revenue, matching common marketplace fee structures.

// SuggestedBuy solves for the maximum buy price that still hits the
// target margin when the item sells at sellPrice. Returns nil when
// sellPrice is not finite. Negative results are returned as-is; clamping
// for display is a presentation concern.
func SuggestedBuy(sellPrice float64, fc FeeConfig, targetMargin float64) *float64 {
	if math.IsNaN(sellPrice) || math.IsInf(sellPrice, 0) {
		return nil
	}
	totalRevenue := sellPrice + fc.ShippingPaid
	result := totalRevenue*(1-fc.FeeRate-targetMargin) - fc.ShippingEstimate
	return ptr(round2(result))
}

// RequiredSalePrice solves for the listing price needed to hit the target
// margin on a known buy price. Returns nil when the margin target is
// infeasible, that is when 1 - feeRate - targetMargin <= 0.
func RequiredSalePrice(buyPrice float64, fc FeeConfig, targetMargin float64) *float64 {
	if math.IsNaN(buyPrice) || math.IsInf(buyPrice, 0) {
		return nil
	}
	denom := 1 - fc.FeeRate - targetMargin
	if denom <= 0 {
		return nil
	}
	totalRevenueNeeded := (buyPrice + fc.ShippingEstimate) / denom
	return ptr(round2(totalRevenueNeeded - fc.ShippingPaid))
}

// SaleNeededForBuy is RequiredSalePrice under another name: callers invoke
// it against a hypothetical suggested buy price rather than an
// authoritative one. Same math, different caller context.
func SaleNeededForBuy(buyPrice, targetMargin float64, fc FeeConfig) *float64 {
	return RequiredSalePrice(buyPrice, fc, targetMargin)
}

// ProfitForSale computes profit for a concrete buy/sale pair using the
// legacy simple fee model: net = salePrice * (1 - feeRate) -
// shippingEstimate, profit = net - buyPrice. Unlike the solver above it
// omits shippingPaid from revenue. Both variants are kept as distinct
// operations; see DESIGN.md.
func ProfitForSale(buyPrice, salePrice float64, fc FeeConfig) (profit, net *float64) {
	if math.IsNaN(salePrice) || math.IsInf(salePrice, 0) ||
		math.IsNaN(buyPrice) || math.IsInf(buyPrice, 0) {
		return nil, nil
	}
	n := salePrice*(1-fc.FeeRate) - fc.ShippingEstimate
	p := n - buyPrice
	return ptr(round2(p)), ptr(round2(n))
}

// SolveMargin builds a full MarginSolution from a target margin fraction
// and either a known buy price or a market sell price. When both are nil
// the solution is empty. Profit is the target net at the solved price
// point, which under the revenue-based model equals totalRevenue *
// targetMargin; ProfitPct expresses it against the buy price.
func SolveMargin(targetMargin float64, fc FeeConfig, buyPrice, sellPrice *float64) MarginSolution {
	var sol MarginSolution

	switch {
	case sellPrice != nil:
		sol.SuggestedBuy = SuggestedBuy(*sellPrice, fc, targetMargin)
		if sol.SuggestedBuy != nil {
			sol.RequiredSalePrice = SaleNeededForBuy(*sol.SuggestedBuy, targetMargin, fc)
			totalRevenue := *sellPrice + fc.ShippingPaid
			sol.Profit = ptr(round2(totalRevenue * targetMargin))
			if *sol.SuggestedBuy > 0 {
				sol.ProfitPct = ptr(round2(*sol.Profit / *sol.SuggestedBuy * 100))
			}
		}
	case buyPrice != nil:
		sol.RequiredSalePrice = RequiredSalePrice(*buyPrice, fc, targetMargin)
		if sol.RequiredSalePrice != nil {
			totalRevenue := *sol.RequiredSalePrice + fc.ShippingPaid
			sol.Profit = ptr(round2(totalRevenue * targetMargin))
			if *buyPrice > 0 {
				sol.ProfitPct = ptr(round2(*sol.Profit / *buyPrice * 100))
			}
		}
	}

	return sol
}
