package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestedBuy(t *testing.T) {
	t.Parallel()

	fc := FeeConfig{FeeRate: 0.13, ShippingEstimate: 7, ShippingPaid: 5}

	// (50 + 5) * (1 - 0.13 - 0.20) - 7 = 55*0.67 - 7 = 29.85
	got := SuggestedBuy(50, fc, 0.20)
	require.NotNil(t, got)
	assert.InDelta(t, 29.85, *got, 0.001)
}

func TestSuggestedBuy_NonFinite(t *testing.T) {
	t.Parallel()

	fc := DefaultFeeConfig()
	assert.Nil(t, SuggestedBuy(math.NaN(), fc, 0.2))
	assert.Nil(t, SuggestedBuy(math.Inf(1), fc, 0.2))
}

func TestSuggestedBuy_NegativeNotClamped(t *testing.T) {
	t.Parallel()

	// Cheap item where fees and shipping eat the whole revenue.
	got := SuggestedBuy(5, DefaultFeeConfig(), 0.5)
	require.NotNil(t, got)
	assert.Negative(t, *got)
}

func TestRequiredSalePrice(t *testing.T) {
	t.Parallel()

	fc := FeeConfig{FeeRate: 0.13, ShippingEstimate: 7, ShippingPaid: 5}

	// denom = 0.67; (20 + 7) / 0.67 = 40.2985... minus shippingPaid 5 = 35.30
	got := RequiredSalePrice(20, fc, 0.20)
	require.NotNil(t, got)
	assert.InDelta(t, 35.30, *got, 0.001)
}

func TestRequiredSalePrice_InfeasibleMargin(t *testing.T) {
	t.Parallel()

	fc := FeeConfig{FeeRate: 0.13, ShippingEstimate: 7}

	tests := []struct {
		name   string
		margin float64
	}{
		{"denominator negative", 0.95},
		{"denominator barely negative", 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Nil(t, RequiredSalePrice(50, fc, tt.margin))
		})
	}
}

func TestSaleNeededForBuy_MatchesRequiredSalePrice(t *testing.T) {
	t.Parallel()

	fc := FeeConfig{FeeRate: 0.13, ShippingEstimate: 7, ShippingPaid: 4}
	a := SaleNeededForBuy(32.5, 0.25, fc)
	b := RequiredSalePrice(32.5, fc, 0.25)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, *b, *a)
}

func TestSolverInverse(t *testing.T) {
	t.Parallel()

	// SuggestedBuy and RequiredSalePrice are algebraic inverses: solving
	// back from the suggested buy recovers the sell price within
	// rounding tolerance.
	fc := FeeConfig{FeeRate: 0.13, ShippingEstimate: 7, ShippingPaid: 5}

	for _, sellPrice := range []float64{25, 50, 99.99, 240} {
		buy := SuggestedBuy(sellPrice, fc, 0.20)
		require.NotNil(t, buy)

		back := RequiredSalePrice(*buy, fc, 0.20)
		require.NotNil(t, back)
		assert.InDelta(t, sellPrice, *back, 0.02)
	}
}

func TestProfitForSale(t *testing.T) {
	t.Parallel()

	fc := FeeConfig{FeeRate: 0.13, ShippingEstimate: 7, ShippingPaid: 5}

	// Legacy model ignores shippingPaid: net = 60*0.87 - 7 = 45.20,
	// profit = 45.20 - 30 = 15.20.
	profit, net := ProfitForSale(30, 60, fc)
	require.NotNil(t, profit)
	require.NotNil(t, net)
	assert.InDelta(t, 45.20, *net, 0.001)
	assert.InDelta(t, 15.20, *profit, 0.001)
}

func TestProfitForSale_SignedLoss(t *testing.T) {
	t.Parallel()

	// True signed values are returned; display clamping is not ours.
	profit, _ := ProfitForSale(100, 20, DefaultFeeConfig())
	require.NotNil(t, profit)
	assert.Negative(t, *profit)
}

func TestProfitForSale_NonFinite(t *testing.T) {
	t.Parallel()

	profit, net := ProfitForSale(math.NaN(), 20, DefaultFeeConfig())
	assert.Nil(t, profit)
	assert.Nil(t, net)
}

func TestSolveMargin_FromSellPrice(t *testing.T) {
	t.Parallel()

	fc := FeeConfig{FeeRate: 0.13, ShippingEstimate: 7}
	sol := SolveMargin(0.20, fc, nil, ptr(50))

	require.NotNil(t, sol.SuggestedBuy)
	require.NotNil(t, sol.RequiredSalePrice)
	require.NotNil(t, sol.Profit)
	// 50 * 0.67 - 7 = 26.50
	assert.InDelta(t, 26.50, *sol.SuggestedBuy, 0.001)
	// Target net is revenue * margin = 10.00
	assert.InDelta(t, 10.00, *sol.Profit, 0.001)
	// Solving back from the suggested buy should land near the sell price.
	assert.InDelta(t, 50, *sol.RequiredSalePrice, 0.02)
}

func TestSolveMargin_FromBuyPrice(t *testing.T) {
	t.Parallel()

	fc := FeeConfig{FeeRate: 0.13, ShippingEstimate: 7}
	sol := SolveMargin(0.20, fc, ptr(20), nil)

	require.NotNil(t, sol.RequiredSalePrice)
	require.NotNil(t, sol.Profit)
	require.NotNil(t, sol.ProfitPct)
	assert.Nil(t, sol.SuggestedBuy)
	// (20 + 7) / 0.67 = 40.30
	assert.InDelta(t, 40.30, *sol.RequiredSalePrice, 0.001)
}

func TestSolveMargin_Infeasible(t *testing.T) {
	t.Parallel()

	sol := SolveMargin(0.95, DefaultFeeConfig(), ptr(50), nil)
	assert.Nil(t, sol.RequiredSalePrice)
	assert.Nil(t, sol.Profit)
	assert.Nil(t, sol.ProfitPct)
}

func TestSolveMargin_NoInputs(t *testing.T) {
	t.Parallel()

	sol := SolveMargin(0.2, DefaultFeeConfig(), nil, nil)
	assert.Equal(t, MarginSolution{}, sol)
}
