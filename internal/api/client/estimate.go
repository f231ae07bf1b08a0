package client

import (
	"context"

	"github.com/jcloud242/resale-radar/pkg/pricing"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// EstimateRequest mirrors the estimate endpoint body.
type EstimateRequest struct {
	Query    string          `json:"query,omitempty"`
	Prices   []float64       `json:"prices,omitempty"`
	Category domain.Category `json:"category,omitempty"`
	Source   string          `json:"source,omitempty"`

	FeeRate          *float64 `json:"fee_rate,omitempty"`
	ShippingEstimate *float64 `json:"shipping_estimate,omitempty"`
	ShippingPaid     *float64 `json:"shipping_paid,omitempty"`

	TargetMarginPct *float64 `json:"target_margin_pct,omitempty"`
	BuyPrice        *float64 `json:"buy_price,omitempty"`
	SellPrice       *float64 `json:"sell_price,omitempty"`
}

// EstimateResult is the estimate endpoint response.
type EstimateResult struct {
	Query    string                  `json:"query,omitempty"`
	Estimate pricing.Estimate        `json:"estimate"`
	Margin   *pricing.MarginSolution `json:"margin,omitempty"`
	Fees     pricing.FeeConfig       `json:"fees"`
	Cached   bool                    `json:"cached"`
}

// Estimate computes a resale value estimate from a market query or a raw
// price sample.
func (c *Client) Estimate(ctx context.Context, req *EstimateRequest) (*EstimateResult, error) {
	var result EstimateResult
	if err := c.post(ctx, "/api/v1/estimate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SolveRequest mirrors the solve endpoint body.
type SolveRequest struct {
	TargetMarginPct float64         `json:"target_margin_pct"`
	BuyPrice        *float64        `json:"buy_price,omitempty"`
	SellPrice       *float64        `json:"sell_price,omitempty"`
	SalePrice       *float64        `json:"sale_price,omitempty"`
	Category        domain.Category `json:"category,omitempty"`

	FeeRate          *float64 `json:"fee_rate,omitempty"`
	ShippingEstimate *float64 `json:"shipping_estimate,omitempty"`
	ShippingPaid     *float64 `json:"shipping_paid,omitempty"`
}

// SolveResult is the solve endpoint response.
type SolveResult struct {
	Solution pricing.MarginSolution `json:"solution"`
	Fees     pricing.FeeConfig      `json:"fees"`
	Profit   *float64               `json:"profit,omitempty"`
	Net      *float64               `json:"net,omitempty"`
}

// Solve computes buy/sell price points for a target margin.
func (c *Client) Solve(ctx context.Context, req *SolveRequest) (*SolveResult, error) {
	var result SolveResult
	if err := c.post(ctx, "/api/v1/solve", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
