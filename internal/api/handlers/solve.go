package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jcloud242/resale-radar/internal/fees"
	"github.com/jcloud242/resale-radar/pkg/pricing"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// SolveHandler answers buy/sell margin questions without touching the
// marketplace.
type SolveHandler struct {
	fees *fees.Table
}

// NewSolveHandler creates a new SolveHandler.
func NewSolveHandler(feeTable *fees.Table) *SolveHandler {
	return &SolveHandler{fees: feeTable}
}

// SolveInput is the request body for the solve endpoint.
type SolveInput struct {
	Body struct {
		TargetMarginPct float64         `json:"target_margin_pct" doc:"Target margin as a percent of revenue" example:"20"`
		BuyPrice        *float64        `json:"buy_price,omitempty" doc:"Known buy price" example:"12.50"`
		SellPrice       *float64        `json:"sell_price,omitempty" doc:"Known or expected sell price" example:"34.99"`
		SalePrice       *float64        `json:"sale_price,omitempty" doc:"Actual sale price; adds realized profit when buy_price is also set"`
		Category        domain.Category `json:"category,omitempty" doc:"Resale category for fee resolution" example:"video_game"`

		FeeRate          *float64 `json:"fee_rate,omitempty" doc:"Override the marketplace fee rate"`
		ShippingEstimate *float64 `json:"shipping_estimate,omitempty" doc:"Override the seller shipping cost"`
		ShippingPaid     *float64 `json:"shipping_paid,omitempty" doc:"Override the buyer-paid shipping"`
	}
}

// SolveOutput is the response body for the solve endpoint.
type SolveOutput struct {
	Body struct {
		Solution pricing.MarginSolution `json:"solution" doc:"Solved buy/sell price points for the target margin"`
		Fees     pricing.FeeConfig      `json:"fees" doc:"Effective fee configuration used"`

		// Realized outcome, present when both buy_price and sale_price
		// were supplied.
		Profit *float64 `json:"profit,omitempty" doc:"Realized profit for the buy/sale pair"`
		Net    *float64 `json:"net,omitempty" doc:"Net proceeds for the sale price"`
	}
}

// Solve resolves fees and runs the margin solver for the supplied price
// points.
func (h *SolveHandler) Solve(_ context.Context, input *SolveInput) (*SolveOutput, error) {
	if input.Body.BuyPrice == nil && input.Body.SellPrice == nil {
		return nil, huma.Error422UnprocessableEntity("either buy_price or sell_price is required")
	}

	fc := h.fees.Resolve(input.Body.Category, nil, &fees.Override{
		FeeRate:          input.Body.FeeRate,
		ShippingEstimate: input.Body.ShippingEstimate,
		ShippingPaid:     input.Body.ShippingPaid,
	})

	out := &SolveOutput{}
	out.Body.Fees = fc
	out.Body.Solution = pricing.SolveMargin(
		input.Body.TargetMarginPct/100,
		fc,
		input.Body.BuyPrice,
		input.Body.SellPrice,
	)

	if input.Body.BuyPrice != nil && input.Body.SalePrice != nil {
		out.Body.Profit, out.Body.Net = pricing.ProfitForSale(
			*input.Body.BuyPrice, *input.Body.SalePrice, fc,
		)
	}

	return out, nil
}

// RegisterSolveRoutes registers the solve endpoint with the Huma API.
func RegisterSolveRoutes(api huma.API, h *SolveHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "solve-margin",
		Method:      http.MethodPost,
		Path:        "/api/v1/solve",
		Summary:     "Solve buy/sell prices for a target margin",
		Description: "Solves the maximum buy price or required sale price for a target margin under the resolved fee configuration.",
		Tags:        []string{"pricing"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.Solve)
}
