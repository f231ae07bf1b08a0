package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcloud242/resale-radar/internal/api/handlers"
	"github.com/jcloud242/resale-radar/internal/fees"
	"github.com/jcloud242/resale-radar/pkg/pricing"
)

func newSolveAPI(t *testing.T) humatest.TestAPI {
	t.Helper()

	h := handlers.NewSolveHandler(fees.NewTable(pricing.FeeConfig{}, nil))

	_, api := humatest.New(t)
	handlers.RegisterSolveRoutes(api, h)
	return api
}

func TestSolveHandler_Solve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantBody   []string
	}{
		{
			name: "sell price yields suggested buy",
			body: map[string]any{
				"target_margin_pct": 20,
				"sell_price":        50,
			},
			wantStatus: http.StatusOK,
			// (50+0)*(1-0.13-0.20) - 7 = 26.50
			wantBody: []string{`"suggested_buy":26.5`},
		},
		{
			name: "buy price yields required sale price",
			body: map[string]any{
				"target_margin_pct": 20,
				"buy_price":         26.5,
			},
			wantStatus: http.StatusOK,
			// (26.5+7)/0.67 = 50.00
			wantBody: []string{`"required_sale_price":50`},
		},
		{
			name: "infeasible margin yields null sale price",
			body: map[string]any{
				"target_margin_pct": 90,
				"buy_price":         10,
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"required_sale_price":null`},
		},
		{
			name: "buy and sale pair yields realized profit",
			body: map[string]any{
				"target_margin_pct": 20,
				"buy_price":         10,
				"sale_price":        40,
			},
			wantStatus: http.StatusOK,
			// net = 40*0.87 - 7 = 27.80, profit = 17.80
			wantBody: []string{`"profit":17.8`, `"net":27.8`},
		},
		{
			name: "neither price returns 422",
			body: map[string]any{
				"target_margin_pct": 20,
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"either buy_price or sell_price is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newSolveAPI(t)

			resp := api.Post("/api/v1/solve", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestSolveHandler_FeeOverride(t *testing.T) {
	t.Parallel()

	api := newSolveAPI(t)

	resp := api.Post("/api/v1/solve", map[string]any{
		"target_margin_pct": 20,
		"sell_price":        50,
		"fee_rate":          0.1,
		"shipping_estimate": 0,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	// (50+0)*(1-0.10-0.20) - 0 = 35.00
	assert.Contains(t, resp.Body.String(), `"suggested_buy":35`)
}
