package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jcloud242/resale-radar/internal/cache"
	"github.com/jcloud242/resale-radar/internal/ebay"
	"github.com/jcloud242/resale-radar/internal/fees"
	"github.com/jcloud242/resale-radar/internal/metrics"
	"github.com/jcloud242/resale-radar/pkg/pricing"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// SampleCollector gathers a market price sample for a search query.
type SampleCollector interface {
	Collect(ctx context.Context, req ebay.SearchRequest, sampleSize int) (*ebay.SampleResult, error)
}

// SearchRecorder persists search history entries.
type SearchRecorder interface {
	InsertSearchRecord(ctx context.Context, r *domain.SearchRecord) error
}

// EstimateParams holds the tunables for the estimate handler.
type EstimateParams struct {
	BinFactor  float64
	CacheTTL   time.Duration
	SampleSize int
}

// EstimateHandler computes resale estimates from a price sample, either
// supplied directly or gathered from the marketplace.
type EstimateHandler struct {
	sampler SampleCollector
	fees    *fees.Table
	cache   cache.Cache
	history SearchRecorder
	params  EstimateParams
	log     *slog.Logger
}

// NewEstimateHandler creates a new EstimateHandler. The history recorder
// may be nil, in which case query searches are not recorded.
func NewEstimateHandler(
	sampler SampleCollector,
	feeTable *fees.Table,
	c cache.Cache,
	history SearchRecorder,
	params EstimateParams,
	log *slog.Logger,
) *EstimateHandler {
	if params.BinFactor <= 0 {
		params.BinFactor = pricing.DefaultBinFactor
	}
	if params.CacheTTL <= 0 {
		params.CacheTTL = 5 * time.Minute
	}
	return &EstimateHandler{
		sampler: sampler,
		fees:    feeTable,
		cache:   c,
		history: history,
		params:  params,
		log:     log,
	}
}

// EstimateInput is the request body for the estimate endpoint. Either a
// raw price sample or a marketplace query must be supplied.
type EstimateInput struct {
	Body struct {
		Query    string          `json:"query,omitempty" doc:"Marketplace search query" example:"metroid prime gamecube"`
		Prices   []float64       `json:"prices,omitempty" doc:"Raw price sample; skips the marketplace search when set"`
		Category domain.Category `json:"category,omitempty" doc:"Resale category for fee resolution" example:"video_game"`
		Source   string          `json:"source,omitempty" doc:"How the query was produced" example:"text" enum:"text,scan,photo"`

		FeeRate          *float64 `json:"fee_rate,omitempty" doc:"Override the marketplace fee rate" example:"0.13"`
		ShippingEstimate *float64 `json:"shipping_estimate,omitempty" doc:"Override the seller shipping cost" example:"7"`
		ShippingPaid     *float64 `json:"shipping_paid,omitempty" doc:"Override the buyer-paid shipping" example:"0"`

		TargetMarginPct *float64 `json:"target_margin_pct,omitempty" doc:"Target margin percent; adds a margin solution to the response" example:"20"`
		BuyPrice        *float64 `json:"buy_price,omitempty" doc:"Known buy price for the margin solution" example:"12.50"`
		SellPrice       *float64 `json:"sell_price,omitempty" doc:"Known sell price for the margin solution; defaults to the estimated average"`
	}
}

// EstimateOutput is the response body for the estimate endpoint.
type EstimateOutput struct {
	Body struct {
		Query    string                  `json:"query,omitempty" doc:"Query the sample was gathered for"`
		Estimate pricing.Estimate        `json:"estimate" doc:"Computed estimate"`
		Margin   *pricing.MarginSolution `json:"margin,omitempty" doc:"Margin solution, present when target_margin_pct was supplied"`
		Fees     pricing.FeeConfig       `json:"fees" doc:"Effective fee configuration used"`
		Cached   bool                    `json:"cached" doc:"Whether the estimate came from the cache"`
	}
}

// Estimate computes a resale estimate. Supplied prices are used as-is;
// otherwise the marketplace is sampled for the query, with recent query
// results served from the cache.
func (h *EstimateHandler) Estimate(ctx context.Context, input *EstimateInput) (*EstimateOutput, error) {
	if len(input.Body.Prices) == 0 && input.Body.Query == "" {
		return nil, huma.Error422UnprocessableEntity("either prices or query is required")
	}
	if len(input.Body.Prices) == 0 && h.sampler == nil {
		return nil, huma.Error503ServiceUnavailable("marketplace search is not configured")
	}

	fc := h.fees.Resolve(input.Body.Category, nil, &fees.Override{
		FeeRate:          input.Body.FeeRate,
		ShippingEstimate: input.Body.ShippingEstimate,
		ShippingPaid:     input.Body.ShippingPaid,
	})

	start := time.Now()

	out := &EstimateOutput{}
	out.Body.Fees = fc

	switch {
	case len(input.Body.Prices) > 0:
		out.Body.Estimate = pricing.ComputeEstimate(input.Body.Prices, fc, h.params.BinFactor)
		metrics.EstimatesComputedTotal.Inc()

	default:
		est, cached, err := h.estimateForQuery(ctx, input.Body.Query, input.Body.Category, fc)
		if err != nil {
			return nil, err
		}
		out.Body.Query = input.Body.Query
		out.Body.Estimate = *est
		out.Body.Cached = cached

		h.recordSearch(ctx, input.Body.Query, input.Body.Source, est)
	}

	est := out.Body.Estimate
	metrics.EstimateDuration.Observe(time.Since(start).Seconds())
	metrics.EstimateConfidenceTotal.WithLabelValues(string(est.Confidence)).Inc()
	metrics.SampleSizeDistribution.Observe(float64(est.SampleSize))

	if input.Body.TargetMarginPct != nil {
		sellPrice := input.Body.SellPrice
		if sellPrice == nil {
			sellPrice = est.AvgActive
		}
		sol := pricing.SolveMargin(
			*input.Body.TargetMarginPct/100,
			fc,
			input.Body.BuyPrice,
			sellPrice,
		)
		out.Body.Margin = &sol
	}

	return out, nil
}

// estimateForQuery returns the cached estimate for the query when fresh,
// otherwise samples the marketplace and caches the result.
func (h *EstimateHandler) estimateForQuery(
	ctx context.Context,
	query string,
	category domain.Category,
	fc pricing.FeeConfig,
) (*pricing.Estimate, bool, error) {
	key := estimateCacheKey(query, category, fc, h.params.BinFactor)

	if data, ok := h.cache.Get(ctx, key); ok {
		var est pricing.Estimate
		if err := json.Unmarshal(data, &est); err == nil {
			metrics.EstimateCacheHitsTotal.Inc()
			return &est, true, nil
		}
		// Unreadable entry: drop it and fall through to a fresh sample.
		h.cache.Delete(ctx, key)
	}
	metrics.EstimateCacheMissesTotal.Inc()

	sample, err := h.sampler.Collect(ctx, ebay.SearchRequest{Query: query}, h.params.SampleSize)
	if err != nil {
		return nil, false, huma.Error502BadGateway("marketplace search failed: " + err.Error())
	}

	est := pricing.ComputeEstimate(sample.Prices, fc, h.params.BinFactor)
	metrics.EstimatesComputedTotal.Inc()

	if data, err := json.Marshal(est); err == nil {
		h.cache.Set(ctx, key, data, h.params.CacheTTL)
	}

	return &est, false, nil
}

func (h *EstimateHandler) recordSearch(
	ctx context.Context,
	query, source string,
	est *pricing.Estimate,
) {
	if h.history == nil {
		return
	}
	if source == "" {
		source = "text"
	}

	rec := &domain.SearchRecord{
		Query:      query,
		Source:     source,
		SampleSize: est.SampleSize,
		AvgActive:  est.AvgActive,
		Confidence: string(est.Confidence),
	}
	if err := h.history.InsertSearchRecord(ctx, rec); err != nil && h.log != nil {
		h.log.Warn("recording search history", "query", query, "err", err)
	}
}

// estimateCacheKey hashes everything that affects the estimate so a fee
// or bin factor change never serves a stale projection.
func estimateCacheKey(query string, category domain.Category, fc pricing.FeeConfig, binFactor float64) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%v|%v|%v|%v",
		query, category, fc.FeeRate, fc.ShippingEstimate, fc.ShippingPaid, binFactor,
	))
	return "estimate:" + hex.EncodeToString(sum[:])
}

// RegisterEstimateRoutes registers the estimate endpoint with the Huma API.
func RegisterEstimateRoutes(api huma.API, h *EstimateHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "compute-estimate",
		Method:      http.MethodPost,
		Path:        "/api/v1/estimate",
		Summary:     "Compute a resale estimate",
		Description: "Computes a resale value estimate from a price sample, supplied directly or gathered from the marketplace for a search query.",
		Tags:        []string{"pricing"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Estimate)
}
