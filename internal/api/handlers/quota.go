package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jcloud242/resale-radar/internal/ebay"
)

// BrowseQuotaProvider reports the marketplace-side quota state.
type BrowseQuotaProvider interface {
	GetBrowseQuota(ctx context.Context) (*ebay.QuotaState, error)
}

// QuotaHandler provides the marketplace API quota status endpoint.
type QuotaHandler struct {
	rl        *ebay.RateLimiter
	analytics BrowseQuotaProvider
}

// NewQuotaHandler creates a new QuotaHandler. The analytics provider may
// be nil, in which case only the local limiter state is reported.
func NewQuotaHandler(rl *ebay.RateLimiter, analytics BrowseQuotaProvider) *QuotaHandler {
	return &QuotaHandler{rl: rl, analytics: analytics}
}

// RemoteQuota mirrors the marketplace's own view of the daily quota.
type RemoteQuota struct {
	Limit     int64     `json:"limit"      example:"5000"                 doc:"Daily limit reported by the marketplace"`
	Remaining int64     `json:"remaining"  example:"4858"                 doc:"Remaining calls reported by the marketplace"`
	ResetAt   time.Time `json:"reset_at"   example:"2026-08-31T00:00:00Z" doc:"When the marketplace window resets"`
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64     `json:"daily_limit" example:"5000"                 doc:"Configured daily API call limit"`
		DailyUsed  int64     `json:"daily_used"  example:"142"                  doc:"API calls used in the current 24-hour window"`
		Remaining  int64     `json:"remaining"   example:"4858"                 doc:"API calls remaining in the current window"`
		ResetAt    time.Time `json:"reset_at"    example:"2026-08-31T14:30:00Z" doc:"When the current 24-hour window expires"`

		Remote *RemoteQuota `json:"remote,omitempty" doc:"Marketplace-side quota state, when available"`
	}
}

// GetQuota returns the current marketplace API quota status. The local
// limiter state is authoritative for throttling; the remote state is
// advisory and omitted when the Analytics API is unreachable.
func (h *QuotaHandler) GetQuota(ctx context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.rl != nil {
		resp.Body.DailyLimit = h.rl.MaxDaily()
		resp.Body.DailyUsed = h.rl.DailyCount()
		resp.Body.Remaining = h.rl.Remaining()
		resp.Body.ResetAt = h.rl.ResetAt()
	}

	if h.analytics != nil {
		if state, err := h.analytics.GetBrowseQuota(ctx); err == nil {
			resp.Body.Remote = &RemoteQuota{
				Limit:     state.Limit,
				Remaining: state.Remaining,
				ResetAt:   state.ResetAt,
			}
		}
	}

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get marketplace API quota status",
		Description: "Returns the current daily API call usage, remaining quota, and window reset time, plus the marketplace's own view when available.",
		Tags:        []string{"market"},
	}, h.GetQuota)
}
