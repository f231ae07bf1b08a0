package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Refresher defines the interface for triggering a collection refresh.
type Refresher interface {
	RunRefresh(ctx context.Context) (int, error)
}

// RefreshHandler handles manual refresh trigger requests.
type RefreshHandler struct {
	refresher Refresher
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(r Refresher) *RefreshHandler {
	return &RefreshHandler{refresher: r}
}

// RefreshOutput is the response body for the refresh endpoint.
type RefreshOutput struct {
	Body struct {
		Status         string `json:"status" example:"refresh completed" doc:"Refresh status"`
		ItemsRefreshed int    `json:"items_refreshed" example:"42" doc:"Number of items re-estimated"`
	}
}

// Refresh re-estimates every tracked item and records snapshots.
func (h *RefreshHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	refreshed, err := h.refresher.RunRefresh(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("refresh failed: " + err.Error())
	}

	resp := &RefreshOutput{}
	resp.Body.Status = "refresh completed"
	resp.Body.ItemsRefreshed = refreshed
	return resp, nil
}

// RegisterRefreshRoutes registers the refresh trigger endpoint with the
// Huma API.
func RegisterRefreshRoutes(api huma.API, h *RefreshHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-refresh",
		Method:      http.MethodPost,
		Path:        "/api/v1/refresh",
		Summary:     "Trigger a collection refresh",
		Description: "Re-estimates every tracked item from fresh marketplace samples and records value snapshots.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Refresh)
}
