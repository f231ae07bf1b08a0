package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jcloud242/resale-radar/internal/store"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// HistoryHandler serves the user's search history.
type HistoryHandler struct {
	store        store.Store
	defaultLimit int
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(s store.Store, defaultLimit int) *HistoryHandler {
	if defaultLimit <= 0 {
		defaultLimit = 100
	}
	return &HistoryHandler{store: s, defaultLimit: defaultLimit}
}

// List handles GET /api/v1/history.
//
// @Summary List search history
// @Description Returns recent searches, newest first.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} domain.SearchRecord
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/history [get]
func (h *HistoryHandler) List(c echo.Context) error {
	limit := h.defaultLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}

	records, err := h.store.ListSearchHistory(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing search history: " + err.Error(),
		})
	}

	if records == nil {
		records = []domain.SearchRecord{}
	}

	return c.JSON(http.StatusOK, records)
}

type clearHistoryResponse struct {
	Removed int `json:"removed" example:"12"`
}

// Clear handles DELETE /api/v1/history.
//
// @Summary Clear search history
// @Description Deletes all search history entries and returns how many were removed.
// @Tags history
// @Produce json
// @Success 200 {object} clearHistoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/history [delete]
func (h *HistoryHandler) Clear(c echo.Context) error {
	removed, err := h.store.ClearSearchHistory(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "clearing search history: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, clearHistoryResponse{Removed: removed})
}
