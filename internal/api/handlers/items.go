package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jcloud242/resale-radar/internal/store"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// ItemHandler handles tracked item CRUD and value history.
type ItemHandler struct {
	store store.Store
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(s store.Store) *ItemHandler {
	return &ItemHandler{store: s}
}

// itemListResponse is the paginated item list body.
type itemListResponse struct {
	Items []domain.Item `json:"items"`
	Total int           `json:"total"`
}

// List handles GET /api/v1/items.
//
// @Summary List tracked items
// @Description Returns tracked items with optional filters and pagination.
// @Tags items
// @Produce json
// @Param collection_id query string false "Filter by collection UUID"
// @Param category query string false "Filter by category" Enums(video_game, console, accessory, media, other)
// @Param platform query string false "Filter by platform"
// @Param confidence query string false "Filter by last estimate confidence" Enums(low, medium, high)
// @Param limit query int false "Page size (default 50, max 500)"
// @Param offset query int false "Page offset"
// @Param order_by query string false "Sort order" Enums(title, last_avg_active, last_estimated_at)
// @Success 200 {object} itemListResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	q := &store.ItemQuery{
		OrderBy: c.QueryParam("order_by"),
	}

	if v := c.QueryParam("collection_id"); v != "" {
		q.CollectionID = &v
	}
	if v := c.QueryParam("category"); v != "" {
		q.Category = &v
	}
	if v := c.QueryParam("platform"); v != "" {
		q.Platform = &v
	}
	if v := c.QueryParam("confidence"); v != "" {
		q.Confidence = &v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		q.Limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		q.Offset = v
	}

	items, total, err := h.store.ListItems(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing items: " + err.Error(),
		})
	}

	if items == nil {
		items = []domain.Item{}
	}

	return c.JSON(http.StatusOK, itemListResponse{Items: items, Total: total})
}

// Get handles GET /api/v1/items/:id.
//
// @Summary Get a tracked item by ID
// @Description Returns a single tracked item by its UUID.
// @Tags items
// @Produce json
// @Param id path string true "Item UUID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	id := c.Param("id")

	it, err := h.store.GetItem(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "item not found",
		})
	}

	return c.JSON(http.StatusOK, it)
}

// Create handles POST /api/v1/collections/:id/items.
//
// @Summary Add an item to a collection
// @Description Creates a new tracked item inside the collection.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Collection UUID"
// @Param item body domain.Item true "Item to create"
// @Success 201 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/collections/{id}/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var it domain.Item
	if err := c.Bind(&it); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	it.CollectionID = c.Param("id")
	if it.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "title is required",
		})
	}
	if it.Category == "" {
		it.Category = domain.CategoryOther
	}

	if err := h.store.CreateItem(c.Request().Context(), &it); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating item: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, it)
}

// Update handles PUT /api/v1/items/:id.
//
// @Summary Update a tracked item
// @Description Updates an existing tracked item by its UUID.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item UUID"
// @Param item body domain.Item true "Updated item"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var it domain.Item
	if err := c.Bind(&it); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	it.ID = id
	if err := h.store.UpdateItem(c.Request().Context(), &it); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "item not found",
		})
	}

	return c.JSON(http.StatusOK, it)
}

// Delete handles DELETE /api/v1/items/:id.
//
// @Summary Delete a tracked item
// @Description Deletes a tracked item and its value history by its UUID.
// @Tags items
// @Param id path string true "Item UUID"
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.DeleteItem(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting item: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}

const defaultSnapshotLimit = 50

// Snapshots handles GET /api/v1/items/:id/snapshots.
//
// @Summary Get an item's value history
// @Description Returns recorded estimate snapshots for the item, newest first.
// @Tags items
// @Produce json
// @Param id path string true "Item UUID"
// @Param limit query int false "Maximum snapshots to return (default 50)"
// @Success 200 {array} domain.PriceSnapshot
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items/{id}/snapshots [get]
func (h *ItemHandler) Snapshots(c echo.Context) error {
	id := c.Param("id")

	limit := defaultSnapshotLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}

	snaps, err := h.store.ListSnapshots(c.Request().Context(), id, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing snapshots: " + err.Error(),
		})
	}

	if snaps == nil {
		snaps = []domain.PriceSnapshot{}
	}

	return c.JSON(http.StatusOK, snaps)
}
