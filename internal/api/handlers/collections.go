package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jcloud242/resale-radar/internal/store"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// CollectionHandler handles Collection CRUD operations.
type CollectionHandler struct {
	store store.Store
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(s store.Store) *CollectionHandler {
	return &CollectionHandler{store: s}
}

// List handles GET /api/v1/collections.
//
// @Summary List collections
// @Description Returns all collections ordered by name.
// @Tags collections
// @Produce json
// @Success 200 {array} domain.Collection
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/collections [get]
func (h *CollectionHandler) List(c echo.Context) error {
	collections, err := h.store.ListCollections(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing collections: " + err.Error(),
		})
	}

	if collections == nil {
		collections = []domain.Collection{}
	}

	return c.JSON(http.StatusOK, collections)
}

// Get handles GET /api/v1/collections/:id.
//
// @Summary Get a collection by ID
// @Description Returns a single collection by its UUID.
// @Tags collections
// @Produce json
// @Param id path string true "Collection UUID"
// @Success 200 {object} domain.Collection
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/collections/{id} [get]
func (h *CollectionHandler) Get(c echo.Context) error {
	id := c.Param("id")

	col, err := h.store.GetCollection(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "collection not found",
		})
	}

	return c.JSON(http.StatusOK, col)
}

// Create handles POST /api/v1/collections.
//
// @Summary Create a collection
// @Description Creates a new named collection.
// @Tags collections
// @Accept json
// @Produce json
// @Param collection body domain.Collection true "Collection to create"
// @Success 201 {object} domain.Collection
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/collections [post]
func (h *CollectionHandler) Create(c echo.Context) error {
	var col domain.Collection
	if err := c.Bind(&col); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if col.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "name is required",
		})
	}

	if err := h.store.CreateCollection(c.Request().Context(), &col); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating collection: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, col)
}

type renameCollectionRequest struct {
	Name string `json:"name" example:"GameCube Shelf"`
}

// Rename handles PUT /api/v1/collections/:id.
//
// @Summary Rename a collection
// @Description Renames an existing collection by its UUID.
// @Tags collections
// @Accept json
// @Produce json
// @Param id path string true "Collection UUID"
// @Param body body renameCollectionRequest true "New name"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/collections/{id} [put]
func (h *CollectionHandler) Rename(c echo.Context) error {
	id := c.Param("id")

	var req renameCollectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "name is required",
		})
	}

	if err := h.store.RenameCollection(c.Request().Context(), id, req.Name); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "collection not found",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "renamed",
	})
}

// Delete handles DELETE /api/v1/collections/:id.
//
// @Summary Delete a collection
// @Description Deletes a collection and all of its items by its UUID.
// @Tags collections
// @Param id path string true "Collection UUID"
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/collections/{id} [delete]
func (h *CollectionHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.DeleteCollection(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting collection: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}
