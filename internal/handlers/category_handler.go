package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cfcs/internal/models"
	"cfcs/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryListResponse wraps the catalog.
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
}

// ListCategories returns the category catalog
// @Summary     List categories
// @Description Income types, the disabled separator, then expense types. Filtering by flow drops the separator.
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       flow query string false "Income or Expense"
// @Success     200 {object} CategoryListResponse
// @Failure     400 {object} ErrorResponse "Invalid flow"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	flow, err := parseFlow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, CategoryListResponse{Categories: h.categoryService.ListCategories(flow)})
}
