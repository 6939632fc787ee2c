package services

import "cfcs/internal/models"

// categoryService serves the fixed category catalog.
type categoryService struct{}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService() CategoryServicer {
	return &categoryService{}
}

// ListCategories returns the catalog in form order. With a flow filter only
// that flow's categories are returned and the separator is left out.
func (s *categoryService) ListCategories(flow *models.Flow) []models.Category {
	all := models.Catalog()
	if flow == nil {
		return all
	}
	out := make([]models.Category, 0, len(all))
	for _, c := range all {
		if c.Flow == *flow {
			out = append(out, c)
		}
	}
	return out
}
