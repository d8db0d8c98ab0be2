package service

import (
	"strings"

	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/repository"
)

// CategoryService serves the category tree.
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryDetail is a category with its product count.
type CategoryDetail struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// List returns all categories ordered for display.
func (s *CategoryService) List() ([]CategoryDetail, error) {
	categories, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	details := make([]CategoryDetail, 0, len(categories))
	for _, category := range categories {
		count, err := s.repo.CountProducts(category.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, CategoryDetail{Category: category, ProductCount: count})
	}
	return details, nil
}

// GetBySlug fetches a category by slug.
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrNotFound
	}
	category, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}
