package services

import (
	"context"

	"github.com/skillsphere/backend/internal/models"
)

// CategoryRepository defines methods for category data access
type CategoryRepository interface {
	// GetAll retrieves all categories with their approved course counts
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of categories and an error if any.
	GetAll(ctx context.Context) ([]models.CategoryListItem, error)
	// ExistsByName checks if a category with the given name exists
	//
	// "ctx" is the context for the request.
	// "name" is the name of the category.
	//
	// Returns a boolean and an error if any.
	ExistsByName(ctx context.Context, name string) (bool, error)
	// Create creates a new category
	//
	// "ctx" is the context for the request.
	// "category" is the category to create.
	//
	// Returns an error if any.
	Create(ctx context.Context, category *models.Category) error
}

type categoryService struct {
	categoryRepo CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo CategoryRepository) *categoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

// GetCategories retrieves all categories
func (s *categoryService) GetCategories(ctx context.Context) ([]models.CategoryListItem, error) {
	return s.categoryRepo.GetAll(ctx)
}

// CreateCategory creates a new category with a unique name
func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (int, error) {
	validationErr := NewValidationError()
	if req.Name == "" {
		validationErr.Add("name", "name is required")
	}
	if validationErr.HasErrors() {
		return 0, validationErr
	}

	exists, err := s.categoryRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return 0, err
	}
	if exists {
		validationErr.Add("name", "category with this name already exists")
		return 0, validationErr
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	err = s.categoryRepo.Create(ctx, category)
	if err != nil {
		return 0, err
	}

	return category.ID, nil
}
