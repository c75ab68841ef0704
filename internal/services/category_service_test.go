package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillsphere/backend/internal/models"
)

// mockCategoryRepository is a mock implementation of CategoryRepository
type mockCategoryRepository struct {
	categories   []models.CategoryListItem
	existsByName bool
	err          error
	createErr    error
}

func (m *mockCategoryRepository) GetAll(ctx context.Context) ([]models.CategoryListItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *mockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.existsByName, nil
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if m.createErr != nil {
		return m.createErr
	}
	category.ID = 1
	return nil
}

func TestCategoryService_GetCategories(t *testing.T) {
	repo := &mockCategoryRepository{categories: []models.CategoryListItem{
		{ID: 1, Name: "Programming", CourseCount: 4},
	}}
	service := NewCategoryService(repo)

	categories, err := service.GetCategories(context.Background())

	assert.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, 4, categories[0].CourseCount)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.CreateCategoryRequest
		mockRepo      *mockCategoryRepository
		expectedError bool
		errorContains string
		fieldWithErr  string
	}{
		{
			name:     "success",
			req:      &models.CreateCategoryRequest{Name: "Programming", Description: "Code things"},
			mockRepo: &mockCategoryRepository{},
		},
		{
			name:          "missing name",
			req:           &models.CreateCategoryRequest{},
			mockRepo:      &mockCategoryRepository{},
			expectedError: true,
			fieldWithErr:  "name",
		},
		{
			name:          "duplicate name",
			req:           &models.CreateCategoryRequest{Name: "Programming"},
			mockRepo:      &mockCategoryRepository{existsByName: true},
			expectedError: true,
			fieldWithErr:  "name",
		},
		{
			name:          "repository error",
			req:           &models.CreateCategoryRequest{Name: "Programming"},
			mockRepo:      &mockCategoryRepository{createErr: errors.New("database error")},
			expectedError: true,
			errorContains: "database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCategoryService(tt.mockRepo)

			id, err := service.CreateCategory(context.Background(), tt.req)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				if tt.fieldWithErr != "" {
					var validationErr *ValidationError
					assert.ErrorAs(t, err, &validationErr)
					assert.Contains(t, validationErr.Fields, tt.fieldWithErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, id)
			}
		})
	}
}
