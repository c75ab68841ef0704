package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skillsphere/backend/internal/models"
)

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) *categoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// GetAll retrieves all categories with their approved course counts
func (r *categoryRepository) GetAll(ctx context.Context) ([]models.CategoryListItem, error) {
	query := `
		SELECT
			c.id,
			c.name,
			c.description,
			(SELECT COUNT(*) FROM courses co WHERE co.category_id = c.id AND co.status = 'APPROVED') AS course_count,
			c.created_at
		FROM categories c
		ORDER BY c.name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.CategoryListItem
	for rows.Next() {
		var category models.CategoryListItem
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.CourseCount,
			&category.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return categories, nil
}

// ExistsByID checks if a category with the given ID exists
func (r *categoryRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE id = ?)"
	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return exists, nil
}

// ExistsByName checks if a category with the given name exists
func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE name = ?)"
	var exists bool
	err := r.db.QueryRowContext(ctx, query, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return exists, nil
}

// Create creates a new category
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name, description)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, category.Name, category.Description)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	category.ID = int(id)
	return nil
}
