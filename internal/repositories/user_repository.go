package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skillsphere/backend/internal/models"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := "SELECT id, email, full_name, role FROM users WHERE id = ?"

	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.Role,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
