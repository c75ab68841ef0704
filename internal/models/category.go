package models

import "time"

// Category represents a course category
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryListItem represents a category in list responses
//
// CourseCount is the number of approved courses in the category, computed at
// read time.
type CategoryListItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CourseCount int       `json:"courseCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
