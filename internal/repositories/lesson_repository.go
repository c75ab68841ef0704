package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skillsphere/backend/internal/models"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// insertLesson inserts one lesson row, used both for standalone creates and
// inside course transactions.
func insertLesson(ctx context.Context, db execer, lesson *models.Lesson) error {
	query := "INSERT INTO lessons (course_id, title, description, `order`, duration, media_type, video_url, external_link) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"

	result, err := db.ExecContext(ctx, query,
		lesson.CourseID,
		lesson.Title,
		lesson.Description,
		lesson.Order,
		lesson.Duration,
		string(lesson.MediaType),
		lesson.VideoURL,
		lesson.ExternalLink,
	)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	lesson.ID = int(id)
	return nil
}

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetByCourseID retrieves all lessons of a course ordered by their position
func (r *lessonRepository) GetByCourseID(ctx context.Context, courseID int) ([]models.Lesson, error) {
	query := "SELECT id, course_id, title, description, `order`, duration, media_type, video_url, external_link, created_at, updated_at FROM lessons WHERE course_id = ? ORDER BY `order`"

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.CourseID,
			&lesson.Title,
			&lesson.Description,
			&lesson.Order,
			&lesson.Duration,
			&lesson.MediaType,
			&lesson.VideoURL,
			&lesson.ExternalLink,
			&lesson.CreatedAt,
			&lesson.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// GetByID retrieves a lesson by its ID
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	query := "SELECT id, course_id, title, description, `order`, duration, media_type, video_url, external_link, created_at, updated_at FROM lessons WHERE id = ?"

	var lesson models.Lesson
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&lesson.Description,
		&lesson.Order,
		&lesson.Duration,
		&lesson.MediaType,
		&lesson.VideoURL,
		&lesson.ExternalLink,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("lesson not found")
		}
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	return &lesson, nil
}

// ExistsByOrderInCourse checks whether another lesson of the course already
// occupies the given position. excludeID is skipped, pass 0 on create.
func (r *lessonRepository) ExistsByOrderInCourse(ctx context.Context, courseID, order, excludeID int) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM lessons WHERE course_id = ? AND `order` = ? AND id <> ?)"

	var exists bool
	err := r.db.QueryRowContext(ctx, query, courseID, order, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check lesson order: %w", err)
	}

	return exists, nil
}

// Create creates a new lesson
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	return insertLesson(ctx, r.db, lesson)
}

// Update updates a lesson's editable fields
func (r *lessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	query := "UPDATE lessons SET title = ?, description = ?, `order` = ?, duration = ?, media_type = ?, video_url = ?, external_link = ?, updated_at = NOW() WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query,
		lesson.Title,
		lesson.Description,
		lesson.Order,
		lesson.Duration,
		string(lesson.MediaType),
		lesson.VideoURL,
		lesson.ExternalLink,
		lesson.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lesson not found")
	}

	return nil
}

// Delete deletes a lesson
func (r *lessonRepository) Delete(ctx context.Context, id int) error {
	query := "DELETE FROM lessons WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lesson not found")
	}

	return nil
}
