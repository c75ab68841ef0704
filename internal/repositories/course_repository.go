package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/skillsphere/backend/internal/models"
)

// CourseFilter holds the criteria for listing courses. Zero-valued fields
// are not applied.
type CourseFilter struct {
	InstructorID *int
	Status       *models.CourseStatus
	CategoryIDs  []int
	Search       string
	IsFree       *bool
	Sort         string
	Page         int
	Count        int
}

// sortColumns maps accepted sort keys to ORDER BY clauses. A leading "-"
// requests descending order.
var sortColumns = map[string]string{
	"created_at": "c.created_at",
	"price":      "c.price",
	"title":      "c.title",
}

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetByID retrieves a bare course row by its ID
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	query := `
		SELECT id, instructor_id, category_id, title, description, syllabus,
		       price, thumbnail_url, status, admin_comment, created_at, updated_at
		FROM courses
		WHERE id = ?
	`

	var course models.Course
	var categoryID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID,
		&course.InstructorID,
		&categoryID,
		&course.Title,
		&course.Description,
		&course.Syllabus,
		&course.Price,
		&course.ThumbnailURL,
		&course.Status,
		&course.AdminComment,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course not found")
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	if categoryID.Valid {
		cid := int(categoryID.Int64)
		course.CategoryID = &cid
	}

	return &course, nil
}

// GetDetail retrieves a course with its instructor, category and derived
// counters. Lessons are not loaded here.
func (r *courseRepository) GetDetail(ctx context.Context, id int) (*models.CourseDetail, error) {
	query := `
		SELECT
			c.id, c.instructor_id, u.full_name, c.category_id, cat.name,
			c.title, c.description, c.syllabus, c.price, c.thumbnail_url,
			c.status, c.admin_comment, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM lessons l WHERE l.course_id = c.id) AS lesson_count,
			(SELECT COALESCE(SUM(l.duration), 0) FROM lessons l WHERE l.course_id = c.id) AS total_duration,
			(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS enrollment_count
		FROM courses c
		JOIN users u ON u.id = c.instructor_id
		LEFT JOIN categories cat ON cat.id = c.category_id
		WHERE c.id = ?
	`

	var detail models.CourseDetail
	var categoryID sql.NullInt64
	var categoryName sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.InstructorID,
		&detail.InstructorName,
		&categoryID,
		&categoryName,
		&detail.Title,
		&detail.Description,
		&detail.Syllabus,
		&detail.Price,
		&detail.ThumbnailURL,
		&detail.Status,
		&detail.AdminComment,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.LessonCount,
		&detail.TotalDuration,
		&detail.EnrollmentCount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course not found")
		}
		return nil, fmt.Errorf("failed to get course detail: %w", err)
	}

	if categoryID.Valid {
		cid := int(categoryID.Int64)
		detail.CategoryID = &cid
	}
	if categoryName.Valid {
		detail.CategoryName = &categoryName.String
	}
	detail.IsFree = detail.Price == 0

	return &detail, nil
}

// GetList retrieves courses matching the filter with derived counters
func (r *courseRepository) GetList(ctx context.Context, filter CourseFilter) ([]models.CourseListItem, error) {
	var conditions []string
	var args []interface{}

	if filter.InstructorID != nil {
		conditions = append(conditions, "c.instructor_id = ?")
		args = append(args, *filter.InstructorID)
	}
	if filter.Status != nil {
		conditions = append(conditions, "c.status = ?")
		args = append(args, string(*filter.Status))
	}
	if len(filter.CategoryIDs) > 0 {
		placeholders := make([]string, len(filter.CategoryIDs))
		for i, id := range filter.CategoryIDs {
			placeholders[i] = "?"
			args = append(args, id)
		}
		conditions = append(conditions, fmt.Sprintf("c.category_id IN (%s)", strings.Join(placeholders, ", ")))
	}
	if filter.Search != "" {
		conditions = append(conditions, "(c.title LIKE ? OR c.description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	if filter.IsFree != nil {
		if *filter.IsFree {
			conditions = append(conditions, "c.price = 0")
		} else {
			conditions = append(conditions, "c.price <> 0")
		}
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	count := filter.Count
	if count < 1 {
		count = 20
	}
	args = append(args, count, (page-1)*count)

	query := fmt.Sprintf(`
		SELECT
			c.id, c.title, c.description, u.full_name, cat.name,
			c.price, c.thumbnail_url, c.status, c.created_at,
			(SELECT COUNT(*) FROM lessons l WHERE l.course_id = c.id) AS lesson_count,
			(SELECT COALESCE(SUM(l.duration), 0) FROM lessons l WHERE l.course_id = c.id) AS total_duration,
			(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS enrollment_count
		FROM courses c
		JOIN users u ON u.id = c.instructor_id
		LEFT JOIN categories cat ON cat.id = c.category_id
		%s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, whereClause, orderByClause(filter.Sort))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.CourseListItem
	for rows.Next() {
		var course models.CourseListItem
		var categoryName sql.NullString
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.InstructorName,
			&categoryName,
			&course.Price,
			&course.ThumbnailURL,
			&course.Status,
			&course.CreatedAt,
			&course.LessonCount,
			&course.TotalDuration,
			&course.EnrollmentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		if categoryName.Valid {
			course.CategoryName = &categoryName.String
		}
		course.IsFree = course.Price == 0
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// orderByClause resolves a sort key into a whitelisted ORDER BY clause.
// Unknown keys fall back to newest first.
func orderByClause(sort string) string {
	direction := "ASC"
	key := sort
	if strings.HasPrefix(key, "-") {
		direction = "DESC"
		key = key[1:]
	}
	column, ok := sortColumns[key]
	if !ok {
		return "c.created_at DESC"
	}
	return column + " " + direction
}

// Create creates a course and its lessons in a single transaction
func (r *courseRepository) Create(ctx context.Context, course *models.Course, lessons []models.Lesson) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO courses (instructor_id, category_id, title, description, syllabus, price, thumbnail_url, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		course.InstructorID,
		course.CategoryID,
		course.Title,
		course.Description,
		course.Syllabus,
		course.Price,
		course.ThumbnailURL,
		string(course.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	course.ID = int(id)

	for i := range lessons {
		lessons[i].CourseID = course.ID
		if err := insertLesson(ctx, tx, &lessons[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Update updates a course's editable fields. When replaceLessons is true the
// course's lesson set is dropped and recreated from lessons in the same
// transaction. Returns false when the course is not currently a draft, so a
// concurrent submit cannot be overwritten.
func (r *courseRepository) Update(ctx context.Context, course *models.Course, lessons []models.Lesson, replaceLessons bool) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE courses
		SET title = ?, description = ?, syllabus = ?, category_id = ?, price = ?, thumbnail_url = ?, updated_at = NOW()
		WHERE id = ? AND status = 'DRAFT'
	`

	result, err := tx.ExecContext(ctx, query,
		course.Title,
		course.Description,
		course.Syllabus,
		course.CategoryID,
		course.Price,
		course.ThumbnailURL,
		course.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	if replaceLessons {
		_, err := tx.ExecContext(ctx, "DELETE FROM lessons WHERE course_id = ?", course.ID)
		if err != nil {
			return false, fmt.Errorf("failed to delete lessons: %w", err)
		}
		for i := range lessons {
			lessons[i].CourseID = course.ID
			if err := insertLesson(ctx, tx, &lessons[i]); err != nil {
				return false, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

// Delete deletes a course; lessons and enrollments go with it via cascade.
// Returns false when the course is not currently a draft.
func (r *courseRepository) Delete(ctx context.Context, id int) (bool, error) {
	query := "DELETE FROM courses WHERE id = ? AND status = 'DRAFT'"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// SubmitForReview moves a draft course to pending. Returns false when the
// course is not currently a draft, so concurrent submits cannot race.
func (r *courseRepository) SubmitForReview(ctx context.Context, id int) (bool, error) {
	query := "UPDATE courses SET status = 'PENDING', updated_at = NOW() WHERE id = ? AND status = 'DRAFT'"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to submit course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// UpdateReviewStatus resolves a pending course to the given status. Returns
// false when the course is not currently pending, so only one concurrent
// review decision can win. A decision without a comment leaves the stored
// comment untouched.
func (r *courseRepository) UpdateReviewStatus(ctx context.Context, id int, status models.CourseStatus, adminComment string) (bool, error) {
	query := "UPDATE courses SET status = ?, admin_comment = ?, updated_at = NOW() WHERE id = ? AND status = 'PENDING'"
	args := []interface{}{string(status), adminComment, id}
	if adminComment == "" {
		query = "UPDATE courses SET status = ?, updated_at = NOW() WHERE id = ? AND status = 'PENDING'"
		args = []interface{}{string(status), id}
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update course status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetAdminStats retrieves platform-wide course statistics
func (r *courseRepository) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_courses,
			COUNT(CASE WHEN status = 'PENDING' THEN 1 END) AS pending_courses,
			COUNT(CASE WHEN status = 'APPROVED' THEN 1 END) AS approved_courses,
			COUNT(CASE WHEN status = 'REJECTED' THEN 1 END) AS rejected_courses,
			COUNT(DISTINCT instructor_id) AS total_instructors
		FROM courses
	`

	var stats models.AdminStats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalCourses,
		&stats.PendingCourses,
		&stats.ApprovedCourses,
		&stats.RejectedCourses,
		&stats.TotalInstructors,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin stats: %w", err)
	}

	return &stats, nil
}

// GetInstructorStats retrieves course statistics for one instructor
func (r *courseRepository) GetInstructorStats(ctx context.Context, instructorID int) (*models.InstructorStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_courses,
			COUNT(CASE WHEN status = 'DRAFT' THEN 1 END) AS draft_courses,
			COUNT(CASE WHEN status = 'PENDING' THEN 1 END) AS pending_courses,
			COUNT(CASE WHEN status = 'APPROVED' THEN 1 END) AS approved_courses,
			COUNT(CASE WHEN status = 'REJECTED' THEN 1 END) AS rejected_courses
		FROM courses
		WHERE instructor_id = ?
	`

	var stats models.InstructorStats
	err := r.db.QueryRowContext(ctx, query, instructorID).Scan(
		&stats.TotalCourses,
		&stats.DraftCourses,
		&stats.PendingCourses,
		&stats.ApprovedCourses,
		&stats.RejectedCourses,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get instructor stats: %w", err)
	}

	return &stats, nil
}
