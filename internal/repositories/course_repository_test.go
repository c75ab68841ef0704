package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsphere/backend/internal/models"
)

// setupCourseTestRepository creates a course repository with a mock database
func setupCourseTestRepository(t *testing.T) (*courseRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCourseRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewCourseRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewCourseRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func courseColumns() []string {
	return []string{
		"id", "instructor_id", "category_id", "title", "description", "syllabus",
		"price", "thumbnail_url", "status", "admin_comment", "created_at", "updated_at",
	}
}

func TestCourseRepository_GetByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(courseColumns()).
					AddRow(1, 7, 2, "Go Basics", "Desc", "Syllabus", 49.99, "go.png", "DRAFT", "", now, now)
				mock.ExpectQuery(`SELECT.*FROM courses.*WHERE id = \?`).
					WithArgs(1).
					WillReturnRows(rows)
			},
		},
		{
			name: "success with null category",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(courseColumns()).
					AddRow(1, 7, nil, "Go Basics", "Desc", "Syllabus", 0.0, "", "DRAFT", "", now, now)
				mock.ExpectQuery(`SELECT.*FROM courses.*WHERE id = \?`).
					WithArgs(1).
					WillReturnRows(rows)
			},
		},
		{
			name: "course not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM courses.*WHERE id = \?`).
					WithArgs(1).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			errorContains: "course not found",
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM courses.*WHERE id = \?`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to get course",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			course, err := repo.GetByID(context.Background(), 1)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, course.ID)
				assert.Equal(t, 7, course.InstructorID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_GetList(t *testing.T) {
	listColumns := []string{
		"id", "title", "description", "full_name", "name",
		"price", "thumbnail_url", "status", "created_at",
		"lesson_count", "total_duration", "enrollment_count",
	}
	now := time.Now()
	status := models.CourseStatusApproved

	t.Run("free filter renders a zero price predicate", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		isFree := true
		rows := sqlmock.NewRows(listColumns).
			AddRow(1, "Go Basics", "Desc", "Jane Doe", nil, 0.0, "", "APPROVED", now, 3, 120, 10)
		mock.ExpectQuery(`SELECT.*FROM courses c.*WHERE c\.status = \? AND c\.price = 0.*ORDER BY c\.created_at DESC.*LIMIT \? OFFSET \?`).
			WithArgs("APPROVED", 20, 0).
			WillReturnRows(rows)

		courses, err := repo.GetList(context.Background(), CourseFilter{
			Status: &status,
			IsFree: &isFree,
			Page:   1,
			Count:  20,
		})

		assert.NoError(t, err)
		assert.Len(t, courses, 1)
		assert.True(t, courses[0].IsFree)
		assert.Nil(t, courses[0].CategoryName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("paid filter renders a nonzero price predicate", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		isFree := false
		rows := sqlmock.NewRows(listColumns).
			AddRow(1, "Go Basics", "Desc", "Jane Doe", "Programming", 49.99, "go.png", "APPROVED", now, 3, 120, 10)
		mock.ExpectQuery(`WHERE c\.status = \? AND c\.price <> 0`).
			WithArgs("APPROVED", 20, 0).
			WillReturnRows(rows)

		courses, err := repo.GetList(context.Background(), CourseFilter{
			Status: &status,
			IsFree: &isFree,
			Page:   1,
			Count:  20,
		})

		assert.NoError(t, err)
		assert.Len(t, courses, 1)
		assert.False(t, courses[0].IsFree)
		assert.Equal(t, "Programming", *courses[0].CategoryName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search matches title and description", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows(listColumns)
		mock.ExpectQuery(`WHERE c\.status = \? AND \(c\.title LIKE \? OR c\.description LIKE \?\)`).
			WithArgs("APPROVED", "%golang%", "%golang%", 20, 0).
			WillReturnRows(rows)

		courses, err := repo.GetList(context.Background(), CourseFilter{
			Status: &status,
			Search: "golang",
			Page:   1,
			Count:  20,
		})

		assert.NoError(t, err)
		assert.Empty(t, courses)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("category list uses IN with OR semantics", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows(listColumns)
		mock.ExpectQuery(`WHERE c\.status = \? AND c\.category_id IN \(\?, \?\)`).
			WithArgs("APPROVED", 1, 2, 20, 0).
			WillReturnRows(rows)

		_, err := repo.GetList(context.Background(), CourseFilter{
			Status:      &status,
			CategoryIDs: []int{1, 2},
			Page:        1,
			Count:       20,
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown sort key falls back to newest first", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows(listColumns)
		mock.ExpectQuery(`ORDER BY c\.created_at DESC`).
			WithArgs("APPROVED", 20, 0).
			WillReturnRows(rows)

		_, err := repo.GetList(context.Background(), CourseFilter{
			Status: &status,
			Sort:   "instructor_id; DROP TABLE courses",
			Page:   1,
			Count:  20,
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ascending price sort", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows(listColumns)
		mock.ExpectQuery(`ORDER BY c\.price ASC`).
			WithArgs("APPROVED", 20, 0).
			WillReturnRows(rows)

		_, err := repo.GetList(context.Background(), CourseFilter{
			Status: &status,
			Sort:   "price",
			Page:   1,
			Count:  20,
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCourseRepository_Create(t *testing.T) {
	t.Run("success with nested lessons", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO courses`).
			WithArgs(7, 2, "Go Basics", "Desc", "Syllabus", 49.99, "go.png", "DRAFT").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO lessons").
			WithArgs(1, "Intro", "", 1, 10, "DOCUMENT", "", "").
			WillReturnResult(sqlmock.NewResult(5, 1))
		mock.ExpectCommit()

		categoryID := 2
		course := &models.Course{
			InstructorID: 7,
			CategoryID:   &categoryID,
			Title:        "Go Basics",
			Description:  "Desc",
			Syllabus:     "Syllabus",
			Price:        49.99,
			ThumbnailURL: "go.png",
			Status:       models.CourseStatusDraft,
		}
		lessons := []models.Lesson{
			{Title: "Intro", Order: 1, Duration: 10, MediaType: models.MediaTypeDocument},
		}

		err := repo.Create(context.Background(), course, lessons)

		assert.NoError(t, err)
		assert.Equal(t, 1, course.ID)
		assert.Equal(t, 5, lessons[0].ID)
		assert.Equal(t, 1, lessons[0].CourseID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lesson insert failure rolls back", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO courses`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO lessons").
			WillReturnError(errors.New("duplicate entry"))
		mock.ExpectRollback()

		course := &models.Course{InstructorID: 7, Title: "Go Basics", Status: models.CourseStatusDraft}
		lessons := []models.Lesson{{Title: "Intro", Order: 1, MediaType: models.MediaTypeDocument}}

		err := repo.Create(context.Background(), course, lessons)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create lesson")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCourseRepository_Update(t *testing.T) {
	t.Run("replaces the lesson set in one transaction", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		// The status guard keeps the edit from clobbering a concurrent submit
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE courses.*SET title = \?.*WHERE id = \? AND status = 'DRAFT'`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM lessons WHERE course_id = \?`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("INSERT INTO lessons").
			WithArgs(1, "Intro", "", 1, 10, "DOCUMENT", "", "").
			WillReturnResult(sqlmock.NewResult(9, 1))
		mock.ExpectCommit()

		course := &models.Course{ID: 1, Title: "Go Basics v2"}
		lessons := []models.Lesson{{Title: "Intro", Order: 1, Duration: 10, MediaType: models.MediaTypeDocument}}

		updated, err := repo.Update(context.Background(), course, lessons, true)

		assert.NoError(t, err)
		assert.True(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("leaves lessons untouched when not replacing", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE courses.*WHERE id = \? AND status = 'DRAFT'`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		updated, err := repo.Update(context.Background(), &models.Course{ID: 1, Title: "Go Basics v2"}, nil, false)

		assert.NoError(t, err)
		assert.True(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-draft course rolls back without touching lessons", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE courses.*WHERE id = \? AND status = 'DRAFT'`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		lessons := []models.Lesson{{Title: "Intro", Order: 1, MediaType: models.MediaTypeDocument}}

		updated, err := repo.Update(context.Background(), &models.Course{ID: 99}, lessons, true)

		assert.NoError(t, err)
		assert.False(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCourseRepository_Delete(t *testing.T) {
	t.Run("draft course is deleted", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM courses WHERE id = \? AND status = 'DRAFT'`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.Delete(context.Background(), 1)

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-draft course is not touched", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM courses WHERE id = \? AND status = 'DRAFT'`).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.Delete(context.Background(), 99)

		assert.NoError(t, err)
		assert.False(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCourseRepository_SubmitForReview(t *testing.T) {
	t.Run("draft course is moved to pending", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		// The current status is part of the WHERE clause so two concurrent
		// submits cannot both win
		mock.ExpectExec(`UPDATE courses SET status = 'PENDING'.*WHERE id = \? AND status = 'DRAFT'`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		submitted, err := repo.SubmitForReview(context.Background(), 1)

		assert.NoError(t, err)
		assert.True(t, submitted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-draft course is not touched", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE courses SET status = 'PENDING'.*WHERE id = \? AND status = 'DRAFT'`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 0))

		submitted, err := repo.SubmitForReview(context.Background(), 1)

		assert.NoError(t, err)
		assert.False(t, submitted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCourseRepository_UpdateReviewStatus(t *testing.T) {
	t.Run("pending course is resolved", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE courses SET status = \?, admin_comment = \?.*WHERE id = \? AND status = 'PENDING'`).
			WithArgs("REJECTED", "needs a thumbnail", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := repo.UpdateReviewStatus(context.Background(), 1, models.CourseStatusRejected, "needs a thumbnail")

		assert.NoError(t, err)
		assert.True(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("approval without a comment leaves the stored comment alone", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE courses SET status = \?, updated_at = NOW\(\) WHERE id = \? AND status = 'PENDING'`).
			WithArgs("APPROVED", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := repo.UpdateReviewStatus(context.Background(), 1, models.CourseStatusApproved, "")

		assert.NoError(t, err)
		assert.True(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second concurrent decision loses", func(t *testing.T) {
		repo, mock, cleanup := setupCourseTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE courses SET status = \?, updated_at = NOW\(\) WHERE id = \? AND status = 'PENDING'`).
			WithArgs("APPROVED", 1).
			WillReturnResult(sqlmock.NewResult(0, 0))

		updated, err := repo.UpdateReviewStatus(context.Background(), 1, models.CourseStatusApproved, "")

		assert.NoError(t, err)
		assert.False(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCourseRepository_GetAdminStats(t *testing.T) {
	repo, mock, cleanup := setupCourseTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"total_courses", "pending_courses", "approved_courses", "rejected_courses", "total_instructors"}).
		AddRow(10, 2, 6, 1, 4)
	mock.ExpectQuery(`SELECT.*COUNT\(\*\).*FROM courses`).
		WillReturnRows(rows)

	stats, err := repo.GetAdminStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 10, stats.TotalCourses)
	assert.Equal(t, 2, stats.PendingCourses)
	assert.Equal(t, 6, stats.ApprovedCourses)
	assert.Equal(t, 1, stats.RejectedCourses)
	assert.Equal(t, 4, stats.TotalInstructors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_GetInstructorStats(t *testing.T) {
	repo, mock, cleanup := setupCourseTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"total_courses", "draft_courses", "pending_courses", "approved_courses", "rejected_courses"}).
		AddRow(5, 2, 1, 1, 1)
	mock.ExpectQuery(`SELECT.*FROM courses.*WHERE instructor_id = \?`).
		WithArgs(7).
		WillReturnRows(rows)

	stats, err := repo.GetInstructorStats(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 5, stats.TotalCourses)
	assert.Equal(t, 2, stats.DraftCourses)
	assert.NoError(t, mock.ExpectationsWereMet())
}
