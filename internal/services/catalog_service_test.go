package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillsphere/backend/internal/models"
)

func TestCatalogService_GetCourses(t *testing.T) {
	repo := &mockCourseRepository{courses: []models.CourseListItem{{ID: 1}, {ID: 2}}}
	service := NewCatalogService(repo, &mockLessonReader{})

	isFree := true
	courses, err := service.GetCourses(context.Background(), models.CatalogQuery{
		Search:      "golang",
		CategoryIDs: []int{1, 2},
		IsFree:      &isFree,
	})

	assert.NoError(t, err)
	assert.Len(t, courses, 2)
	// Only approved courses ever reach the catalog
	assert.Equal(t, models.CourseStatusApproved, *repo.lastFilter.Status)
	assert.Equal(t, "golang", repo.lastFilter.Search)
	assert.Equal(t, []int{1, 2}, repo.lastFilter.CategoryIDs)
	assert.True(t, *repo.lastFilter.IsFree)
	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, 20, repo.lastFilter.Count)
}

func TestCatalogService_GetCourse(t *testing.T) {
	tests := []struct {
		name          string
		course        *models.Course
		principal     *models.Principal
		expectedError error
	}{
		{
			name:   "anonymous sees an approved course",
			course: &models.Course{ID: 1, InstructorID: 7, Status: models.CourseStatusApproved},
		},
		{
			name:          "anonymous cannot see a draft",
			course:        &models.Course{ID: 1, InstructorID: 7, Status: models.CourseStatusDraft},
			expectedError: ErrNotFound,
		},
		{
			name:      "owner sees their draft",
			course:    &models.Course{ID: 1, InstructorID: 7, Status: models.CourseStatusDraft},
			principal: &models.Principal{UserID: 7, Role: models.RoleInstructor},
		},
		{
			name:          "another instructor cannot see a pending course",
			course:        &models.Course{ID: 1, InstructorID: 7, Status: models.CourseStatusPending},
			principal:     &models.Principal{UserID: 8, Role: models.RoleInstructor},
			expectedError: ErrNotFound,
		},
		{
			name:      "admin sees a pending course",
			course:    &models.Course{ID: 1, InstructorID: 7, Status: models.CourseStatusPending},
			principal: &models.Principal{UserID: 2, Role: models.RoleAdmin},
		},
		{
			name:          "anonymous cannot see a rejected course",
			course:        &models.Course{ID: 1, InstructorID: 7, Status: models.CourseStatusRejected},
			expectedError: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCourseRepository{
				course: tt.course,
				detail: &models.CourseDetail{ID: 1, Title: "Go Basics"},
			}
			lessons := &mockLessonReader{lessons: []models.Lesson{{ID: 1}}}
			service := NewCatalogService(repo, lessons)

			detail, err := service.GetCourse(context.Background(), tt.principal, 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Go Basics", detail.Title)
				assert.Len(t, detail.Lessons, 1)
			}
		})
	}
}
