package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/skillsphere/backend/internal/models"
	"github.com/skillsphere/backend/internal/repositories"
)

// mockReviewCourseRepository is a mock implementation of ReviewCourseRepository
type mockReviewCourseRepository struct {
	course     *models.Course
	detail     *models.CourseDetail
	courses    []models.CourseListItem
	err        error
	updated    bool
	updateErr  error
	lastFilter repositories.CourseFilter
}

func (m *mockReviewCourseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.course, nil
}

func (m *mockReviewCourseRepository) GetDetail(ctx context.Context, id int) (*models.CourseDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.detail, nil
}

func (m *mockReviewCourseRepository) GetList(ctx context.Context, filter repositories.CourseFilter) ([]models.CourseListItem, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func (m *mockReviewCourseRepository) UpdateReviewStatus(ctx context.Context, id int, status models.CourseStatus, adminComment string) (bool, error) {
	if m.updateErr != nil {
		return false, m.updateErr
	}
	return m.updated, nil
}

// mockUserRepository is a mock implementation of ReviewUserRepository
type mockUserRepository struct {
	user *models.User
	err  error
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

// sentMessage captures one notifier delivery
type sentMessage struct {
	to      string
	subject string
	body    string
}

// mockNotifier is a mock implementation of ReviewNotifier
type mockNotifier struct {
	mu   sync.Mutex
	err  error
	sent []sentMessage
}

func (m *mockNotifier) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{to: to, subject: subject, body: body})
	return nil
}

func (m *mockNotifier) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *mockNotifier) lastSent() sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

func pendingCourse() *models.Course {
	return &models.Course{
		ID:           1,
		InstructorID: 7,
		Title:        "Go Basics",
		Status:       models.CourseStatusPending,
	}
}

func instructorUser() *models.User {
	return &models.User{
		ID:       7,
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Role:     models.RoleInstructor,
	}
}

func TestReviewService_ReviewCourse_Validation(t *testing.T) {
	tests := []struct {
		name         string
		req          *models.ReviewCourseRequest
		fieldWithErr string
	}{
		{
			name:         "invalid target status",
			req:          &models.ReviewCourseRequest{Status: models.CourseStatusDraft},
			fieldWithErr: "status",
		},
		{
			name:         "rejection without comment",
			req:          &models.ReviewCourseRequest{Status: models.CourseStatusRejected},
			fieldWithErr: "adminComment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockReviewCourseRepository{course: pendingCourse(), updated: true}
			notifier := &mockNotifier{}
			service := NewReviewService(repo, &mockLessonReader{}, &mockUserRepository{user: instructorUser()}, notifier, zap.NewNop())

			err := service.ReviewCourse(context.Background(), 1, tt.req)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tt.fieldWithErr)
			assert.Equal(t, 0, notifier.sentCount())
		})
	}
}

func TestReviewService_ReviewCourse_Approve(t *testing.T) {
	repo := &mockReviewCourseRepository{course: pendingCourse(), updated: true}
	notifier := &mockNotifier{}
	service := NewReviewService(repo, &mockLessonReader{}, &mockUserRepository{user: instructorUser()}, notifier, zap.NewNop())

	err := service.ReviewCourse(context.Background(), 1, &models.ReviewCourseRequest{
		Status: models.CourseStatusApproved,
	})

	assert.NoError(t, err)
	assert.Eventually(t, func() bool {
		return notifier.sentCount() == 1
	}, time.Second, 10*time.Millisecond)

	msg := notifier.lastSent()
	assert.Equal(t, "jane@example.com", msg.to)
	assert.Equal(t, "Course Approved - SkillSphere", msg.subject)
	assert.Contains(t, msg.body, "Go Basics")
}

func TestReviewService_ReviewCourse_Reject(t *testing.T) {
	repo := &mockReviewCourseRepository{course: pendingCourse(), updated: true}
	notifier := &mockNotifier{}
	service := NewReviewService(repo, &mockLessonReader{}, &mockUserRepository{user: instructorUser()}, notifier, zap.NewNop())

	err := service.ReviewCourse(context.Background(), 1, &models.ReviewCourseRequest{
		Status:       models.CourseStatusRejected,
		AdminComment: "thumbnail is unreadable",
	})

	assert.NoError(t, err)
	assert.Eventually(t, func() bool {
		return notifier.sentCount() == 1
	}, time.Second, 10*time.Millisecond)

	msg := notifier.lastSent()
	assert.Equal(t, "Course Rejected - SkillSphere", msg.subject)
	assert.Contains(t, msg.body, "thumbnail is unreadable")
}

func TestReviewService_ReviewCourse_NotPending(t *testing.T) {
	// The guarded update reports no pending row, either because the course
	// was never submitted or a concurrent review already resolved it
	repo := &mockReviewCourseRepository{course: pendingCourse(), updated: false}
	notifier := &mockNotifier{}
	service := NewReviewService(repo, &mockLessonReader{}, &mockUserRepository{user: instructorUser()}, notifier, zap.NewNop())

	err := service.ReviewCourse(context.Background(), 1, &models.ReviewCourseRequest{
		Status: models.CourseStatusApproved,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "pending")
	assert.Equal(t, 0, notifier.sentCount())
}

func TestReviewService_ReviewCourse_NotifierFailureIsSwallowed(t *testing.T) {
	repo := &mockReviewCourseRepository{course: pendingCourse(), updated: true}
	notifier := &mockNotifier{err: errors.New("smtp unavailable")}
	service := NewReviewService(repo, &mockLessonReader{}, &mockUserRepository{user: instructorUser()}, notifier, zap.NewNop())

	err := service.ReviewCourse(context.Background(), 1, &models.ReviewCourseRequest{
		Status: models.CourseStatusApproved,
	})

	// The review succeeds even though the notification cannot be delivered
	assert.NoError(t, err)
}

func TestReviewService_GetPendingCourses(t *testing.T) {
	repo := &mockReviewCourseRepository{courses: []models.CourseListItem{{ID: 1}}}
	service := NewReviewService(repo, &mockLessonReader{}, &mockUserRepository{}, &mockNotifier{}, zap.NewNop())

	categoryID := 3
	courses, err := service.GetPendingCourses(context.Background(), models.PendingQuery{
		CategoryID: &categoryID,
	})

	assert.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, models.CourseStatusPending, *repo.lastFilter.Status)
	assert.Equal(t, []int{3}, repo.lastFilter.CategoryIDs)
	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, 10, repo.lastFilter.Count)
}

func TestReviewService_GetCourse(t *testing.T) {
	t.Run("success in any status", func(t *testing.T) {
		repo := &mockReviewCourseRepository{detail: &models.CourseDetail{ID: 1, Status: models.CourseStatusDraft}}
		lessons := &mockLessonReader{lessons: []models.Lesson{{ID: 1}}}
		service := NewReviewService(repo, lessons, &mockUserRepository{}, &mockNotifier{}, zap.NewNop())

		detail, err := service.GetCourse(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, models.CourseStatusDraft, detail.Status)
		assert.Len(t, detail.Lessons, 1)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockReviewCourseRepository{err: errors.New("course not found")}
		service := NewReviewService(repo, &mockLessonReader{}, &mockUserRepository{}, &mockNotifier{}, zap.NewNop())

		_, err := service.GetCourse(context.Background(), 1)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
