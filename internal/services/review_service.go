package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/skillsphere/backend/internal/models"
	"github.com/skillsphere/backend/internal/repositories"
)

// ReviewCourseRepository defines the course data access needed for admin review
type ReviewCourseRepository interface {
	// GetByID retrieves a course by ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course and an error if any.
	GetByID(ctx context.Context, id int) (*models.Course, error)
	// GetDetail retrieves a course with instructor, category and derived counters
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course detail and an error if any.
	GetDetail(ctx context.Context, id int) (*models.CourseDetail, error)
	// GetList retrieves courses matching the filter
	//
	// "ctx" is the context for the request.
	// "filter" is the listing criteria.
	//
	// Returns a list of courses and an error if any.
	GetList(ctx context.Context, filter repositories.CourseFilter) ([]models.CourseListItem, error)
	// UpdateReviewStatus resolves a pending course to the given status
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	// "status" is the resolved status.
	// "adminComment" is the reviewer's comment.
	//
	// Returns whether the course was pending at the point of the update and an error if any.
	UpdateReviewStatus(ctx context.Context, id int, status models.CourseStatus, adminComment string) (bool, error)
}

// ReviewUserRepository defines the user lookup needed for review notifications
type ReviewUserRepository interface {
	// GetByID retrieves a user by ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the user.
	//
	// Returns the user and an error if any.
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// ReviewNotifier defines the outbound notification channel for review decisions
type ReviewNotifier interface {
	// Send delivers a notification message
	//
	// "to" is the recipient address.
	// "subject" is the message subject.
	// "body" is the message body.
	//
	// Returns an error if any.
	Send(to, subject, body string) error
}

type reviewService struct {
	courseRepo ReviewCourseRepository
	lessonRepo CourseLessonRepository
	userRepo   ReviewUserRepository
	notifier   ReviewNotifier
	logger     *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	courseRepo ReviewCourseRepository,
	lessonRepo CourseLessonRepository,
	userRepo ReviewUserRepository,
	notifier ReviewNotifier,
	logger *zap.Logger,
) *reviewService {
	return &reviewService{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// GetPendingCourses retrieves the review queue with filtering and pagination
func (s *reviewService) GetPendingCourses(ctx context.Context, query models.PendingQuery) ([]models.CourseListItem, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Count < 1 {
		query.Count = 10
	}

	status := models.CourseStatusPending
	filter := repositories.CourseFilter{
		Status:       &status,
		InstructorID: query.InstructorID,
		Sort:         query.Sort,
		Page:         query.Page,
		Count:        query.Count,
	}
	if query.CategoryID != nil {
		filter.CategoryIDs = []int{*query.CategoryID}
	}

	return s.courseRepo.GetList(ctx, filter)
}

// GetCourse retrieves a course detail for an admin, in any status
func (s *reviewService) GetCourse(ctx context.Context, id int) (*models.CourseDetail, error) {
	detail, err := s.courseRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Lessons = lessons

	return detail, nil
}

// ReviewCourse resolves a pending course to approved or rejected and
// notifies the instructor. The notification is sent in the background and
// a delivery failure never fails the review.
func (s *reviewService) ReviewCourse(ctx context.Context, id int, req *models.ReviewCourseRequest) error {
	validationErr := NewValidationError()
	if req.Status != models.CourseStatusApproved && req.Status != models.CourseStatusRejected {
		validationErr.Add("status", "status must be APPROVED or REJECTED")
	}
	if req.Status == models.CourseStatusRejected && req.AdminComment == "" {
		validationErr.Add("adminComment", "admin comment is required when rejecting a course")
	}
	if validationErr.HasErrors() {
		return validationErr
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}

	updated, err := s.courseRepo.UpdateReviewStatus(ctx, id, req.Status, req.AdminComment)
	if err != nil {
		return err
	}
	if !updated {
		// Either never pending or a concurrent review already resolved it
		return fmt.Errorf("course not found or not in pending status: %w", ErrNotFound)
	}

	go s.notifyInstructor(context.WithoutCancel(ctx), course, req.Status, req.AdminComment)

	return nil
}

// notifyInstructor emails the course owner about the review decision.
// Failures are logged and swallowed.
func (s *reviewService) notifyInstructor(ctx context.Context, course *models.Course, status models.CourseStatus, adminComment string) {
	instructor, err := s.userRepo.GetByID(ctx, course.InstructorID)
	if err != nil {
		s.logger.Warn("failed to load instructor for review notification",
			zap.Int("course_id", course.ID),
			zap.Int("instructor_id", course.InstructorID),
			zap.Error(err),
		)
		return
	}

	var subject, body string
	if status == models.CourseStatusApproved {
		subject = "Course Approved - SkillSphere"
		body = fmt.Sprintf("Hello %s,\n\nYour course \"%s\" has been approved and is now live in the catalog.\n\nThe SkillSphere Team", instructor.FullName, course.Title)
	} else {
		subject = "Course Rejected - SkillSphere"
		body = fmt.Sprintf("Hello %s,\n\nYour course \"%s\" has been rejected.\n\nReviewer comment: %s\n\nThe SkillSphere Team", instructor.FullName, course.Title, adminComment)
	}

	if err := s.notifier.Send(instructor.Email, subject, body); err != nil {
		s.logger.Warn("failed to send review notification",
			zap.Int("course_id", course.ID),
			zap.String("recipient", instructor.Email),
			zap.Error(err),
		)
	}
}
