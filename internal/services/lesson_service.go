package services

import (
	"context"
	"fmt"

	"github.com/skillsphere/backend/internal/models"
)

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetByID retrieves a lesson by ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the lesson.
	//
	// Returns the lesson and an error if any.
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// GetByCourseID retrieves lessons by course ID
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns a list of lessons and an error if any.
	GetByCourseID(ctx context.Context, courseID int) ([]models.Lesson, error)
	// ExistsByOrderInCourse checks if another lesson occupies the given order in a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "order" is the position to check.
	// "excludeID" is a lesson ID to skip, 0 to check all lessons.
	//
	// Returns a boolean and an error if any.
	ExistsByOrderInCourse(ctx context.Context, courseID, order, excludeID int) (bool, error)
	// Create creates a new lesson
	//
	// "ctx" is the context for the request.
	// "lesson" is the lesson to create.
	//
	// Returns an error if any.
	Create(ctx context.Context, lesson *models.Lesson) error
	// Update updates a lesson
	//
	// "ctx" is the context for the request.
	// "lesson" is the lesson to update.
	//
	// Returns an error if any.
	Update(ctx context.Context, lesson *models.Lesson) error
	// Delete deletes a lesson
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the lesson.
	//
	// Returns an error if any.
	Delete(ctx context.Context, id int) error
}

// LessonCourseRepository defines the course lookup needed for lesson access checks
type LessonCourseRepository interface {
	// GetByID retrieves a course by ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course and an error if any.
	GetByID(ctx context.Context, id int) (*models.Course, error)
}

type lessonService struct {
	lessonRepo LessonRepository
	courseRepo LessonCourseRepository
}

// NewLessonService creates a new lesson service
func NewLessonService(lessonRepo LessonRepository, courseRepo LessonCourseRepository) *lessonService {
	return &lessonService{
		lessonRepo: lessonRepo,
		courseRepo: courseRepo,
	}
}

// GetLessons retrieves the lessons of a course visible to the principal.
// Visibility follows the parent course, so draft course lessons are only
// listable by the owner and admins.
func (s *lessonService) GetLessons(ctx context.Context, p *models.Principal, courseID int) ([]models.Lesson, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !canViewCourse(p, course) {
		return nil, ErrNotFound
	}

	return s.lessonRepo.GetByCourseID(ctx, courseID)
}

// CreateLesson adds a single lesson to a draft course owned by the principal
func (s *lessonService) CreateLesson(ctx context.Context, p *models.Principal, courseID int, req *models.CreateLessonRequest) (int, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return 0, ErrNotFound
	}
	if !ownsCourse(p, course) {
		return 0, ErrNotFound
	}
	if course.Status != models.CourseStatusDraft {
		return 0, NewStateConflictError("lessons can be added only while the course is in draft status")
	}

	validationErr := NewValidationError()
	if req.Title == "" {
		validationErr.Add("title", "title is required")
	}
	if req.Order < 0 {
		validationErr.Add("order", "order must not be negative")
	}
	if req.Duration < 0 {
		validationErr.Add("duration", "duration must not be negative")
	}
	if msg := validateLessonMedia(req.MediaType, req.VideoURL, req.ExternalLink); msg != "" {
		validationErr.Add("mediaType", msg)
	}
	if validationErr.HasErrors() {
		return 0, validationErr
	}

	exists, err := s.lessonRepo.ExistsByOrderInCourse(ctx, courseID, req.Order, 0)
	if err != nil {
		return 0, err
	}
	if exists {
		validationErr.Add("order", fmt.Sprintf("order %d is already used in this course", req.Order))
		return 0, validationErr
	}

	lesson := &models.Lesson{
		CourseID:     courseID,
		Title:        req.Title,
		Description:  req.Description,
		Order:        req.Order,
		Duration:     req.Duration,
		MediaType:    req.MediaType,
		VideoURL:     req.VideoURL,
		ExternalLink: req.ExternalLink,
	}

	err = s.lessonRepo.Create(ctx, lesson)
	if err != nil {
		return 0, err
	}

	return lesson.ID, nil
}

// UpdateLesson partially updates a lesson of a draft course owned by the principal
func (s *lessonService) UpdateLesson(ctx context.Context, p *models.Principal, id int, req *models.UpdateLessonRequest) error {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, lesson.CourseID)
	if err != nil {
		return ErrNotFound
	}
	if !ownsCourse(p, course) {
		return ErrNotFound
	}
	if course.Status != models.CourseStatusDraft {
		return NewStateConflictError("lessons can be edited only while the course is in draft status")
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if req.MediaType != nil {
		lesson.MediaType = *req.MediaType
	}
	if req.VideoURL != nil {
		lesson.VideoURL = *req.VideoURL
	}
	if req.ExternalLink != nil {
		lesson.ExternalLink = *req.ExternalLink
	}

	validationErr := NewValidationError()
	if lesson.Title == "" {
		validationErr.Add("title", "title is required")
	}
	if lesson.Order < 0 {
		validationErr.Add("order", "order must not be negative")
	}
	if lesson.Duration < 0 {
		validationErr.Add("duration", "duration must not be negative")
	}
	if msg := validateLessonMedia(lesson.MediaType, lesson.VideoURL, lesson.ExternalLink); msg != "" {
		validationErr.Add("mediaType", msg)
	}
	if validationErr.HasErrors() {
		return validationErr
	}

	if req.Order != nil {
		exists, err := s.lessonRepo.ExistsByOrderInCourse(ctx, lesson.CourseID, lesson.Order, lesson.ID)
		if err != nil {
			return err
		}
		if exists {
			validationErr.Add("order", fmt.Sprintf("order %d is already used in this course", lesson.Order))
			return validationErr
		}
	}

	return s.lessonRepo.Update(ctx, lesson)
}

// DeleteLesson deletes a lesson of a draft course owned by the principal
func (s *lessonService) DeleteLesson(ctx context.Context, p *models.Principal, id int) error {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, lesson.CourseID)
	if err != nil {
		return ErrNotFound
	}
	if !ownsCourse(p, course) {
		return ErrNotFound
	}
	if course.Status != models.CourseStatusDraft {
		return NewStateConflictError("lessons can be deleted only while the course is in draft status")
	}

	return s.lessonRepo.Delete(ctx, id)
}
