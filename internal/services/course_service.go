package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/skillsphere/backend/internal/models"
	"github.com/skillsphere/backend/internal/repositories"
)

// CourseRepository defines methods for course data access
type CourseRepository interface {
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
	// Create creates a course together with its lessons
	//
	// "ctx" is the context for the request.
	// "course" is the course to create.
	// "lessons" are the lessons created with the course.
	//
	// Returns an error if any.
	Create(ctx context.Context, course *models.Course, lessons []models.Lesson) error
	// Update updates a course, optionally replacing its whole lesson set
	//
	// "ctx" is the context for the request.
	// "course" is the course to update.
	// "lessons" is the replacement lesson set.
	// "replaceLessons" indicates whether the lesson set is replaced.
	//
	// Returns whether the course was a draft at the point of the update and an error if any.
	Update(ctx context.Context, course *models.Course, lessons []models.Lesson, replaceLessons bool) (bool, error)
	// Delete deletes a course
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns whether the course was a draft at the point of the delete and an error if any.
	Delete(ctx context.Context, id int) (bool, error)
	// SubmitForReview moves a draft course to pending
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns whether the course was a draft at the point of the update and an error if any.
	SubmitForReview(ctx context.Context, id int) (bool, error)
}

// CategoryChecker defines the category lookup needed for course validation
type CategoryChecker interface {
	// ExistsByID checks if a category with the given ID exists
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the category.
	//
	// Returns a boolean and an error if any.
	ExistsByID(ctx context.Context, id int) (bool, error)
}

// CourseLessonRepository defines the lesson data access needed for course details
type CourseLessonRepository interface {
	// GetByCourseID retrieves lessons by course ID
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns a list of lessons and an error if any.
	GetByCourseID(ctx context.Context, courseID int) ([]models.Lesson, error)
}

type courseService struct {
	courseRepo   CourseRepository
	lessonRepo   CourseLessonRepository
	categoryRepo CategoryChecker
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo CourseRepository, lessonRepo CourseLessonRepository, categoryRepo CategoryChecker) *courseService {
	return &courseService{
		courseRepo:   courseRepo,
		lessonRepo:   lessonRepo,
		categoryRepo: categoryRepo,
	}
}

// GetOwnCourses retrieves the instructor's courses with pagination
func (s *courseService) GetOwnCourses(ctx context.Context, instructorID, page, count int) ([]models.CourseListItem, error) {
	if page < 1 {
		page = 1
	}
	if count < 1 {
		count = 10
	}

	return s.courseRepo.GetList(ctx, repositories.CourseFilter{
		InstructorID: &instructorID,
		Sort:         "-created_at",
		Page:         page,
		Count:        count,
	})
}

// GetCourse retrieves a course detail visible to the principal. Courses the
// principal may not see are reported as not found.
func (s *courseService) GetCourse(ctx context.Context, p *models.Principal, id int) (*models.CourseDetail, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if !canViewCourse(p, course) {
		return nil, ErrNotFound
	}

	detail, err := s.courseRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Lessons = lessons

	return detail, nil
}

// CreateCourse creates a new draft course for the instructor
func (s *courseService) CreateCourse(ctx context.Context, instructorID int, req *models.CreateCourseRequest) (int, error) {
	if err := s.validateCoursePayload(ctx, req.Title, req.Price, req.CategoryID, req.ThumbnailURL, req.Lessons, req.Lessons != nil); err != nil {
		return 0, err
	}

	course := &models.Course{
		InstructorID: instructorID,
		CategoryID:   req.CategoryID,
		Title:        req.Title,
		Description:  req.Description,
		Syllabus:     req.Syllabus,
		Price:        req.Price,
		ThumbnailURL: req.ThumbnailURL,
		Status:       models.CourseStatusDraft,
	}

	err := s.courseRepo.Create(ctx, course, lessonsFromInputs(req.Lessons))
	if err != nil {
		return 0, err
	}

	return course.ID, nil
}

// UpdateCourse updates a draft course owned by the principal. When the
// request carries lessons the whole lesson set is replaced atomically.
func (s *courseService) UpdateCourse(ctx context.Context, p *models.Principal, id int, req *models.UpdateCourseRequest) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !ownsCourse(p, course) {
		return ErrNotFound
	}
	if course.Status != models.CourseStatusDraft {
		return NewStateConflictError("course is editable only in draft status")
	}

	if err := s.validateCoursePayload(ctx, req.Title, req.Price, req.CategoryID, req.ThumbnailURL, req.Lessons, req.Lessons != nil); err != nil {
		return err
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Syllabus = req.Syllabus
	course.CategoryID = req.CategoryID
	course.Price = req.Price
	course.ThumbnailURL = req.ThumbnailURL

	updated, err := s.courseRepo.Update(ctx, course, lessonsFromInputs(req.Lessons), req.Lessons != nil)
	if err != nil {
		return err
	}
	if !updated {
		// Lost a race with a concurrent submit on the same course
		return NewStateConflictError("course is editable only in draft status")
	}

	return nil
}

// DeleteCourse deletes a draft course owned by the principal
func (s *courseService) DeleteCourse(ctx context.Context, p *models.Principal, id int) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !ownsCourse(p, course) {
		return ErrNotFound
	}
	if course.Status != models.CourseStatusDraft {
		return NewStateConflictError("course can be deleted only in draft status")
	}

	deleted, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		// Lost a race with a concurrent submit on the same course
		return NewStateConflictError("course can be deleted only in draft status")
	}

	return nil
}

// SubmitCourse submits a draft course for admin review. Title, description,
// category and thumbnail must all be present, each missing one is reported
// as a field error and the course stays a draft.
func (s *courseService) SubmitCourse(ctx context.Context, p *models.Principal, id int) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !ownsCourse(p, course) {
		return ErrNotFound
	}
	if course.Status != models.CourseStatusDraft {
		return NewStateConflictError("course can be submitted only in draft status")
	}

	validationErr := NewValidationError()
	if course.Title == "" {
		validationErr.Add("title", "title is required for submission")
	}
	if course.Description == "" {
		validationErr.Add("description", "description is required for submission")
	}
	if course.CategoryID == nil {
		validationErr.Add("category", "category is required for submission")
	}
	if course.ThumbnailURL == "" {
		validationErr.Add("thumbnail", "thumbnail is required for submission")
	}
	if validationErr.HasErrors() {
		return validationErr
	}

	submitted, err := s.courseRepo.SubmitForReview(ctx, id)
	if err != nil {
		return err
	}
	if !submitted {
		// Lost a race with another submit on the same course
		return NewStateConflictError("course can be submitted only in draft status")
	}

	return nil
}

// validateCoursePayload validates the writable fields of a create or update
// request, collecting every violation into one validation error.
func (s *courseService) validateCoursePayload(ctx context.Context, title string, price float64, categoryID *int, thumbnailURL string, lessons []models.LessonInput, withLessons bool) error {
	validationErr := NewValidationError()

	if title == "" {
		validationErr.Add("title", "title is required")
	}
	if price < 0 {
		validationErr.Add("price", "price must not be negative")
	}
	if thumbnailURL != "" && !isAllowedImage(thumbnailURL) {
		validationErr.Add("thumbnail", "thumbnail must be a jpg, jpeg, png or webp image")
	}
	if categoryID != nil {
		exists, err := s.categoryRepo.ExistsByID(ctx, *categoryID)
		if err != nil {
			return err
		}
		if !exists {
			validationErr.Add("category", "category does not exist")
		}
	}
	if withLessons {
		validateLessonInputs(lessons, validationErr)
	}

	if validationErr.HasErrors() {
		return validationErr
	}
	return nil
}

// validateLessonInputs validates a nested lesson payload, including order
// uniqueness within the payload itself.
func validateLessonInputs(lessons []models.LessonInput, validationErr *ValidationError) {
	seenOrders := make(map[int]bool, len(lessons))
	for i, lesson := range lessons {
		field := "lessons." + strconv.Itoa(i)
		if lesson.Title == "" {
			validationErr.Add(field+".title", "title is required")
		}
		if lesson.Order < 0 {
			validationErr.Add(field+".order", "order must not be negative")
		}
		if lesson.Duration < 0 {
			validationErr.Add(field+".duration", "duration must not be negative")
		}
		if seenOrders[lesson.Order] {
			validationErr.Add(field+".order", fmt.Sprintf("order %d is used more than once", lesson.Order))
		}
		seenOrders[lesson.Order] = true

		if msg := validateLessonMedia(lesson.MediaType, lesson.VideoURL, lesson.ExternalLink); msg != "" {
			validationErr.Add(field+".mediaType", msg)
		}
	}
}

// validateLessonMedia checks the media type and its conditionally required
// reference. Returns an empty string when the combination is valid.
func validateLessonMedia(mediaType models.MediaType, videoURL, externalLink string) string {
	switch mediaType {
	case models.MediaTypeVideo:
		if videoURL == "" {
			return "video url is required for video lessons"
		}
		if !isAllowedVideo(videoURL) {
			return "video must be an mp4, mov, avi or mkv file"
		}
	case models.MediaTypeExternal:
		if externalLink == "" {
			return "external link is required for external lessons"
		}
	case models.MediaTypeDocument:
	default:
		return fmt.Sprintf("invalid media type '%s'", mediaType)
	}
	return ""
}

// lessonsFromInputs converts nested lesson payloads into lesson models
func lessonsFromInputs(inputs []models.LessonInput) []models.Lesson {
	lessons := make([]models.Lesson, len(inputs))
	for i, input := range inputs {
		lessons[i] = models.Lesson{
			Title:        input.Title,
			Description:  input.Description,
			Order:        input.Order,
			Duration:     input.Duration,
			MediaType:    input.MediaType,
			VideoURL:     input.VideoURL,
			ExternalLink: input.ExternalLink,
		}
	}
	return lessons
}
