package services

import (
	"context"

	"github.com/skillsphere/backend/internal/models"
	"github.com/skillsphere/backend/internal/repositories"
)

// CatalogCourseRepository defines the course data access for the public catalog
type CatalogCourseRepository interface {
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
}

type catalogService struct {
	courseRepo CatalogCourseRepository
	lessonRepo CourseLessonRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(courseRepo CatalogCourseRepository, lessonRepo CourseLessonRepository) *catalogService {
	return &catalogService{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
	}
}

// GetCourses retrieves approved courses with search, filtering and sorting
func (s *catalogService) GetCourses(ctx context.Context, query models.CatalogQuery) ([]models.CourseListItem, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Count < 1 {
		query.Count = 20
	}

	status := models.CourseStatusApproved
	return s.courseRepo.GetList(ctx, repositories.CourseFilter{
		Status:      &status,
		CategoryIDs: query.CategoryIDs,
		Search:      query.Search,
		IsFree:      query.IsFree,
		Sort:        query.Sort,
		Page:        query.Page,
		Count:       query.Count,
	})
}

// GetCourse retrieves a course with its lessons, scoped to what the principal
// may see. Approved courses are visible to everyone, courses in any other
// status only to their owner and admins; all other callers get not found.
func (s *catalogService) GetCourse(ctx context.Context, p *models.Principal, id int) (*models.CourseDetail, error) {
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
