package models

import "time"

// CourseStatus represents the lifecycle state of a course
type CourseStatus string

const (
	CourseStatusDraft    CourseStatus = "DRAFT"
	CourseStatusPending  CourseStatus = "PENDING"
	CourseStatusApproved CourseStatus = "APPROVED"
	CourseStatusRejected CourseStatus = "REJECTED"
)

// Course represents a course in the marketplace
type Course struct {
	ID           int          `json:"id"`
	InstructorID int          `json:"instructorId"`
	CategoryID   *int         `json:"categoryId"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Syllabus     string       `json:"syllabus"`
	Price        float64      `json:"price"`
	ThumbnailURL string       `json:"thumbnailUrl"`
	Status       CourseStatus `json:"status"`
	AdminComment string       `json:"adminComment"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// CourseListItem represents a course in list responses with derived fields
type CourseListItem struct {
	ID              int          `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	InstructorName  string       `json:"instructorName"`
	CategoryName    *string      `json:"categoryName"`
	Price           float64      `json:"price"`
	IsFree          bool         `json:"isFree"`
	ThumbnailURL    string       `json:"thumbnailUrl"`
	Status          CourseStatus `json:"status"`
	LessonCount     int          `json:"lessonCount"`
	TotalDuration   int          `json:"totalDuration"`
	EnrollmentCount int          `json:"enrollmentCount"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// CourseDetail represents a course with lessons and derived fields
type CourseDetail struct {
	ID              int          `json:"id"`
	InstructorID    int          `json:"instructorId"`
	InstructorName  string       `json:"instructorName"`
	CategoryID      *int         `json:"categoryId"`
	CategoryName    *string      `json:"categoryName"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Syllabus        string       `json:"syllabus"`
	Price           float64      `json:"price"`
	IsFree          bool         `json:"isFree"`
	ThumbnailURL    string       `json:"thumbnailUrl"`
	Status          CourseStatus `json:"status"`
	AdminComment    string       `json:"adminComment"`
	LessonCount     int          `json:"lessonCount"`
	TotalDuration   int          `json:"totalDuration"`
	EnrollmentCount int          `json:"enrollmentCount"`
	Lessons         []Lesson     `json:"lessons"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// CreateCourseRequest represents a request to create a course
//
// Lessons, when provided, are created together with the course.
type CreateCourseRequest struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Syllabus     string        `json:"syllabus"`
	CategoryID   *int          `json:"categoryId"`
	Price        float64       `json:"price"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	Lessons      []LessonInput `json:"lessons,omitempty"`
}

// UpdateCourseRequest represents a full update of a draft course
//
// When Lessons is non-nil the whole lesson set of the course is replaced
// atomically; nil leaves the existing lessons untouched.
type UpdateCourseRequest struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Syllabus     string        `json:"syllabus"`
	CategoryID   *int          `json:"categoryId"`
	Price        float64       `json:"price"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	Lessons      []LessonInput `json:"lessons,omitempty"`
}

// ReviewCourseRequest represents an admin approval or rejection
type ReviewCourseRequest struct {
	Status       CourseStatus `json:"status"`
	AdminComment string       `json:"adminComment"`
}

// CatalogQuery holds filters for the public catalog listing
type CatalogQuery struct {
	Search      string
	CategoryIDs []int
	IsFree      *bool
	Sort        string
	Page        int
	Count       int
}

// PendingQuery holds filters for the admin review queue
type PendingQuery struct {
	CategoryID   *int
	InstructorID *int
	Sort         string
	Page         int
	Count        int
}

// AdminStats holds platform-wide course statistics
type AdminStats struct {
	TotalCourses     int `json:"totalCourses"`
	PendingCourses   int `json:"pendingCourses"`
	ApprovedCourses  int `json:"approvedCourses"`
	RejectedCourses  int `json:"rejectedCourses"`
	TotalInstructors int `json:"totalInstructors"`
}

// InstructorStats holds per-instructor course statistics
type InstructorStats struct {
	TotalCourses    int `json:"totalCourses"`
	DraftCourses    int `json:"draftCourses"`
	PendingCourses  int `json:"pendingCourses"`
	ApprovedCourses int `json:"approvedCourses"`
	RejectedCourses int `json:"rejectedCourses"`
}
