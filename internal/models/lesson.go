package models

import "time"

// MediaType represents the kind of content a lesson carries
type MediaType string

const (
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeExternal MediaType = "EXTERNAL"
	MediaTypeDocument MediaType = "DOCUMENT"
)

// Lesson represents a lesson within a course
type Lesson struct {
	ID           int       `json:"id"`
	CourseID     int       `json:"courseId,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Order        int       `json:"order"`
	Duration     int       `json:"duration"`
	MediaType    MediaType `json:"mediaType"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	ExternalLink string    `json:"externalLink,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LessonInput represents a lesson supplied as part of a course create or
// full-course update payload
type LessonInput struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Order        int       `json:"order"`
	Duration     int       `json:"duration"`
	MediaType    MediaType `json:"mediaType"`
	VideoURL     string    `json:"videoUrl"`
	ExternalLink string    `json:"externalLink"`
}

// CreateLessonRequest represents a request to add a single lesson to a course
type CreateLessonRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Order        int       `json:"order"`
	Duration     int       `json:"duration"`
	MediaType    MediaType `json:"mediaType"`
	VideoURL     string    `json:"videoUrl"`
	ExternalLink string    `json:"externalLink"`
}

// UpdateLessonRequest represents a partial update of a lesson
type UpdateLessonRequest struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Order        *int       `json:"order,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	MediaType    *MediaType `json:"mediaType,omitempty"`
	VideoURL     *string    `json:"videoUrl,omitempty"`
	ExternalLink *string    `json:"externalLink,omitempty"`
}
