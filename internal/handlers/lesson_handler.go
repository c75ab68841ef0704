package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/skillsphere/backend/internal/auth"
	"github.com/skillsphere/backend/internal/models"
)

// LessonService is the interface that wraps methods for lesson business logic
type LessonService interface {
	// GetLessons retrieves the lessons of a course visible to the principal
	GetLessons(ctx context.Context, p *models.Principal, courseID int) ([]models.Lesson, error)
	// CreateLesson adds a single lesson to a draft course owned by the principal
	//
	// Returns the ID of the created lesson and an error if any.
	CreateLesson(ctx context.Context, p *models.Principal, courseID int, req *models.CreateLessonRequest) (int, error)
	// UpdateLesson partially updates a lesson of a draft course owned by the principal
	UpdateLesson(ctx context.Context, p *models.Principal, id int, req *models.UpdateLessonRequest) error
	// DeleteLesson deletes a lesson of a draft course owned by the principal
	DeleteLesson(ctx context.Context, p *models.Principal, id int) error
}

// LessonHandler handles lesson-related HTTP requests
type LessonHandler struct {
	BaseHandler
	service LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(service LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all lesson handler routes. Listing follows the
// parent course's visibility so it only needs optional auth, writes require
// the instructor role.
func (h *LessonHandler) RegisterRoutes(r chi.Router, optionalAuth, instructorMiddleware func(http.Handler) http.Handler) {
	r.Route("/courses/{courseId}/lessons", func(r chi.Router) {
		r.With(optionalAuth).Get("/", h.GetLessons)
		r.With(instructorMiddleware).Post("/", h.CreateLesson)
	})
	r.Route("/lessons/{id}", func(r chi.Router) {
		r.Use(instructorMiddleware)
		r.Patch("/", h.UpdateLesson)
		r.Delete("/", h.DeleteLesson)
	})
}

// GetLessons handles GET /api/v1/courses/{courseId}/lessons
// @Summary List lessons of a course
// @Description Get the lessons of a course ordered by position. Visibility follows the parent course: draft and pending courses are only listable by their owner and admins.
// @Tags lessons
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {array} models.Lesson "List of lessons"
// @Failure 400 {object} map[string]string "Bad request - invalid course ID"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/courses/{courseId}/lessons [get]
func (h *LessonHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseIDParam(r, "courseId")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lessons, err := h.service.GetLessons(r.Context(), auth.GetPrincipal(r.Context()), courseID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	if lessons == nil {
		lessons = []models.Lesson{}
	}
	h.RespondJSON(w, http.StatusOK, lessons)
}

// CreateLesson handles POST /api/v1/courses/{courseId}/lessons
// @Summary Add a lesson
// @Description Add a single lesson to one of the instructor's draft courses. The order must be unused within the course. Requires instructor role.
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path int true "Course ID"
// @Param request body models.CreateLessonRequest true "Lesson to create"
// @Success 201 {object} map[string]int "ID of the created lesson"
// @Failure 400 {object} map[string]any "Validation errors"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 409 {object} map[string]string "Course is not in draft status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/courses/{courseId}/lessons [post]
func (h *LessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	p := auth.GetPrincipal(r.Context())
	if p == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	courseID, err := parseIDParam(r, "courseId")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.CreateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.CreateLesson(r.Context(), p, courseID, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// UpdateLesson handles PATCH /api/v1/lessons/{id}
// @Summary Update a lesson
// @Description Partially update a lesson of one of the instructor's draft courses. Requires instructor role.
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Lesson ID"
// @Param request body models.UpdateLessonRequest true "Fields to update"
// @Success 204 "Lesson updated"
// @Failure 400 {object} map[string]any "Validation errors"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 409 {object} map[string]string "Course is not in draft status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/lessons/{id} [patch]
func (h *LessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	p := auth.GetPrincipal(r.Context())
	if p == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.UpdateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateLesson(r.Context(), p, id, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteLesson handles DELETE /api/v1/lessons/{id}
// @Summary Delete a lesson
// @Description Delete a lesson of one of the instructor's draft courses. Requires instructor role.
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Lesson ID"
// @Success 204 "Lesson deleted"
// @Failure 400 {object} map[string]string "Bad request - invalid lesson ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 409 {object} map[string]string "Course is not in draft status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/lessons/{id} [delete]
func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	p := auth.GetPrincipal(r.Context())
	if p == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.DeleteLesson(r.Context(), p, id); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
