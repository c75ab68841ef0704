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

// CourseService is the interface that wraps methods for instructor course management
type CourseService interface {
	// GetOwnCourses retrieves the instructor's courses with pagination
	GetOwnCourses(ctx context.Context, instructorID, page, count int) ([]models.CourseListItem, error)
	// GetCourse retrieves a course detail visible to the principal
	GetCourse(ctx context.Context, p *models.Principal, id int) (*models.CourseDetail, error)
	// CreateCourse creates a new draft course for the instructor
	//
	// Returns the ID of the created course and an error if any.
	CreateCourse(ctx context.Context, instructorID int, req *models.CreateCourseRequest) (int, error)
	// UpdateCourse updates a draft course owned by the principal
	UpdateCourse(ctx context.Context, p *models.Principal, id int, req *models.UpdateCourseRequest) error
	// DeleteCourse deletes a draft course owned by the principal
	DeleteCourse(ctx context.Context, p *models.Principal, id int) error
	// SubmitCourse submits a draft course for admin review
	SubmitCourse(ctx context.Context, p *models.Principal, id int) error
}

// InstructorStatsService is the interface that wraps the instructor dashboard query
type InstructorStatsService interface {
	// GetInstructorStats retrieves course statistics for the instructor
	GetInstructorStats(ctx context.Context, instructorID int) (*models.InstructorStats, error)
}

// InstructorCourseHandler handles instructor course management HTTP requests
type InstructorCourseHandler struct {
	BaseHandler
	service      CourseService
	statsService InstructorStatsService
}

// NewInstructorCourseHandler creates a new instructor course handler
func NewInstructorCourseHandler(service CourseService, statsService InstructorStatsService, logger *zap.Logger) *InstructorCourseHandler {
	return &InstructorCourseHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		service:      service,
		statsService: statsService,
	}
}

// RegisterRoutes registers all instructor course handler routes
func (h *InstructorCourseHandler) RegisterRoutes(r chi.Router, instructorMiddleware func(http.Handler) http.Handler) {
	r.Route("/instructor", func(r chi.Router) {
		r.Use(instructorMiddleware)
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.GetCourses)
			r.Post("/", h.CreateCourse)
			r.Get("/{id}", h.GetCourse)
			r.Put("/{id}", h.UpdateCourse)
			r.Delete("/{id}", h.DeleteCourse)
			r.Post("/{id}/submit", h.SubmitCourse)
		})
		r.Get("/dashboard/stats", h.GetStats)
	})
}

// GetCourses handles GET /api/v1/instructor/courses
// @Summary List own courses
// @Description Get the authenticated instructor's courses in every status. Requires instructor role.
// @Tags instructor
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number, default: 1"
// @Param count query int false "Items per page, default: 10"
// @Success 200 {array} models.CourseListItem "List of own courses"
// @Failure 400 {object} map[string]string "Bad request - invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/instructor/courses [get]
func (h *InstructorCourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	p := auth.GetPrincipal(r.Context())
	if p == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	page, count, err := parsePagination(r, 10)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	courses, err := h.service.GetOwnCourses(r.Context(), p.UserID, page, count)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	if courses == nil {
		courses = []models.CourseListItem{}
	}
	h.RespondJSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /api/v1/instructor/courses/{id}
// @Summary Get own course
// @Description Get one of the instructor's own courses with lessons, in any status. Requires instructor role.
// @Tags instructor
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} models.CourseDetail "Course detail"
// @Failure 400 {object} map[string]string "Bad request - invalid course ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/instructor/courses/{id} [get]
func (h *InstructorCourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
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

	course, err := h.service.GetCourse(r.Context(), p, id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// CreateCourse handles POST /api/v1/instructor/courses
// @Summary Create course
// @Description Create a new draft course, optionally with nested lessons. Requires instructor role.
// @Tags instructor
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateCourseRequest true "Course to create"
// @Success 201 {object} map[string]int "ID of the created course"
// @Failure 400 {object} map[string]any "Validation errors"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/instructor/courses [post]
func (h *InstructorCourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	p := auth.GetPrincipal(r.Context())
	if p == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.CreateCourse(r.Context(), p.UserID, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// UpdateCourse handles PUT /api/v1/instructor/courses/{id}
// @Summary Update own draft course
// @Description Update a draft course. A request carrying lessons replaces the whole lesson set atomically. Requires instructor role.
// @Tags instructor
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param request body models.UpdateCourseRequest true "Course fields"
// @Success 204 "Course updated"
// @Failure 400 {object} map[string]any "Validation errors"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 409 {object} map[string]string "Course is not in draft status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/instructor/courses/{id} [put]
func (h *InstructorCourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateCourse(r.Context(), p, id, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCourse handles DELETE /api/v1/instructor/courses/{id}
// @Summary Delete own draft course
// @Description Delete a draft course together with its lessons. Requires instructor role.
// @Tags instructor
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 204 "Course deleted"
// @Failure 400 {object} map[string]string "Bad request - invalid course ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 409 {object} map[string]string "Course is not in draft status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/instructor/courses/{id} [delete]
func (h *InstructorCourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteCourse(r.Context(), p, id); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SubmitCourse handles POST /api/v1/instructor/courses/{id}/submit
// @Summary Submit course for review
// @Description Submit a draft course for admin review. Title, description, category and thumbnail must all be set. Requires instructor role.
// @Tags instructor
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 204 "Course submitted"
// @Failure 400 {object} map[string]any "Validation errors naming each missing field"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 409 {object} map[string]string "Course is not in draft status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/instructor/courses/{id}/submit [post]
func (h *InstructorCourseHandler) SubmitCourse(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.SubmitCourse(r.Context(), p, id); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetStats handles GET /api/v1/instructor/dashboard/stats
// @Summary Instructor dashboard statistics
// @Description Get course counts per status for the authenticated instructor. Requires instructor role.
// @Tags instructor
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.InstructorStats "Course statistics"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/instructor/dashboard/stats [get]
func (h *InstructorCourseHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	p := auth.GetPrincipal(r.Context())
	if p == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	stats, err := h.statsService.GetInstructorStats(r.Context(), p.UserID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, stats)
}
