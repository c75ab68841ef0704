package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/skillsphere/backend/internal/models"
)

// ReviewService is the interface that wraps methods for admin course review
type ReviewService interface {
	// GetPendingCourses retrieves the review queue with filtering and pagination
	GetPendingCourses(ctx context.Context, query models.PendingQuery) ([]models.CourseListItem, error)
	// GetCourse retrieves a course detail for an admin, in any status
	GetCourse(ctx context.Context, id int) (*models.CourseDetail, error)
	// ReviewCourse resolves a pending course to approved or rejected
	ReviewCourse(ctx context.Context, id int, req *models.ReviewCourseRequest) error
}

// AdminStatsService is the interface that wraps the admin dashboard query
type AdminStatsService interface {
	// GetAdminStats retrieves platform-wide course statistics
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
}

// AdminHandler handles admin review HTTP requests
type AdminHandler struct {
	BaseHandler
	service      ReviewService
	statsService AdminStatsService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service ReviewService, statsService AdminStatsService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		service:      service,
		statsService: statsService,
	}
}

// RegisterRoutes registers all admin handler routes
func (h *AdminHandler) RegisterRoutes(r chi.Router, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(adminMiddleware)
		r.Route("/courses", func(r chi.Router) {
			r.Get("/pending", h.GetPendingCourses)
			r.Get("/{id}", h.GetCourse)
			r.Post("/{id}/review", h.ReviewCourse)
		})
		r.Get("/dashboard/stats", h.GetStats)
	})
}

// GetPendingCourses handles GET /api/v1/admin/courses/pending
// @Summary List pending courses
// @Description Get courses waiting for review, filterable by category and instructor. Requires admin role.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param category query int false "Filter by category ID"
// @Param instructor query int false "Filter by instructor ID"
// @Param sort query string false "Sort key: created_at, price or title, prefix with - for descending. Default: -created_at"
// @Param page query int false "Page number, default: 1"
// @Param count query int false "Items per page, default: 10"
// @Success 200 {array} models.CourseListItem "List of pending courses"
// @Failure 400 {object} map[string]string "Bad request - invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/admin/courses/pending [get]
func (h *AdminHandler) GetPendingCourses(w http.ResponseWriter, r *http.Request) {
	page, count, err := parsePagination(r, 10)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	categoryID, err := parseOptionalInt(r, "category")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	instructorID, err := parseOptionalInt(r, "instructor")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	courses, err := h.service.GetPendingCourses(r.Context(), models.PendingQuery{
		CategoryID:   categoryID,
		InstructorID: instructorID,
		Sort:         r.URL.Query().Get("sort"),
		Page:         page,
		Count:        count,
	})
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	if courses == nil {
		courses = []models.CourseListItem{}
	}
	h.RespondJSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /api/v1/admin/courses/{id}
// @Summary Get a course as admin
// @Description Get any course with its lessons regardless of status. Requires admin role.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} models.CourseDetail "Course detail"
// @Failure 400 {object} map[string]string "Bad request - invalid course ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/admin/courses/{id} [get]
func (h *AdminHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// ReviewCourse handles POST /api/v1/admin/courses/{id}/review
// @Summary Review a pending course
// @Description Approve or reject a pending course. Rejection requires an admin comment. The instructor is notified by email. Requires admin role.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param request body models.ReviewCourseRequest true "Review decision"
// @Success 204 "Course reviewed"
// @Failure 400 {object} map[string]any "Validation errors"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Course not found or not in pending status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/admin/courses/{id}/review [post]
func (h *AdminHandler) ReviewCourse(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.ReviewCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.ReviewCourse(r.Context(), id, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetStats handles GET /api/v1/admin/dashboard/stats
// @Summary Admin dashboard statistics
// @Description Get platform-wide course and instructor counts. Requires admin role.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.AdminStats "Platform statistics"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/admin/dashboard/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetAdminStats(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, stats)
}
