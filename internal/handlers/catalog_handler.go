package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/skillsphere/backend/internal/auth"
	"github.com/skillsphere/backend/internal/models"
)

// CatalogService is the interface that wraps methods for the public catalog
type CatalogService interface {
	// GetCourses retrieves approved courses with search, filtering and sorting
	GetCourses(ctx context.Context, query models.CatalogQuery) ([]models.CourseListItem, error)
	// GetCourse retrieves a course with its lessons, scoped to what the principal may see
	GetCourse(ctx context.Context, p *models.Principal, id int) (*models.CourseDetail, error)
}

// CatalogHandler handles public catalog HTTP requests
type CatalogHandler struct {
	BaseHandler
	service CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all catalog handler routes. The detail route takes
// optional auth so owners and admins can reach their unapproved courses.
func (h *CatalogHandler) RegisterRoutes(r chi.Router, optionalAuth func(http.Handler) http.Handler) {
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/", h.GetCourses)
		r.With(optionalAuth).Get("/{id}", h.GetCourse)
	})
}

// GetCourses handles GET /api/v1/catalog
// @Summary Browse the catalog
// @Description Get approved courses with free-text search, category and price filters and sorting
// @Tags catalog
// @Produce json
// @Param search query string false "Free-text search over title and description"
// @Param categories query string false "Comma-separated category IDs, OR semantics"
// @Param isFree query bool false "true for free courses only, false for paid only"
// @Param sort query string false "Sort key: created_at, price or title, prefix with - for descending. Default: -created_at"
// @Param page query int false "Page number, default: 1"
// @Param count query int false "Items per page, default: 20"
// @Success 200 {array} models.CourseListItem "List of approved courses"
// @Failure 400 {object} map[string]string "Bad request - invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/catalog [get]
func (h *CatalogHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	page, count, err := parsePagination(r, 20)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	categoryIDs, err := parseIDList(r, "categories")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	isFree, err := parseOptionalBool(r, "isFree")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	courses, err := h.service.GetCourses(r.Context(), models.CatalogQuery{
		Search:      r.URL.Query().Get("search"),
		CategoryIDs: categoryIDs,
		IsFree:      isFree,
		Sort:        r.URL.Query().Get("sort"),
		Page:        page,
		Count:       count,
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

// GetCourse handles GET /api/v1/catalog/{id}
// @Summary Get a catalog course
// @Description Get a course with its lessons. Approved courses are visible to everyone; draft, pending and rejected courses only to their owner and admins, everyone else gets not found.
// @Tags catalog
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.CourseDetail "Course detail"
// @Failure 400 {object} map[string]string "Bad request - invalid course ID"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/catalog/{id} [get]
func (h *CatalogHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.service.GetCourse(r.Context(), auth.GetPrincipal(r.Context()), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}
