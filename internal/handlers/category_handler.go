package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/skillsphere/backend/internal/models"
)

// CategoryService is the interface that wraps methods for category business logic
type CategoryService interface {
	// GetCategories retrieves all categories with their approved course counts
	GetCategories(ctx context.Context) ([]models.CategoryListItem, error)
	// CreateCategory creates a new category with a unique name
	//
	// Returns the ID of the created category and an error if any.
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (int, error)
}

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	BaseHandler
	service CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all category handler routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.GetCategories)
		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			r.Post("/", h.CreateCategory)
		})
	})
}

// GetCategories handles GET /api/v1/categories
// @Summary List categories
// @Description Get all categories with the number of approved courses in each
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryListItem "List of categories"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	if categories == nil {
		categories = []models.CategoryListItem{}
	}
	h.RespondJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/v1/categories
// @Summary Create category
// @Description Create a new category. Requires admin role.
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateCategoryRequest true "Category to create"
// @Success 201 {object} map[string]int "ID of the created category"
// @Failure 400 {object} map[string]any "Validation errors"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]int{"id": id})
}
