package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// parsePagination reads page and count query parameters, applying defaults
// for missing values
func parsePagination(r *http.Request, defaultCount int) (int, int, error) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid page parameter")
		}
		page = parsed
	}

	count := defaultCount
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid count parameter")
		}
		count = parsed
	}

	return page, count, nil
}

// parseIDParam reads a numeric URL parameter
func parseIDParam(r *http.Request, name string) (int, error) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return id, nil
}

// parseOptionalInt reads an optional numeric query parameter, nil when absent
func parseOptionalInt(r *http.Request, name string) (*int, error) {
	valueStr := r.URL.Query().Get(name)
	if valueStr == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	return &value, nil
}

// parseIDList reads a comma-separated list of numeric IDs from a query parameter
func parseIDList(r *http.Request, name string) ([]int, error) {
	valueStr := r.URL.Query().Get(name)
	if valueStr == "" {
		return nil, nil
	}

	parts := strings.Split(valueStr, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid %s parameter", name)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// parseOptionalBool reads an optional boolean query parameter, nil when absent
func parseOptionalBool(r *http.Request, name string) (*bool, error) {
	valueStr := r.URL.Query().Get(name)
	if valueStr == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	return &value, nil
}
