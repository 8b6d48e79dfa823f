package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
)

// ProjectHandler serves the project gallery: listing with category filter and
// search, per-category counts, and the detail view behind the project modal.
type ProjectHandler struct {
	galleryService service.GalleryService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(galleryService service.GalleryService) *ProjectHandler {
	return &ProjectHandler{galleryService: galleryService}
}

// listResponse is the JSON response for GET /api/projects.
type listResponse struct {
	Projects []*model.Project `json:"projects"`
	Total    int              `json:"total"`
}

// List handles GET /api/projects.
// Supports query params: category (all/web/mobile/design, default all) and q
// for a search term within the category.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = model.CategoryAll
	}
	query := r.URL.Query().Get("q")

	projects, err := h.galleryService.Search(r.Context(), category, query)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unknown_category"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty results
	if projects == nil {
		projects = []*model.Project{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listResponse{Projects: projects, Total: len(projects)})
}

// Counts handles GET /api/projects/counts.
// Returns per-category totals for the filter buttons, "all" included.
func (h *ProjectHandler) Counts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.galleryService.Counts(r.Context()))
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	project, err := h.galleryService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "get_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(project)
}
