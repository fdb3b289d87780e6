package api

import (
	"net/http"

	"ayushyaa-be/internal/catalog"
	"ayushyaa-be/internal/utils"
)

type catalogResponse struct {
	catalog.FilterResult
	Category string `json:"category"`
	Error    string `json:"error,omitempty"`
}

// ListCatalog serves the storefront listing. A failed load is shown as an
// empty catalog with a message rather than an error status.
func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("category")
	if slug == "" {
		slug = catalog.AllCategories
	}

	items, err := h.catalog.Load(r.Context())
	resp := catalogResponse{
		FilterResult: catalog.Filter(items, slug),
		Category:     slug,
	}
	if err != nil {
		resp.Error = catalog.ErrReadFailure.Error()
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
}
