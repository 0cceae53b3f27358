package suggest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"suggestbox/internal/catalog"
	"suggestbox/internal/httpx"
)

const msgNoSuggestions = "لا توجد اقتراحات متاحة لهذا النوع"

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

func (h *HTTPHandler) Register(r chi.Router) {
	r.Get("/suggest/{category}", h.Suggest)
}

// Suggest handles GET /api/suggest/{category}?exclude_ids=a,b&genre=x.
func (h *HTTPHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	genre := r.URL.Query().Get("genre")
	excludeIDs := parseExcludeIDs(r.URL.Query().Get("exclude_ids"))

	result, err := h.svc.Suggest(r.Context(), category, genre, excludeIDs)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownCategory):
			httpx.Error(w, http.StatusNotFound, "not_found", catalog.MsgUnknownCategory)
		case errors.Is(err, ErrNoSuggestions):
			httpx.Error(w, http.StatusNotFound, "no_suggestions", msgNoSuggestions)
		default:
			httpx.Error(w, http.StatusInternalServerError, "internal_error", "could not pick a suggestion")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

// parseExcludeIDs splits the comma-separated exclude_ids parameter,
// dropping empty segments so trailing commas do not exclude "".
func parseExcludeIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
