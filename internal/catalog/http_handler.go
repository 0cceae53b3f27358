package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"suggestbox/internal/httpx"
)

// MsgUnknownCategory is the Arabic client-facing message for a category
// outside the fixed set.
const MsgUnknownCategory = "الفئة غير موجودة"

const (
	defaultLimit = 20
	maxLimit     = 100
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

func (h *HTTPHandler) Register(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/genres/{category}", h.ListGenres)
	r.Get("/all/{category}", h.ListItems)
}

// ListCategories handles GET /api/categories.
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.Categories(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "internal_error", "could not list categories")
		return
	}
	httpx.JSON(w, http.StatusOK, summaries)
}

// ListGenres handles GET /api/genres/{category}.
func (h *HTTPHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	genres, err := h.svc.Genres(r.Context(), category)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			httpx.Error(w, http.StatusNotFound, "not_found", MsgUnknownCategory)
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "internal_error", "could not list genres")
		return
	}
	if genres == nil {
		genres = []string{}
	}
	httpx.JSON(w, http.StatusOK, map[string][]string{"genres": genres})
}

type itemsResponse struct {
	Items []ItemWithURL `json:"items"`
	Total int           `json:"total"`
	Skip  int           `json:"skip"`
	Limit int           `json:"limit"`
}

// ListItems handles GET /api/all/{category}.
func (h *HTTPHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	if skip < 0 {
		skip = 0
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	items, total, err := h.svc.Items(r.Context(), category, skip, limit)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			httpx.Error(w, http.StatusNotFound, "not_found", MsgUnknownCategory)
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "internal_error", "could not list items")
		return
	}
	if items == nil {
		items = []ItemWithURL{}
	}
	httpx.JSON(w, http.StatusOK, itemsResponse{Items: items, Total: total, Skip: skip, Limit: limit})
}
