package favorites

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"suggestbox/internal/catalog"
	"suggestbox/internal/httpx"
)

const (
	msgAlreadyFavorite = "موجود في المفضلة مسبقاً"
	msgItemNotFound    = "العنصر غير موجود"
	msgNotInFavorites  = "العنصر غير موجود في المفضلة"
	msgRemoved         = "تم الحذف من المفضلة"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

func (h *HTTPHandler) Register(r chi.Router) {
	r.Post("/favorites", h.Add)
	r.Get("/favorites", h.List)
	r.Delete("/favorites/{item_id}", h.Remove)
	r.Get("/favorites/check/{item_id}", h.Check)
}

type addRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Category string `json:"category" validate:"required,oneof=games movies series youtube"`
}

// Add handles POST /api/favorites.
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "bad_request", "Invalid request body")
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.ValidationFailed(w, details)
		return
	}

	fav, err := h.svc.Add(r.Context(), req.ItemID, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicate):
			httpx.Error(w, http.StatusBadRequest, "already_favorite", msgAlreadyFavorite)
		case errors.Is(err, catalog.ErrItemNotFound), errors.Is(err, catalog.ErrUnknownCategory):
			httpx.Error(w, http.StatusNotFound, "not_found", msgItemNotFound)
		default:
			httpx.Error(w, http.StatusInternalServerError, "internal_error", "could not add favorite")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, fav)
}

// Remove handles DELETE /api/favorites/{item_id}.
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	if err := h.svc.Remove(r.Context(), itemID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "not_found", msgNotInFavorites)
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "internal_error", "could not remove favorite")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": msgRemoved})
}

// List handles GET /api/favorites, newest first.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	favs, err := h.svc.List(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "internal_error", "could not list favorites")
		return
	}
	if favs == nil {
		favs = []Favorite{}
	}
	httpx.JSON(w, http.StatusOK, map[string][]Favorite{"favorites": favs})
}

// Check handles GET /api/favorites/check/{item_id}.
func (h *HTTPHandler) Check(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	exists, err := h.svc.Exists(r.Context(), itemID)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "internal_error", "could not check favorite")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"is_favorite": exists})
}
