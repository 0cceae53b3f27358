package status

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"suggestbox/internal/httpx"
)

type HTTPHandler struct {
	repo Repository
}

func NewHTTPHandler(repo Repository) *HTTPHandler {
	return &HTTPHandler{repo: repo}
}

func (h *HTTPHandler) Register(r chi.Router) {
	r.Post("/status", h.Create)
	r.Get("/status", h.List)
}

type createRequest struct {
	ClientName string `json:"client_name" validate:"required,max=128"`
}

func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
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

	check := Check{
		ID:         uuid.New().String(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := h.repo.Insert(r.Context(), check); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "internal_error", "could not store status check")
		return
	}
	httpx.JSON(w, http.StatusOK, check)
}

func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	checks, err := h.repo.List(r.Context(), listLimit)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "internal_error", "could not list status checks")
		return
	}
	if checks == nil {
		checks = []Check{}
	}
	httpx.JSON(w, http.StatusOK, checks)
}
