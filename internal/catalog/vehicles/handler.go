package vehicles

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/merhebia-finest/tilbud/internal/catalog/shared"
	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
)

// Handler serves the /products endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountReadRoutes registers the endpoints any authenticated user may call.
func (h *Handler) MountReadRoutes(r chi.Router) {
	r.Get("/products", h.List)
	r.Get("/products/get-all", h.ListOptions)
}

// MountAdminRoutes registers the admin-gated write endpoints.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Post("/products", h.Create)
	r.Put("/products/{id}", h.Update)
	r.Delete("/products/{id}", h.Delete)
	r.Patch("/products/{id}/toggle-active", h.ToggleActive)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, _, err := h.service.List(r.Context(), shared.ParseListFilters(r))
	if err != nil {
		h.logger.Error("list vehicles failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, vehicles, "products fetched")
}

func (h *Handler) ListOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.ListOptions(r.Context())
	if err != nil {
		h.logger.Error("list vehicle options failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, options, "products fetched")
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := httpx.Validate(req); err != nil {
		httpx.RespondError(w, err)
		return
	}

	vehicle, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create vehicle failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusCreated, vehicle, "product created")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := httpx.Validate(req); err != nil {
		httpx.RespondError(w, err)
		return
	}

	vehicle, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, vehicle, "product updated")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, nil, "product deleted")
}

func (h *Handler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.service.ToggleActive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, vehicle, "product status updated")
}
