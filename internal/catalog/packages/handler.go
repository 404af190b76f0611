package packages

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/merhebia-finest/tilbud/internal/catalog/shared"
	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
)

// Handler serves the /packages endpoints.
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
	r.Get("/packages", h.List)
	r.Get("/packages/{id}", h.Show)
}

// MountAdminRoutes registers the admin-gated write endpoints.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Post("/packages", h.Create)
	r.Put("/packages/{id}", h.Update)
	r.Delete("/packages/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, _, err := h.service.List(r.Context(), shared.ParseListFilters(r))
	if err != nil {
		h.logger.Error("list packages failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, list, "packages fetched")
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, pkg, "package fetched")
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

	pkg, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create package failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusCreated, pkg, "package created")
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

	pkg, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, pkg, "package updated")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, nil, "package deleted")
}
