package settings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
)

// Handler serves the company settings endpoints.
type Handler struct {
	logger *slog.Logger
	repo   Repository
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, repo Repository) *Handler {
	return &Handler{logger: logger, repo: repo}
}

// MountReadRoutes registers the read endpoint.
func (h *Handler) MountReadRoutes(r chi.Router) {
	r.Get("/settings/company", h.Show)
}

// MountAdminRoutes registers the admin-gated write endpoint.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Put("/settings/company", h.Update)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	company, err := h.repo.Get(r.Context())
	if err != nil {
		h.logger.Error("load company settings failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, company, "settings fetched")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var c CompanySettings
	if err := httpx.DecodeJSON(r, &c); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if c.CompanyName == "" {
		httpx.Fail(w, http.StatusBadRequest, "companyName is required")
		return
	}
	if err := h.repo.Save(r.Context(), c); err != nil {
		h.logger.Error("save company settings failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, c, "settings updated")
}
