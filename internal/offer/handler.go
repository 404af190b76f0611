package offer

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/merhebia-finest/tilbud/internal/auth"
	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
	"github.com/merhebia-finest/tilbud/internal/users"
)

// Handler serves the /priceoffers endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountUserRoutes registers the endpoints any authenticated user may call.
func (h *Handler) MountUserRoutes(r chi.Router) {
	r.Post("/priceoffers", h.Create)
	r.Get("/priceoffers", h.List)
	r.Get("/priceoffers/{id}", h.Show)
	r.Get("/priceoffers/{id}/pdf", h.DownloadPDF)
}

// MountAdminRoutes registers the admin-gated endpoints.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Delete("/priceoffers/{id}", h.Delete)
}

// Create saves a new offer for the logged-in user.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	if sess == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	var req CreateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := httpx.Validate(req); err != nil {
		httpx.RespondError(w, err)
		return
	}

	creator := users.Ref{ID: sess.UserID, Email: sess.Email, Username: sess.Username}
	saved, err := h.service.Create(r.Context(), req, creator)
	if err != nil {
		h.logger.Error("create offer failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusCreated, saved, "offer created")
}

// List returns a page of offers, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	resp, err := h.service.List(r.Context(), ListRequest{Page: page, Limit: limit})
	if err != nil {
		h.logger.Error("list offers failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, resp, "offers fetched")
}

// Show returns the full offer record.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, o, "offer fetched")
}

// Delete removes an offer.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, nil, "offer deleted")
}

// DownloadPDF streams the offer document, rendering it on demand when no
// cached artifact exists yet.
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	pdf, err := h.service.LoadPDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			httpx.RespondError(w, err)
			return
		}
		h.logger.Error("offer pdf failed", slog.String("offer_id", chi.URLParam(r, "id")), slog.Any("error", err))
		httpx.Fail(w, http.StatusBadGateway, "pdf generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pdf.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf.Content)
}
