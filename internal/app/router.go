package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/merhebia-finest/tilbud/internal/auth"
	"github.com/merhebia-finest/tilbud/internal/catalog/optionpackages"
	"github.com/merhebia-finest/tilbud/internal/catalog/packages"
	"github.com/merhebia-finest/tilbud/internal/catalog/vehicles"
	"github.com/merhebia-finest/tilbud/internal/observability"
	"github.com/merhebia-finest/tilbud/internal/offer"
	"github.com/merhebia-finest/tilbud/internal/settings"
	"github.com/merhebia-finest/tilbud/internal/users"
	"github.com/merhebia-finest/tilbud/jobs"
	"github.com/merhebia-finest/tilbud/report"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger                *slog.Logger
	Config                *Config
	AuthMiddleware        auth.Middleware
	AuthHandler           *auth.Handler
	UsersHandler          *users.Handler
	VehiclesHandler       *vehicles.Handler
	PackagesHandler       *packages.Handler
	OptionPackagesHandler *optionpackages.Handler
	SettingsHandler       *settings.Handler
	OfferHandler          *offer.Handler
	ReportHandler         *report.Handler
	JobHandler            *jobs.Handler
	Metrics               *observability.Metrics
}

// NewRouter constructs the chi.Router with the API route tree. Login is
// public; every other business route requires a valid session, and write
// access to catalog, users and settings is restricted to admins.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)
	r.Use(params.AuthMiddleware.Authenticate)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	params.AuthHandler.MountRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(params.AuthMiddleware.RequireUser)
		params.VehiclesHandler.MountReadRoutes(r)
		params.PackagesHandler.MountReadRoutes(r)
		params.OptionPackagesHandler.MountReadRoutes(r)
		params.SettingsHandler.MountReadRoutes(r)
		params.OfferHandler.MountUserRoutes(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(params.AuthMiddleware.RequireAdmin)
		params.UsersHandler.MountRoutes(r)
		params.VehiclesHandler.MountAdminRoutes(r)
		params.PackagesHandler.MountAdminRoutes(r)
		params.OptionPackagesHandler.MountAdminRoutes(r)
		params.SettingsHandler.MountAdminRoutes(r)
		params.OfferHandler.MountAdminRoutes(r)
	})

	if params.ReportHandler != nil {
		r.Route("/report", params.ReportHandler.MountRoutes)
	}
	if params.JobHandler != nil {
		r.Route("/jobs", params.JobHandler.MountRoutes)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
