package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/merhebia-finest/tilbud/internal/auth"
	"github.com/merhebia-finest/tilbud/internal/catalog/optionpackages"
	"github.com/merhebia-finest/tilbud/internal/catalog/packages"
	"github.com/merhebia-finest/tilbud/internal/catalog/vehicles"
	"github.com/merhebia-finest/tilbud/internal/offer"
	"github.com/merhebia-finest/tilbud/internal/settings"
	"github.com/merhebia-finest/tilbud/internal/testutil"
	"github.com/merhebia-finest/tilbud/internal/users"
)

// newTestRouter wires the route tree against a miniredis session store. The
// handlers carry no services; these tests only exercise the auth gating, which
// rejects requests before any handler runs.
func newTestRouter(t *testing.T) (http.Handler, *auth.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := auth.NewStore(client, time.Hour)
	logger := testutil.Logger()

	router := NewRouter(RouterParams{
		Logger:                logger,
		Config:                &Config{AppRequestTimeout: 5 * time.Second, RateLimit: 1000},
		AuthMiddleware:        auth.Middleware{Store: store, Logger: logger},
		AuthHandler:           auth.NewHandler(logger, nil),
		UsersHandler:          users.NewHandler(logger, nil),
		VehiclesHandler:       vehicles.NewHandler(logger, nil),
		PackagesHandler:       packages.NewHandler(logger, nil),
		OptionPackagesHandler: optionpackages.NewHandler(logger, nil),
		SettingsHandler:       settings.NewHandler(logger, nil),
		OfferHandler:          offer.NewHandler(logger, nil),
	})
	return router, store
}

func token(t *testing.T, store *auth.Store, role string) string {
	t.Helper()
	tok, err := store.Create(context.Background(), auth.Session{
		UserID:   "u1",
		Username: "kari",
		Email:    "kari@merhebia.no",
		Role:     role,
		IssuedAt: time.Now(),
	})
	require.NoError(t, err)
	return tok
}

func TestHealthzIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestReadRoutesRequireSession(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/products", "/packages", "/option-packages", "/priceoffers"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusUnauthorized, rr.Code, "path %s", path)
	}
}

func TestAdminRoutesRejectSeller(t *testing.T) {
	router, store := newTestRouter(t)
	tok := token(t, store, users.RoleSeller)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUnknownTokenIsUnauthorized(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer deadbeef")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
