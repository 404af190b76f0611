package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
	"github.com/merhebia-finest/tilbud/internal/users"
)

// Middleware resolves bearer tokens and enforces role requirements.
type Middleware struct {
	Store  *Store
	Logger *slog.Logger
}

// Authenticate resolves the Authorization header into a session on the
// request context. Requests without a token pass through anonymous; the
// Require guards reject them.
func (m Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		sess, err := m.Store.Get(r.Context(), token)
		if err != nil {
			if !errors.Is(err, ErrSessionNotFound) {
				m.Logger.Error("session lookup failed", slog.Any("error", err))
				httpx.Fail(w, http.StatusInternalServerError, "internal server error")
				return
			}
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), &sess)))
	})
}

// RequireUser rejects unauthenticated requests.
func (m Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			httpx.RespondError(w, httpx.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose session is missing or not admin.
func (m Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		if sess == nil {
			httpx.RespondError(w, httpx.ErrUnauthorized)
			return
		}
		if sess.Role != users.RoleAdmin {
			httpx.RespondError(w, httpx.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
