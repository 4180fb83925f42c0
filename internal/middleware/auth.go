package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type sessionResolver interface {
	Resolve(ctx context.Context, token string) (*auth.Identity, error)
}

type AuthMiddlewareHandler struct {
	sessions     sessionResolver
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(sessions sessionResolver) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		sessions: sessions,
		allowedPaths: map[string]bool{
			"/":         true,
			"/register": true,
			"/login":    true,
			"/logout":   true,
		},
	}
}

// IsAPIPath tells whether the path answers with JSON rather than HTML.
func IsAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/") ||
		(strings.HasPrefix(path, "/train/") && strings.HasSuffix(path, "/complete"))
}

// AuthCheck resolves the session cookie into an auth.Identity stored in the
// request context. Paths other than the public ones require an identity:
// HTML routes are redirected to /login, API routes get a 401 JSON error.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if token := auth.TokenFromRequest(r); token != "" {
				identity, err := h.sessions.Resolve(ctx, token)
				switch {
				case err == nil:
					r = r.WithContext(auth.WithIdentity(r.Context(), *identity))
				case errors.Is(err, auth.ErrSessionNotFound):
					log.Tracef("[auth middleware] stale session token => %s", r.URL.Path)
				default:
					log.Errorf("[auth middleware] resolve session => %s: %s", r.URL.Path, err)
					span.RecordError(err)
				}
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "public")
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := auth.IdentityFromContext(r.Context()); !ok {
				log.Tracef("[auth middleware] unauthorized => %s", r.URL.Path)
				span.SetStatus(codes.Error, "unauthorized")
				if IsAPIPath(r.URL.Path) {
					pkg.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
