package middleware

import (
	"net/http"
	"strings"

	"github.com/davidalonso/gamevault-backend/api/responses"
	pkgAuth "github.com/davidalonso/gamevault-backend/pkg/auth"
	"github.com/davidalonso/gamevault-backend/pkg/auth/session"
	"github.com/davidalonso/gamevault-backend/pkg/config"
	pkgerrors "github.com/davidalonso/gamevault-backend/pkg/errors"
	"github.com/davidalonso/gamevault-backend/pkg/logger"
)

const loginRedirectPath = "/login"

// Auth validates a bearer token and seeds the request context with the claims.
// Unauthenticated API paths get a 401 envelope; page paths redirect to the
// login route instead.
func Auth(cfg config.JWTConfig, verifier session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				denyUnauthenticated(w, r, logg, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				denyUnauthenticated(w, r, logg, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				denyUnauthenticated(w, r, logg, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			if claims.ID == "" {
				denyUnauthenticated(w, r, logg, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
				return
			}

			if verifier != nil {
				ok, err := verifier.HasSession(r.Context(), claims.ID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
					return
				}
				if !ok {
					denyUnauthenticated(w, r, logg, pkgerrors.New(pkgerrors.CodeUnauthorized, "session unavailable"))
					return
				}
			}

			ctx := WithUserID(r.Context(), claims.UserID.String())
			ctx = WithAccessID(ctx, claims.ID)

			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func denyUnauthenticated(w http.ResponseWriter, r *http.Request, logg *logger.Logger, err error) {
	if !strings.HasPrefix(r.URL.Path, "/api") {
		http.Redirect(w, r, loginRedirectPath, http.StatusFound)
		return
	}
	responses.WriteError(r.Context(), logg, w, err)
}
