package http

import (
	"net/http"
	"strings"

	"github.com/corkboardhq/corkd/internal/service"
	"github.com/corkboardhq/corkd/pkg/httpx"
	"github.com/corkboardhq/corkd/pkg/slogx"
)

// openPrefixes are served without authentication in addition to the marker
// allowlist: health probes and the API docs.
var openPrefixes = []string{"/livez", "/readyz", "/swagger/"}

// bypassesAuth reports whether a request skips the gatekeeper entirely:
// auth, websocket and error routes, plus CORS preflights.
func bypassesAuth(r *http.Request) bool {
	if r.Method == http.MethodOptions {
		return true
	}

	path := r.URL.Path
	for _, marker := range []string{"auth", "ws", "error"} {
		if strings.Contains(path, marker) {
			return true
		}
	}
	for _, prefix := range openPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Gatekeeper authenticates every non-allowlisted request. A missing token
// rejects with 400; an invalid or unresolvable token rejects with 404
// rather than 401/403, hiding resource existence from callers that cannot
// authenticate. On success the principal rides on the request context.
func Gatekeeper(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if bypassesAuth(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			log := slogx.FromContext(ctx)

			token := r.Header.Get("Authorization")
			if token == "" {
				log.Warn("request without bearer token")
				httpx.WriteText(w, http.StatusBadRequest,
					"Something in the request wasn't properly written, try again")
				return
			}
			token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))

			user, err := auth.ResolvePrincipal(ctx, token)
			if err != nil {
				log.Warn("token resolution failed", "err", err)
				httpx.WriteText(w, http.StatusNotFound, "Invalid Token")
				return
			}

			next.ServeHTTP(w, r.WithContext(withPrincipal(ctx, user)))
		})
	}
}
