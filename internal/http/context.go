package http

import (
	"context"

	"github.com/corkboardhq/corkd/internal/domain"
)

type ctxKey string

const ctxKeyPrincipal ctxKey = "principal"

func withPrincipal(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, user)
}

// PrincipalFromContext returns the authenticated user attached by the
// gatekeeper. Handlers behind the gatekeeper can rely on it being present.
func PrincipalFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(ctxKeyPrincipal).(domain.User)
	return user, ok
}
