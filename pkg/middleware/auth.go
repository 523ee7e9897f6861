package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/magnus-console/internal/domain"
	"github.com/vfg2006/magnus-console/internal/usecases/authenticating"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyClaims contextKey = "claims"
)

// anonymousClaims é usado quando não há AUTH_SECRET: o console roda aberto, como operador
var anonymousClaims = &domain.Claims{Name: "anonymous", Role: domain.RoleOperator}

// AuthMiddleware valida o Bearer token e guarda as claims no contexto.
// Com autenticação desabilitada toda requisição recebe as claims anônimas.
func AuthMiddleware(authService authenticating.Authenticator, publicPaths ...string) func(http.Handler) http.Handler {
	public := make(map[string]struct{}, len(publicPaths))
	for _, path := range publicPaths {
		public[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authService.Enabled() {
				next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), anonymousClaims)))
				return
			}

			if _, ok := public[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}
				apiErrors.WriteError(w, code, "Invalid token", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyClaims, claims)
}

func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*domain.Claims)
	return claims, ok
}
