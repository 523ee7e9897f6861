package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magnus-console/internal/domain"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
)

// RoleMiddleware restringe o acesso aos perfis informados
func RoleMiddleware(allowedRoles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			for _, role := range allowedRoles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logrus.Warningf("Acesso negado para %s, Role=%s", claims.Subject, claims.Role)
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}

// OperatorOnly libera ingestão e gatilhos manuais apenas para operadores
func OperatorOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleOperator)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleOperator, domain.RoleViewer)
}
