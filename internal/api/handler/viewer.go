package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/magnus-console/internal/usecases/dashboarding"
	"github.com/vfg2006/magnus-console/pkg/log"
	"github.com/vfg2006/magnus-console/pkg/middleware"
)

const (
	ViewerIDHeader = "X-Viewer-ID"
	ViewerCookie   = "magnus_viewer"
	viewerMaxAge   = 30 * 24 * time.Hour
)

// ViewerMiddleware identifica o visitante e coloca o provider dele no contexto.
// O cookie tem precedência sobre o header, que serve a clientes sem cookie.
// Sem nenhum dos dois, um novo ID é gerado e devolvido em ambos.
// Com autenticação ativa o provider fica isolado por subject do token: o mesmo
// ID apresentado por outro usuário abre outro provider.
func ViewerMiddleware(service dashboarding.Dashboarder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var viewerID string
			if cookie, err := r.Cookie(ViewerCookie); err == nil {
				viewerID = cookie.Value
			}
			if viewerID == "" {
				viewerID = r.Header.Get(ViewerIDHeader)
			}

			if viewerID == "" {
				viewerID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     ViewerCookie,
					Value:    viewerID,
					Path:     "/",
					MaxAge:   int(viewerMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				log.ForContext(r.Context()).WithField("viewer_id", viewerID).Debug("dashboard: novo visitante")
			}
			w.Header().Set(ViewerIDHeader, viewerID)

			provider, err := service.Provider(viewerKey(r, viewerID))
			if err != nil {
				writeUsecaseError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(dashboarding.WithProvider(r.Context(), provider)))
		})
	}
}

func viewerKey(r *http.Request, viewerID string) string {
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && claims.Subject != "" {
		return claims.Subject + "/" + viewerID
	}
	return viewerID
}
