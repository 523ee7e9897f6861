package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vfg2006/magnus-console/internal/usecases/dashboarding"
	"github.com/vfg2006/magnus-console/internal/usecases/sectioning"
	"github.com/vfg2006/magnus-console/pkg/log"
)

type DashboardResponse struct {
	Header sectioning.Header  `json:"header"`
	State  dashboarding.State `json:"state"`
}

// sessionParam aceita ?session= (usado no redirecionamento) e ?session_id=
func sessionParam(r *http.Request) string {
	query := r.URL.Query()
	if session := query.Get("session"); session != "" {
		return session
	}
	return query.Get("session_id")
}

// loadState aponta o provider para a sessão pedida (ou mantém a atual) e espera a busca
func loadState(r *http.Request, service dashboarding.Dashboarder, provider *dashboarding.Provider) (dashboarding.State, error) {
	sessionID := sessionParam(r)
	if sessionID == "" {
		sessionID = provider.SessionID()
	}
	if sessionID == "" {
		return provider.State(), nil
	}
	return service.Load(r.Context(), provider, sessionID)
}

// stateStatus devolve 202 enquanto a busca não termina e 502 quando a API falhou
func stateStatus(err error) (int, bool) {
	switch {
	case err == nil:
		return http.StatusOK, true
	case errors.Is(err, dashboarding.ErrStillLoading):
		return http.StatusAccepted, true
	case errors.Is(err, dashboarding.ErrDashboardFailed):
		return http.StatusBadGateway, true
	default:
		return 0, false
	}
}

func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		provider, err := dashboarding.FromContext(r.Context())
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		state, err := loadState(r, service, provider)
		status, ok := stateStatus(err)
		if !ok {
			writeUsecaseError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"session_id":  state.SessionID,
			"status_code": status,
			"loading":     state.Loading,
		}).Debug("dashboard: snapshot entregue")

		writeJSON(w, status, DashboardResponse{Header: sectioning.BuildHeader(state.Data), State: state})
	})
}

func RefreshDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider, err := dashboarding.FromContext(r.Context())
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		state, err := service.Refresh(r.Context(), provider)
		status, ok := stateStatus(err)
		if !ok {
			writeUsecaseError(w, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"session_id":    state.SessionID,
			"refresh_count": provider.RefreshCount(),
		}).Info("dashboard: refresh solicitado")

		writeJSON(w, status, DashboardResponse{Header: sectioning.BuildHeader(state.Data), State: state})
	})
}

// DashboardEvents transmite cada mudança de estado do provider via Server-Sent Events
func DashboardEvents() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider, err := dashboarding.FromContext(r.Context())
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			writeUsecaseError(w, errors.New("streaming não suportado"))
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		states, unsubscribe := provider.Subscribe()
		defer unsubscribe()

		for {
			select {
			case <-r.Context().Done():
				return
			case state, open := <-states:
				if !open {
					return
				}
				payload, err := json.Marshal(DashboardResponse{Header: sectioning.BuildHeader(state.Data), State: state})
				if err != nil {
					log.ForContext(r.Context()).WithError(err).Warn("dashboard: erro ao serializar evento")
					continue
				}
				fmt.Fprintf(w, "event: state\ndata: %s\n\n", payload)
				flusher.Flush()
			}
		}
	})
}
