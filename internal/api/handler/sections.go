package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/magnus-console/internal/api/handler/router"
	"github.com/vfg2006/magnus-console/internal/usecases/dashboarding"
	"github.com/vfg2006/magnus-console/internal/usecases/sectioning"
	"github.com/vfg2006/magnus-console/pkg/log"
)

type SectionResponse struct {
	Header  sectioning.Header `json:"header"`
	View    sectioning.View   `json:"view"`
	Loading bool              `json:"loading"`
	Error   string            `json:"error,omitempty"`
}

type MenuResponse struct {
	Items      []sectioning.MenuItem                         `json:"items"`
	Categories map[sectioning.Category][]sectioning.MenuItem `json:"categories"`
}

func GetMenu() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MenuResponse{Items: sectioning.Menu, Categories: sectioning.MenuByCategory()})
	})
}

func sectionOptions(r *http.Request, settings sectioning.SettingsInfo) sectioning.Options {
	query := r.URL.Query()
	showMedium, _ := strconv.ParseBool(query.Get("medium_risk"))

	return sectioning.Options{
		ComplianceStatus: query.Get("status"),
		ComplianceRule:   query.Get("rule"),
		ShowMediumRisk:   showMedium,
		Settings:         settings,
	}
}

// GetSection renderiza uma seção do dashboard em JSON ou, com ?format=text, em texto
func GetSection(service dashboarding.Dashboarder, settings sectioning.SettingsInfo) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		section := sectioning.ParseSection(router.Param(r, "section"))
		logger := log.ForContext(r.Context()).WithField("section", string(section))

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

		view := sectioning.Render(section, state.Data, sectionOptions(r, settings))
		logger.WithField("session_id", state.SessionID).Debug("dashboard: seção renderizada")

		if r.URL.Query().Get("format") == "text" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(status)
			if err := view.WriteText(w); err != nil {
				logger.WithError(err).Warn("dashboard: erro ao escrever seção em texto")
			}
			return
		}

		writeJSON(w, status, SectionResponse{
			Header:  sectioning.BuildHeader(state.Data),
			View:    view,
			Loading: state.Loading,
			Error:   state.Error,
		})
	})
}
