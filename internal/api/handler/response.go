package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/magnus-console/internal/usecases/authenticating"
	"github.com/vfg2006/magnus-console/internal/usecases/dashboarding"
	"github.com/vfg2006/magnus-console/internal/usecases/ingesting"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
	"github.com/vfg2006/magnus-console/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Warn("erro ao serializar resposta")
	}
}

// writeUsecaseError traduz os erros tipados dos casos de uso para o formato da API
func writeUsecaseError(w http.ResponseWriter, err error) {
	var (
		dashboardErr *dashboarding.DashboardError
		ingestErr    *ingesting.IngestError
		authErr      *authenticating.AuthError
	)

	switch {
	case errors.As(err, &ingestErr):
		details := map[string]any{}
		if len(ingestErr.Messages) > 0 {
			details["messages"] = ingestErr.Messages
		}
		if len(ingestErr.Fields) > 0 {
			details["fields"] = ingestErr.Fields
		}
		if len(details) == 0 {
			apiErrors.WriteError(w, ingestErr.Code, ingestErr.Err.Error(), nil)
			return
		}
		apiErrors.WriteError(w, ingestErr.Code, ingestErr.Err.Error(), details)
	case errors.As(err, &dashboardErr):
		apiErrors.WriteError(w, dashboardErr.Code, dashboardErr.Err.Error(), nil)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
