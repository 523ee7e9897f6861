package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magnus-console/internal/api/handler/router"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
)

const (
	CronJobTypeSnapshotRefresh = "snapshot-refresh"
	CronJobTypeAll             = "all"
)

// CronJob é um agendador que aceita disparo manual
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	SnapshotRefreshService CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.SnapshotRefreshService != nil {
		jobs[CronJobTypeSnapshotRefresh] = s.SnapshotRefreshService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := router.Param(r, "type")
		logrus.WithField("job", cronType).Info("INIT - RunCronJob")

		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()
		started := map[string]bool{}

		switch cronType {
		case CronJobTypeAll:
			for name, job := range jobs {
				started[name] = job.TriggerManualSync()
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot-refresh, all", nil)
				return
			}
			started[cronType] = job.TriggerManualSync()
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}
		writeJSON(w, http.StatusOK, status)
	})
}
