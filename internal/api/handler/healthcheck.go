package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const connectionCheckTimeout = 3 * time.Second

// ConnectionChecker verifica se a API da Magnus responde
type ConnectionChecker interface {
	CheckConnection(ctx context.Context) (bool, error)
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// ReadinessHandler responde 503 quando o serviço de ingestão da Magnus não está no ar
func ReadinessHandler(checker ConnectionChecker, viewers func() int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), connectionCheckTimeout)
		defer cancel()

		status := http.StatusOK
		magnus := "up"
		response := map[string]any{"time": time.Now().UTC()}

		if ok, err := checker.CheckConnection(ctx); !ok {
			status = http.StatusServiceUnavailable
			magnus = "down"
			if err != nil {
				response["error"] = err.Error()
			}
		}

		response["magnus"] = magnus
		if viewers != nil {
			response["viewers"] = viewers()
		}

		writeJSON(w, status, response)
	})
}
