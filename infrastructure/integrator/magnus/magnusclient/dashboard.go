package magnusclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
)

// FetchDashboard faz exatamente um GET em {base}/dashboard/{sessionID}.
// Respostas fora de 2xx viram *magnusdomain.ResponseError com o corpo como mensagem.
func (c *MagnusClient) FetchDashboard(ctx context.Context, sessionID string) (*magnusdomain.DashboardSnapshot, error) {
	endpoint := c.endpoint("dashboard", url.PathEscape(sessionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição do dashboard")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição do dashboard")
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		message := string(body)
		if message == "" {
			message = fmt.Sprintf("Failed to load dashboard data (%d)", resp.StatusCode)
		}

		logrus.WithFields(logrus.Fields{
			"session_id":  sessionID,
			"status_code": resp.StatusCode,
		}).Warn("magnus: dashboard respondeu com erro")

		return nil, &magnusdomain.ResponseError{StatusCode: resp.StatusCode, Message: message}
	}

	var snapshot magnusdomain.DashboardSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o snapshot do dashboard")
	}

	return &snapshot, nil
}
