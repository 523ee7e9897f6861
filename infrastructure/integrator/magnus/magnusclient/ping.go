package magnusclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Ping verifica se o serviço de ingestão está no ar
func (c *MagnusClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("ingest", "ping"), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição de ping")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar o ping")
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return fmt.Errorf("ping falhou com status: %s", resp.Status)
	}

	return nil
}
