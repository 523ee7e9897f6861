package magnusclient

import (
	"bytes"
	"context"
	"net/http"

	"github.com/pkg/errors"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
)

const connectFallbackMessage = "Unable to establish bank connections. Please verify credentials and retry."

// ConnectBanks registra as credenciais dos bancos selecionados em {base}/ingest/live-api
func (c *MagnusClient) ConnectBanks(ctx context.Context, credentials map[string]string) (*magnusdomain.LiveBankConnection, error) {
	request := magnusdomain.LiveBankConnectionRequest{
		BankCredentials: make(map[string]magnusdomain.BankCredential, len(credentials)),
	}
	for bank, apiKey := range credentials {
		request.BankCredentials[bank] = magnusdomain.BankCredential{APIKey: apiKey}
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar credenciais bancárias")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("ingest", "live-api"), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de conexão bancária")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar bancos")
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, readDetail(resp, connectFallbackMessage)
	}

	var connection magnusdomain.LiveBankConnection
	if err := json.NewDecoder(resp.Body).Decode(&connection); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta da conexão bancária")
	}

	return &connection, nil
}
