package magnusclient

import (
	"context"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
	"github.com/vfg2006/magnus-console/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	FetchDashboard(ctx context.Context, sessionID string) (*magnusdomain.DashboardSnapshot, error)
	UploadCSV(ctx context.Context, filename string, file io.Reader) (*magnusdomain.IngestSession, error)
	ConnectBanks(ctx context.Context, credentials map[string]string) (*magnusdomain.LiveBankConnection, error)
	Ping(ctx context.Context) error
}

type MagnusClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente da API da Magnus a partir da configuração
func NewClient(cfg *config.Config) Client {
	return &MagnusClient{
		httpClient: &http.Client{
			Timeout: cfg.Magnus.Timeout,
		},
		baseURL: config.NormalizeBaseURL(cfg.Magnus.BaseURL),
	}
}

// NewClientWithHTTP permite injetar o http.Client (usado nos testes e pela CLI)
func NewClientWithHTTP(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &MagnusClient{
		httpClient: httpClient,
		baseURL:    config.NormalizeBaseURL(baseURL),
	}
}

func (c *MagnusClient) endpoint(parts ...string) string {
	return c.baseURL + "/" + strings.Join(parts, "/")
}

// readDetail extrai a mensagem {"detail": "..."} das respostas de erro da ingestão.
// Quando o corpo não é JSON ou não tem detail, devolve o fallback.
func readDetail(resp *http.Response, fallback string) *magnusdomain.ResponseError {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &magnusdomain.ResponseError{StatusCode: resp.StatusCode, Message: fallback}
	}

	var payload magnusdomain.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		return &magnusdomain.ResponseError{StatusCode: resp.StatusCode, Message: fallback}
	}

	return &magnusdomain.ResponseError{StatusCode: resp.StatusCode, Message: payload.Detail}
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
