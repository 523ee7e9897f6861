package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
	"github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/mocks"
	"github.com/vfg2006/magnus-console/internal/config"
	"github.com/vfg2006/magnus-console/internal/domain"
	"github.com/vfg2006/magnus-console/internal/usecases/authenticating"
	"go.uber.org/mock/gomock"
)

const validHeader = "date,vendor_id,vendor_name,amount,currency,payment_method,bank_name,gst_number,pan_number,payment_purpose,receiving_bank,receiving_account,country\n"

func testConfig(secret string) *config.Config {
	return &config.Config{
		Magnus:    config.Magnus{BaseURL: "http://magnus.test/api/v1"},
		Auth:      config.Auth{Secret: secret},
		Dashboard: config.Dashboard{WaitTimeout: 2 * time.Second},
		Ingest:    config.Ingest{RedirectBaseURL: "http://localhost:3000"},
	}
}

func execute(t *testing.T, deps Deps, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand(deps)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func snapshot(sessionID string) *magnusdomain.DashboardSnapshot {
	return &magnusdomain.DashboardSnapshot{
		SessionID:   sessionID,
		GeneratedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		Session:     magnusdomain.Session{ID: sessionID, Source: magnusdomain.SessionSourceCSV, RecordsIngested: 2},
		Overview: magnusdomain.OverviewPayload{
			Metrics: magnusdomain.OverviewMetrics{
				TotalTransactions: 2,
				TotalVolume:       decimal.RequireFromString("250"),
				UniqueVendors:     1,
			},
		},
		Fraud: magnusdomain.FraudPayload{
			HighRisk: []magnusdomain.FraudTransaction{{ID: "F1", RiskScore: 0.91}},
		},
	}
}

func TestSectionsCommand(t *testing.T) {
	out, err := execute(t, Deps{Config: testConfig("")}, "sections")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "MAIN\n"))
	assert.Contains(t, out, "audit-ledger")
	assert.Contains(t, out, "OTHERS\n")
	assert.Contains(t, out, "Multi-Bank")
}

func TestDashboardCommand(t *testing.T) {
	t.Run("Sem sessão", func(t *testing.T) {
		_, err := execute(t, Deps{Config: testConfig("")}, "dashboard")
		assert.ErrorIs(t, err, ErrSessionRequired)
	})

	t.Run("Seção fraud", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)
		magnus.EXPECT().GetDashboard(gomock.Any(), "S1").Return(snapshot("S1"), nil)

		out, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus}, "dashboard", "--session", "S1", "--section", "fraud")
		require.NoError(t, err)

		assert.Contains(t, out, "Session S1 (csv)")
		assert.Contains(t, out, "Fraud Detection")
		assert.Contains(t, out, "F1")
	})

	t.Run("Erro da API é repassado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)
		magnus.EXPECT().GetDashboard(gomock.Any(), "missing").
			Return(nil, &magnusdomain.ResponseError{StatusCode: 404, Message: "Session not found"})

		_, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus}, "dashboard", "-s", "missing")
		require.Error(t, err)
		assert.Equal(t, "Session not found", err.Error())
	})

	t.Run("Saída JSON", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)
		magnus.EXPECT().GetDashboard(gomock.Any(), "S1").Return(snapshot("S1"), nil)

		out, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus}, "dashboard", "-s", "S1", "--json")
		require.NoError(t, err)

		assert.Contains(t, out, `"session_id": "S1"`)
		assert.Contains(t, out, `"section": "overview"`)
	})
}

func TestIngestCSVCommand(t *testing.T) {
	t.Run("Colunas ausentes não chegam à API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)

		path := writeCSV(t, "partial.csv", "date,vendor_id,amount\n2025-01-01,V1,10\n")
		out, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus}, "ingest", "csv", path)

		require.Error(t, err)
		assert.Contains(t, out, "Missing required column: vendor_name")
		assert.Contains(t, out, "Missing required column: country")
	})

	t.Run("Extensão inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)

		path := writeCSV(t, "report.xlsx", validHeader)
		out, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus}, "ingest", "csv", path)

		require.Error(t, err)
		assert.Contains(t, out, "Unsupported file. Please upload a .csv file under 50 MB.")
	})

	t.Run("Envio com sucesso sem seguir redirecionamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)
		magnus.EXPECT().IngestCSV(gomock.Any(), "tx.csv", gomock.Any()).
			Return(&magnusdomain.IngestSession{SessionID: "abc-123", RecordsIngested: 42}, nil)

		path := writeCSV(t, "tx.csv", validHeader+"2025-01-01,V1,Acme,10,INR,NEFT,HDFC,G,P,rent,ICICI,123,IN\n")
		out, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus}, "ingest", "csv", path, "--follow=false")

		require.NoError(t, err)
		assert.Contains(t, out, "[100%] success")
		assert.Contains(t, out, "Session abc-123 · 42 records")
		assert.Contains(t, out, "Dashboard: http://localhost:3000/dashboard?session=abc-123")
	})

	t.Run("Segue para o overview da nova sessão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)
		gomock.InOrder(
			magnus.EXPECT().IngestCSV(gomock.Any(), "tx.csv", gomock.Any()).
				Return(&magnusdomain.IngestSession{SessionID: "abc-123", RecordsIngested: 2}, nil),
			magnus.EXPECT().GetDashboard(gomock.Any(), "abc-123").Return(snapshot("abc-123"), nil),
		)

		path := writeCSV(t, "tx.csv", validHeader)
		out, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus}, "ingest", "csv", path)

		require.NoError(t, err)
		assert.Contains(t, out, "Session abc-123 (csv)")
		assert.Contains(t, out, "Overview")
	})
}

func TestIngestBanksCommand(t *testing.T) {
	t.Run("Lista bancos", func(t *testing.T) {
		out, err := execute(t, Deps{Config: testConfig("")}, "ingest", "banks", "--list")
		require.NoError(t, err)
		assert.Contains(t, out, "HDFC Bank")
		assert.Contains(t, out, "coming soon")
	})

	t.Run("Nenhum banco selecionado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)

		out, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus}, "ingest", "banks")
		require.Error(t, err)
		assert.Contains(t, out, "Select at least one bank before starting API setup.")
	})

	t.Run("Chave curta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)

		out, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus}, "ingest", "banks", "--bank", "hdfc=short")
		require.Error(t, err)
		assert.Contains(t, out, "hdfc: Please enter a valid API key (8+ characters).")
	})

	t.Run("Conexão com sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)
		magnus.EXPECT().ConnectBanks(gomock.Any(), map[string]string{"hdfc": "KEY12345", "icici": "KEY67890"}).
			Return(&magnusdomain.LiveBankConnection{Connections: []magnusdomain.BankConnection{
				{ID: "c1", BankName: "hdfc", Status: "connected"},
				{ID: "c2", BankName: "icici", Status: "connected"},
			}}, nil)

		out, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus},
			"ingest", "banks", "--bank", "hdfc=KEY12345", "--bank", "icici=KEY67890")
		require.NoError(t, err)

		assert.Contains(t, out, "Bank connections established. Loading your dashboard.")
		assert.Contains(t, out, "Session sess_live_")
		assert.Contains(t, out, "Dashboard: http://localhost:3000/dashboard?session=sess_live_")
	})
}

func TestPingCommand(t *testing.T) {
	t.Run("API disponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)
		magnus.EXPECT().CheckConnection(gomock.Any()).Return(true, nil)

		out, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus}, "ping")
		require.NoError(t, err)
		assert.Contains(t, out, "http://magnus.test/api/v1 OK")
	})

	t.Run("API indisponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		magnus := mocks.NewMockMagnusIntegrator(ctrl)
		down := errors.New("connection refused")
		magnus.EXPECT().CheckConnection(gomock.Any()).Return(false, down)

		_, err := execute(t, Deps{Config: testConfig(""), Integrator: magnus}, "ping")
		assert.ErrorIs(t, err, down)
	})
}

func TestTokenCommand(t *testing.T) {
	t.Run("Gera token válido", func(t *testing.T) {
		cfg := testConfig("segredo-de-teste")
		out, err := execute(t, Deps{Config: cfg}, "token", "--subject", "ops", "--role", "viewer")
		require.NoError(t, err)

		claims, err := authenticating.NewService(cfg).ValidateToken(strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, "ops", claims.Subject)
		assert.Equal(t, domain.RoleViewer, claims.Role)
	})

	t.Run("Autenticação desabilitada", func(t *testing.T) {
		_, err := execute(t, Deps{Config: testConfig("")}, "token")
		assert.ErrorIs(t, err, authenticating.ErrAuthDisabled)
	})

	t.Run("Perfil inválido", func(t *testing.T) {
		_, err := execute(t, Deps{Config: testConfig("segredo-de-teste")}, "token", "--role", "admin")
		assert.ErrorIs(t, err, authenticating.ErrInvalidRole)
	})
}
