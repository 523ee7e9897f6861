package ingesting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
	"github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/mocks"
	"github.com/vfg2006/magnus-console/internal/config"
	"go.uber.org/mock/gomock"
)

func TestService_ConnectBanks_RepeatedBankSelectedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockMagnusIntegrator(ctrl)
	mockIntegrator.EXPECT().
		ConnectBanks(gomock.Any(), map[string]string{"hdfc": "KEY12345"}).
		Return(&magnusdomain.LiveBankConnection{Connections: []magnusdomain.BankConnection{
			{ID: "c1", BankName: "hdfc", Status: magnusdomain.BankConnectionConnected},
		}}, nil).
		Times(1)

	cfg := &config.Config{Ingest: config.Ingest{RedirectBaseURL: "http://localhost:3000", RedirectDelay: time.Second}}
	service := NewService(cfg, mockIntegrator)

	status, err := service.ConnectBanks(context.Background(), BankSetupRequest{
		Banks:       []string{"hdfc", "hdfc"},
		Credentials: map[string]string{"hdfc": "KEY12345"},
	})

	require.NoError(t, err)
	assert.Equal(t, ConnectSuccess, status.Phase)
	assert.Equal(t, 1, status.ConnectedCount)
	assert.Contains(t, status.SessionID, LiveSessionPrefix)
}
