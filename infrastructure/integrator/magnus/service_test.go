package magnus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
	"github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/mocks"
	"github.com/vfg2006/magnus-console/internal/config"
	"go.uber.org/mock/gomock"
)

func TestMagnusService_CheckConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	tests := []struct {
		name    string
		setup   func()
		want    bool
		wantErr bool
	}{
		{
			name: "API disponível",
			setup: func() {
				mockClient.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			want: true,
		},
		{
			name: "API indisponível",
			setup: func() {
				mockClient.EXPECT().Ping(gomock.Any()).Return(errors.New("ping falhou com status: 503 Service Unavailable"))
			},
			want:    false,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			ok, err := service.CheckConnection(context.Background())

			assert.Equal(t, tt.want, ok)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMagnusService_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	t.Run("Repassa o erro da API sem alterar a mensagem", func(t *testing.T) {
		apiErr := &magnusdomain.ResponseError{StatusCode: 404, Message: "not found"}
		mockClient.EXPECT().FetchDashboard(gomock.Any(), "S1").Return(nil, apiErr)

		snapshot, err := service.GetDashboard(context.Background(), "S1")

		assert.Nil(t, snapshot)
		assert.Same(t, apiErr, err)
	})

	t.Run("Retorna o snapshot", func(t *testing.T) {
		mockClient.EXPECT().FetchDashboard(gomock.Any(), "S2").Return(&magnusdomain.DashboardSnapshot{SessionID: "S2"}, nil)

		snapshot, err := service.GetDashboard(context.Background(), "S2")

		assert.NoError(t, err)
		assert.Equal(t, "S2", snapshot.SessionID)
	})
}
