package magnus

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
	"github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/magnusclient"
	"github.com/vfg2006/magnus-console/internal/config"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_integrator.go -package=mocks

type MagnusIntegrator interface {
	GetDashboard(ctx context.Context, sessionID string) (*magnusdomain.DashboardSnapshot, error)
	IngestCSV(ctx context.Context, filename string, file io.Reader) (*magnusdomain.IngestSession, error)
	ConnectBanks(ctx context.Context, credentials map[string]string) (*magnusdomain.LiveBankConnection, error)
	CheckConnection(ctx context.Context) (bool, error)
}

type MagnusService struct {
	cfg    *config.Config
	Client magnusclient.Client
}

func New(cfg *config.Config, client magnusclient.Client) MagnusIntegrator {
	return &MagnusService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MagnusService) GetDashboard(ctx context.Context, sessionID string) (*magnusdomain.DashboardSnapshot, error) {
	snapshot, err := s.Client.FetchDashboard(ctx, sessionID)
	if err != nil {
		if ctx.Err() == nil {
			logrus.WithFields(logrus.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Error("dashboard: falha ao buscar snapshot na API")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"session_id":   sessionID,
		"generated_at": snapshot.GeneratedAt,
	}).Debug("dashboard: snapshot recebido")

	return snapshot, nil
}

func (s *MagnusService) IngestCSV(ctx context.Context, filename string, file io.Reader) (*magnusdomain.IngestSession, error) {
	session, err := s.Client.UploadCSV(ctx, filename, file)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"filename": filename,
			"error":    err.Error(),
		}).Error("ingest: falha ao enviar CSV")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"session_id":       session.SessionID,
		"records_ingested": session.RecordsIngested,
	}).Info("ingest: CSV processado")

	return session, nil
}

func (s *MagnusService) ConnectBanks(ctx context.Context, credentials map[string]string) (*magnusdomain.LiveBankConnection, error) {
	banks := make([]string, 0, len(credentials))
	for bank := range credentials {
		banks = append(banks, bank)
	}

	connection, err := s.Client.ConnectBanks(ctx, credentials)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"banks": banks,
			"error": err.Error(),
		}).Error("ingest: falha ao conectar bancos")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"banks":       banks,
		"connections": len(connection.Connections),
	}).Info("ingest: bancos conectados")

	return connection, nil
}

// CheckConnection verifica se a API da Magnus responde no endpoint de ping
func (s *MagnusService) CheckConnection(ctx context.Context) (bool, error) {
	if err := s.Client.Ping(ctx); err != nil {
		return false, err
	}
	return true, nil
}
