package ingesting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magnus-console/internal/config"
)

// MagnusIngestor reúne as duas formas de popular uma sessão
type MagnusIngestor interface {
	Ingestor
	BankLinker
}

// BankSetupRequest é a seleção enviada pelo formulário de APIs bancárias
type BankSetupRequest struct {
	Banks       []string          `json:"banks"`
	Credentials map[string]string `json:"credentials"`
}

type IngestService interface {
	UploadCSV(ctx context.Context, file FileUpload, onProgress ProgressFunc) (UploadStatus, error)
	ConnectBanks(ctx context.Context, request BankSetupRequest) (ConnectStatus, error)
	Banks() []Bank
}

type Service struct {
	ingestor   MagnusIngestor
	redirector Redirector
}

func NewService(cfg *config.Config, ingestor MagnusIngestor) IngestService {
	return &Service{
		ingestor:   ingestor,
		redirector: NewRedirector(cfg),
	}
}

func (s *Service) UploadCSV(ctx context.Context, file FileUpload, onProgress ProgressFunc) (UploadStatus, error) {
	uploader := NewUploader(s.ingestor, s.redirector, onProgress)

	status, err := uploader.Upload(ctx, file)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"filename": file.Name,
			"phase":    status.Phase,
			"error":    err.Error(),
		}).Warn("ingest: upload de CSV não concluído")
		return status, err
	}

	return status, nil
}

// ConnectBanks replica a interação do formulário: marca cada banco, informa as chaves e conecta
func (s *Service) ConnectBanks(ctx context.Context, request BankSetupRequest) (ConnectStatus, error) {
	connector := NewBankConnector(s.ingestor, s.redirector)

	// Toggle desmarca um banco repetido, então cada ID entra uma única vez
	seen := make(map[string]struct{}, len(request.Banks))
	for _, bankID := range request.Banks {
		if _, ok := seen[bankID]; ok {
			continue
		}
		seen[bankID] = struct{}{}

		if err := connector.Toggle(bankID); err != nil {
			return connector.Status(), err
		}
	}

	for _, bankID := range request.Banks {
		if apiKey, ok := request.Credentials[bankID]; ok {
			connector.SetCredential(bankID, apiKey)
		}
	}

	status, err := connector.Connect(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"banks": request.Banks,
			"phase": status.Phase,
			"error": err.Error(),
		}).Warn("ingest: conexão bancária não concluída")
		return status, err
	}

	return status, nil
}

func (s *Service) Banks() []Bank {
	return SupportedBanks
}
