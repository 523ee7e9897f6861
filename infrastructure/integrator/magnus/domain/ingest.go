package magnusdomain

import "time"

type IngestStatus string

const (
	IngestStatusPending    IngestStatus = "pending"
	IngestStatusProcessing IngestStatus = "processing"
	IngestStatusCompleted  IngestStatus = "completed"
	IngestStatusFailed     IngestStatus = "failed"
)

// IngestSession é a resposta do POST /ingest/csv
type IngestSession struct {
	SessionID       string        `json:"session_id"`
	Source          SessionSource `json:"source"`
	Status          IngestStatus  `json:"status"`
	RecordsIngested int           `json:"records_ingested"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// BankCredential é o corpo aceito por banco em /ingest/live-api
type BankCredential struct {
	APIKey string `json:"api_key"`
}

type LiveBankConnectionRequest struct {
	BankCredentials map[string]BankCredential `json:"bank_credentials"`
}

type BankConnectionStatus string

const (
	BankConnectionPending   BankConnectionStatus = "pending"
	BankConnectionConnected BankConnectionStatus = "connected"
	BankConnectionFailed    BankConnectionStatus = "failed"
)

type BankConnection struct {
	ID           string               `json:"id"`
	BankName     string               `json:"bank_name"`
	Status       BankConnectionStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	LastSyncedAt *time.Time           `json:"last_synced_at,omitempty"`
}

type LiveBankConnection struct {
	Connections []BankConnection `json:"connections"`
}
