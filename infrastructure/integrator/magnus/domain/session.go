package magnusdomain

import "time"

// SessionSource identifica a origem de uma sessão de ingestão
type SessionSource string

const (
	SessionSourceCSV  SessionSource = "csv"
	SessionSourceLive SessionSource = "live"
)

// Session representa uma execução de ingestão (upload de CSV ou conexão bancária)
type Session struct {
	ID              string        `json:"id"`
	Source          SessionSource `json:"source"`
	RecordsIngested int           `json:"records_ingested"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// IsLive retorna verdadeiro apenas para sessões vindas de APIs bancárias.
// Qualquer outra origem é tratada como CSV no cabeçalho do dashboard.
func (s Session) IsLive() bool {
	return s.Source == SessionSourceLive
}
