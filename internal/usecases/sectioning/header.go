package sectioning

import (
	"time"

	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
)

// Header é o cabeçalho exibido acima de qualquer seção
type Header struct {
	SessionID        string     `json:"session_id,omitempty"`
	SessionType      string     `json:"session_type"`
	TransactionCount int        `json:"transaction_count"`
	LastUpdated      *time.Time `json:"last_updated,omitempty"`
}

// BuildHeader deriva o cabeçalho do snapshot; origem diferente de live conta como csv
func BuildHeader(snapshot *magnusdomain.DashboardSnapshot) Header {
	if snapshot == nil {
		return Header{SessionType: string(magnusdomain.SessionSourceCSV)}
	}

	sessionType := magnusdomain.SessionSourceCSV
	if snapshot.Session.IsLive() {
		sessionType = magnusdomain.SessionSourceLive
	}

	generatedAt := snapshot.GeneratedAt
	return Header{
		SessionID:        snapshot.SessionID,
		SessionType:      string(sessionType),
		TransactionCount: snapshot.Session.RecordsIngested,
		LastUpdated:      &generatedAt,
	}
}
