package dashboarding

import (
	"errors"
	"fmt"
)

var (
	ErrNoProvider       = errors.New("dashboard data accessed outside of a provider")
	ErrNoSession        = errors.New("nenhuma sessão selecionada")
	ErrProviderClosed   = errors.New("provider encerrado")
	ErrStillLoading     = errors.New("dashboard ainda carregando")
	ErrDashboardFailed  = errors.New("falha ao carregar o dashboard")
	ErrViewerIDRequired = errors.New("viewer ID is required")
)

// DashboardError carrega o código de API e a sessão envolvida
type DashboardError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	SessionID string
	Details   string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, sessionID string, details string) *DashboardError {
	return &DashboardError{
		Err:       err,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}
