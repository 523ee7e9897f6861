package dashboarding

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magnus-console/internal/config"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
)

type Dashboarder interface {
	Provider(viewerID string) (*Provider, error)
	Load(ctx context.Context, provider *Provider, sessionID string) (State, error)
	Refresh(ctx context.Context, provider *Provider) (State, error)
	RefreshAll() int
	SweepIdle() int
	Viewers() int
}

type Service struct {
	registry    *Registry
	waitTimeout time.Duration
	idleTimeout time.Duration

	sweepMu   sync.Mutex
	lastSweep time.Time
}

func NewService(cfg *config.Config, fetcher Fetcher) *Service {
	return &Service{
		registry:    NewRegistry(fetcher),
		waitTimeout: cfg.Dashboard.WaitTimeout,
		idleTimeout: cfg.Dashboard.ViewerIdleTimeout,
	}
}

func (s *Service) Provider(viewerID string) (*Provider, error) {
	if viewerID == "" {
		return nil, NewDashboardError(ErrViewerIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}
	s.sweepIfDue()
	return s.registry.Get(viewerID), nil
}

// sweepIfDue remove visitantes ociosos no máximo uma vez por janela de inatividade,
// independente do agendador de snapshots
func (s *Service) sweepIfDue() {
	if s.idleTimeout <= 0 {
		return
	}

	s.sweepMu.Lock()
	now := s.registry.now()
	if now.Sub(s.lastSweep) < s.idleTimeout {
		s.sweepMu.Unlock()
		return
	}
	s.lastSweep = now
	s.sweepMu.Unlock()

	s.SweepIdle()
}

// Load aponta o provider para a sessão e espera a busca terminar
func (s *Service) Load(ctx context.Context, provider *Provider, sessionID string) (State, error) {
	provider.SetSession(sessionID)
	return s.wait(ctx, provider)
}

func (s *Service) Refresh(ctx context.Context, provider *Provider) (State, error) {
	if err := provider.Refresh(); err != nil {
		return provider.State(), NewDashboardError(err, apiErrors.ErrMissingRequiredData, "", "Abra uma sessão antes de atualizar")
	}
	return s.wait(ctx, provider)
}

func (s *Service) RefreshAll() int {
	return s.registry.RefreshAll()
}

func (s *Service) SweepIdle() int {
	removed := s.registry.Sweep(s.idleTimeout)
	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": s.registry.Len(),
		}).Info("dashboard: visitantes inativos removidos")
	}
	return removed
}

func (s *Service) Viewers() int {
	return s.registry.Len()
}

func (s *Service) Close() {
	s.registry.Close()
}

func (s *Service) wait(ctx context.Context, provider *Provider) (State, error) {
	if s.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.waitTimeout)
		defer cancel()
	}

	state, err := provider.Wait(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return state, NewDashboardError(ErrStillLoading, apiErrors.ErrCommunication, state.SessionID, "")
		}
		return state, err
	}

	if state.Error != "" {
		return state, NewDashboardError(ErrDashboardFailed, apiErrors.ErrExternalService, state.SessionID, state.Error)
	}

	return state, nil
}
