package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magnus-console/internal/config"
)

// SnapshotRefresher é a parte do dashboard que o agendador aciona
type SnapshotRefresher interface {
	RefreshAll() int
	SweepIdle() int
}

type SnapshotRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SnapshotRefreshService recarrega periodicamente os snapshots dos viewers ativos
// e descarta os providers ociosos
type SnapshotRefreshService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotRefreshConfig
	dashboard           SnapshotRefresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRefreshed       int
	lastSwept           int
}

func NewSnapshotRefreshService(dashboard SnapshotRefresher, appConfig *config.Config) *SnapshotRefreshService {
	refreshConfig := SnapshotRefreshConfig{
		CronSchedule: appConfig.SnapshotRefresh.CronSchedule,
		SyncEnabled:  appConfig.SnapshotRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		dashboard: dashboard,
	}
}

// Start inicia o agendador e o para quando o contexto for cancelado
func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização periódica de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SnapshotRefreshService) refreshSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	swept := s.dashboard.SweepIdle()
	refreshed := s.dashboard.RefreshAll()

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastRefreshed = refreshed
	s.lastSwept = swept
	duration := s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt)
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"refreshed": refreshed,
		"swept":     swept,
		"duration":  duration.String(),
	}).Info("Atualização de snapshots concluída")
}

// TriggerManualSync dispara uma atualização fora do cron; devolve false se já houver uma rodando
func (s *SnapshotRefreshService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de snapshots já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de snapshots")
	go s.refreshSnapshots()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_refreshed":         s.lastRefreshed,
		"last_swept":             s.lastSwept,
	}
}
