package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magnus-console/infrastructure/integrator/magnus"
	"github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/magnusclient"
	"github.com/vfg2006/magnus-console/internal/api"
	"github.com/vfg2006/magnus-console/internal/config"
	"github.com/vfg2006/magnus-console/internal/scheduler"
	"github.com/vfg2006/magnus-console/internal/usecases/authenticating"
	"github.com/vfg2006/magnus-console/internal/usecases/dashboarding"
	"github.com/vfg2006/magnus-console/internal/usecases/ingesting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	magnusClient := magnusclient.NewClient(cfg)
	magnusIntegrator := magnus.New(cfg, magnusClient)

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if ok, err := magnusIntegrator.CheckConnection(pingCtx); !ok {
		logrus.WithError(err).WithField("base_url", cfg.Magnus.BaseURL).
			Warn("API da Magnus indisponível na inicialização")
	}
	pingCancel()

	authenticator := authenticating.NewService(cfg)
	if !authenticator.Enabled() {
		logrus.Warn("AUTH_SECRET não configurado, rotas abertas sem autenticação")
	}

	dashboardService := dashboarding.NewService(cfg, magnusIntegrator)
	ingestService := ingesting.NewService(cfg, magnusIntegrator)

	snapshotRefreshService := scheduler.NewSnapshotRefreshService(dashboardService, cfg)
	if err := snapshotRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de snapshots")
	} else {
		logrus.Info("Agendador de atualização de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		ingestService,
		magnusIntegrator,
		authenticator,
		snapshotRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
