package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magnus-console/internal/api/handler"
	"github.com/vfg2006/magnus-console/internal/api/handler/router"
	"github.com/vfg2006/magnus-console/internal/config"
	"github.com/vfg2006/magnus-console/internal/usecases/authenticating"
	"github.com/vfg2006/magnus-console/internal/usecases/dashboarding"
	"github.com/vfg2006/magnus-console/internal/usecases/ingesting"
	"github.com/vfg2006/magnus-console/internal/usecases/sectioning"
	"github.com/vfg2006/magnus-console/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

var publicPaths = []string{"/healthcheck", "/readiness"}

type Server struct {
	httpServer *http.Server
	closers    []func()
}

func New(
	config *config.Config,
	dashboardService *dashboarding.Service,
	ingestService ingesting.IngestService,
	checker handler.ConnectionChecker,
	authenticator authenticating.Authenticator,
	snapshotRefreshService handler.CronJob,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SnapshotRefreshService: snapshotRefreshService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(checker, dashboardService)...),
		router.WithRoutes(handler.Dashboard(dashboardService, sectioning.NewSettingsInfo(config))...),
		router.WithRoutes(handler.Ingest(ingestService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.CorsOrigins),
		middleware.RateLimitMiddleware(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst),
		middleware.AuthMiddleware(authenticator, publicPaths...),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		closers: []func(){dashboardService.Close},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	// fecha os providers primeiro para liberar os streams de eventos abertos
	for _, closeFn := range s.closers {
		closeFn()
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
