package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magnus-console/infrastructure/integrator/magnus"
	"github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/magnusclient"
	"github.com/vfg2006/magnus-console/internal/cli"
	"github.com/vfg2006/magnus-console/internal/config"
)

func main() {
	// No terminal só interessam avisos e erros, a saída dos comandos vai para stdout
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	client := magnusclient.NewClient(cfg)
	rootCmd := cli.NewRootCommand(cli.Deps{
		Config:     cfg,
		Integrator: magnus.New(cfg, client),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
