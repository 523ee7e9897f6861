package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/magnus-console/infrastructure/integrator/magnus"
	"github.com/vfg2006/magnus-console/internal/config"
	"github.com/vfg2006/magnus-console/pkg/utils"
)

var Version = "dev"

// Deps são as dependências compartilhadas pelos comandos do magnusctl
type Deps struct {
	Config     *config.Config
	Integrator magnus.MagnusIntegrator
}

type rootOptions struct {
	json    bool
	timeout time.Duration
}

func NewRootCommand(deps Deps) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "magnusctl",
		Short:         "Console de terminal do dashboard Magnus",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.json, "json", "j", false, "Saída em JSON")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", deps.Config.Dashboard.WaitTimeout, "Tempo máximo de espera pela API")

	rootCmd.AddCommand(dashboardCmd(deps, opts))
	rootCmd.AddCommand(sectionsCmd(opts))
	rootCmd.AddCommand(ingestCmd(deps, opts))
	rootCmd.AddCommand(pingCmd(deps, opts))
	rootCmd.AddCommand(tokenCmd(deps, opts))

	return rootCmd
}

func printJSON(w io.Writer, v any) error {
	_, err := fmt.Fprintln(w, utils.PrettyJSON(v))
	return err
}
