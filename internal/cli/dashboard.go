package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vfg2006/magnus-console/internal/usecases/dashboarding"
	"github.com/vfg2006/magnus-console/internal/usecases/sectioning"
)

var ErrSessionRequired = errors.New("informe --session")

type dashboardOptions struct {
	session    string
	section    string
	status     string
	rule       string
	mediumRisk bool
}

func dashboardCmd(deps Deps, root *rootOptions) *cobra.Command {
	opts := &dashboardOptions{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Busca o snapshot de uma sessão e exibe uma seção",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.session == "" {
				return ErrSessionRequired
			}

			ctx, cancel := withTimeout(cmd.Context(), root)
			defer cancel()

			return showSection(ctx, cmd.OutOrStdout(), deps, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.session, "session", "s", "", "ID da sessão")
	cmd.Flags().StringVar(&opts.section, "section", string(sectioning.Overview), "Seção a exibir")
	cmd.Flags().StringVar(&opts.status, "status", sectioning.StatusFilterAll, "Filtro de status da seção compliance")
	cmd.Flags().StringVar(&opts.rule, "rule", sectioning.RuleFilterAll, "Filtro de regra da seção compliance")
	cmd.Flags().BoolVar(&opts.mediumRisk, "medium-risk", false, "Exibe transações de risco médio na seção fraud")

	return cmd
}

// showSection usa o mesmo provider do console HTTP para uma única sessão
func showSection(ctx context.Context, w io.Writer, deps Deps, root *rootOptions, opts *dashboardOptions) error {
	provider := dashboarding.NewProvider(deps.Integrator)
	defer provider.Close()

	provider.SetSession(opts.session)
	state, err := provider.Wait(ctx)
	if err != nil {
		return fmt.Errorf("aguardando o dashboard: %w", err)
	}
	if state.Error != "" {
		return errors.New(state.Error)
	}

	view := sectioning.Render(sectioning.ParseSection(opts.section), state.Data, sectioning.Options{
		ComplianceStatus: opts.status,
		ComplianceRule:   opts.rule,
		ShowMediumRisk:   opts.mediumRisk,
		Settings:         sectioning.NewSettingsInfo(deps.Config),
	})

	if root.json {
		return printJSON(w, struct {
			Header sectioning.Header `json:"header"`
			View   sectioning.View   `json:"view"`
		}{sectioning.BuildHeader(state.Data), view})
	}

	header := sectioning.BuildHeader(state.Data)
	if _, err := fmt.Fprintf(w, "Session %s (%s)\n\n", header.SessionID, header.SessionType); err != nil {
		return err
	}
	return view.WriteText(w)
}

func sectionsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "Lista as seções do dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if root.json {
				return printJSON(w, sectioning.Menu)
			}

			grouped := sectioning.MenuByCategory()
			for _, category := range []sectioning.Category{sectioning.CategoryMain, sectioning.CategoryOthers} {
				fmt.Fprintln(w, category)
				for _, item := range grouped[category] {
					fmt.Fprintf(w, "  %-16s %s\n", item.ID, item.Label)
				}
			}
			return nil
		},
	}
}

func withTimeout(ctx context.Context, root *rootOptions) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if root.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, root.timeout)
}
