package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/magnus-console/internal/domain"
	"github.com/vfg2006/magnus-console/internal/usecases/authenticating"
)

func pingCmd(deps Deps, root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Testa a conexão com a API da Magnus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := withTimeout(cmd.Context(), root)
			defer cancel()

			started := time.Now()
			ok, err := deps.Integrator.CheckConnection(ctx)
			elapsed := time.Since(started)

			w := cmd.OutOrStdout()
			if root.json {
				result := map[string]any{
					"base_url":   deps.Config.Magnus.BaseURL,
					"connected":  ok,
					"elapsed_ms": elapsed.Milliseconds(),
				}
				if err != nil {
					result["error"] = err.Error()
				}
				if printErr := printJSON(w, result); printErr != nil {
					return printErr
				}
				return err
			}

			if !ok {
				return fmt.Errorf("API da Magnus indisponível em %s: %w", deps.Config.Magnus.BaseURL, err)
			}
			fmt.Fprintf(w, "%s OK (%s)\n", deps.Config.Magnus.BaseURL, elapsed.Round(time.Millisecond))
			return nil
		},
	}
}

func tokenCmd(deps Deps, root *rootOptions) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Gera um token de acesso para o console HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auth := authenticating.NewService(deps.Config)
			token, err := auth.GenerateToken(subject, domain.Role(role), ttl)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if root.json {
				return printJSON(w, map[string]any{
					"token":      token,
					"subject":    subject,
					"role":       role,
					"expires_at": time.Now().Add(ttl).UTC(),
				})
			}
			_, err = fmt.Fprintln(w, token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "magnusctl", "Identificação de quem usa o token")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleOperator), "Papel do token (operator ou viewer)")
	cmd.Flags().DurationVar(&ttl, "ttl", authenticating.DefaultTokenTTL, "Validade do token")

	return cmd
}
