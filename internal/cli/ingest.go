package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vfg2006/magnus-console/internal/usecases/ingesting"
	"github.com/vfg2006/magnus-console/internal/usecases/sectioning"
)

func ingestCmd(deps Deps, root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Cria uma sessão a partir de um CSV ou de APIs bancárias",
	}

	cmd.AddCommand(ingestCSVCmd(deps, root))
	cmd.AddCommand(ingestBanksCmd(deps, root))

	return cmd
}

func ingestCSVCmd(deps Deps, root *rootOptions) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "csv <arquivo>",
		Short: "Valida o cabeçalho e envia o CSV de transações",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			info, err := file.Stat()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			var onProgress ingesting.ProgressFunc
			if !root.json {
				onProgress = func(status ingesting.UploadStatus) {
					fmt.Fprintf(w, "[%3d%%] %s\n", status.Progress, status.Phase)
				}
			}

			service := ingesting.NewService(deps.Config, deps.Integrator)
			status, err := service.UploadCSV(cmd.Context(), ingesting.FileUpload{
				Name: filepath.Base(args[0]),
				Size: info.Size(),
				Body: file,
			}, onProgress)
			if err != nil {
				return ingestFailure(w, root, status, err)
			}

			if root.json {
				if err := printJSON(w, status); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(w, "%s\n", status.Message)
				fmt.Fprintf(w, "Session %s · %d records\n", status.Session.SessionID, status.Session.RecordsIngested)
				fmt.Fprintf(w, "Dashboard: %s\n", status.Redirect.URL)
			}

			if !follow {
				return nil
			}
			return followRedirect(cmd, w, deps, root, status.Redirect)
		},
	}

	cmd.Flags().BoolVar(&follow, "follow", true, "Exibe o overview da nova sessão após o atraso de redirecionamento")

	return cmd
}

func ingestBanksCmd(deps Deps, root *rootOptions) *cobra.Command {
	var (
		credentials map[string]string
		follow      bool
	)

	cmd := &cobra.Command{
		Use:   "banks",
		Short: "Conecta bancos pela API e cria uma sessão live",
		Example: "  magnusctl ingest banks --bank hdfc=KEY12345 --bank icici=KEY67890\n" +
			"  magnusctl ingest banks --list",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			service := ingesting.NewService(deps.Config, deps.Integrator)

			if list, _ := cmd.Flags().GetBool("list"); list {
				return listBanks(w, root, service.Banks())
			}

			banks := make([]string, 0, len(credentials))
			for bank := range credentials {
				banks = append(banks, bank)
			}
			sort.Strings(banks)

			status, err := service.ConnectBanks(cmd.Context(), ingesting.BankSetupRequest{
				Banks:       banks,
				Credentials: credentials,
			})
			if err != nil {
				return ingestFailure(w, root, status, err)
			}

			if root.json {
				if err := printJSON(w, status); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(w, "%s\n", status.Message)
				for _, connection := range status.Connections {
					fmt.Fprintf(w, "  %-8s %s\n", connection.BankName, connection.Status)
				}
				fmt.Fprintf(w, "Session %s\n", status.SessionID)
				fmt.Fprintf(w, "Dashboard: %s\n", status.Redirect.URL)
			}

			if !follow {
				return nil
			}
			return followRedirect(cmd, w, deps, root, status.Redirect)
		},
	}

	cmd.Flags().StringToStringVar(&credentials, "bank", nil, "Banco e chave de API no formato id=chave")
	cmd.Flags().Bool("list", false, "Lista os bancos suportados")
	cmd.Flags().BoolVar(&follow, "follow", false, "Exibe o overview da nova sessão após o atraso de redirecionamento")

	return cmd
}

func listBanks(w io.Writer, root *rootOptions, banks []ingesting.Bank) error {
	if root.json {
		return printJSON(w, banks)
	}

	for _, bank := range banks {
		status := "available"
		if bank.ComingSoon {
			status = "coming soon"
		}
		fmt.Fprintf(w, "%-6s %-16s %-12s %s\n", bank.ID, bank.Label, status, bank.Description)
	}
	return nil
}

// followRedirect espera o atraso configurado e abre o overview da sessão criada
func followRedirect(cmd *cobra.Command, w io.Writer, deps Deps, root *rootOptions, redirect *ingesting.Redirect) error {
	if redirect == nil {
		return nil
	}
	if err := redirect.Wait(cmd.Context()); err != nil {
		return err
	}

	ctx, cancel := withTimeout(cmd.Context(), root)
	defer cancel()

	fmt.Fprintln(w)
	return showSection(ctx, w, deps, root, &dashboardOptions{
		session: redirect.SessionID,
		section: string(sectioning.Overview),
	})
}

func ingestFailure(w io.Writer, root *rootOptions, status any, err error) error {
	if root.json {
		_ = printJSON(w, status)
		return err
	}

	var ingestErr *ingesting.IngestError
	if errors.As(err, &ingestErr) {
		for _, message := range ingestErr.Messages {
			fmt.Fprintf(w, "  - %s\n", message)
		}
		fields := make([]string, 0, len(ingestErr.Fields))
		for bank := range ingestErr.Fields {
			fields = append(fields, bank)
		}
		sort.Strings(fields)
		for _, bank := range fields {
			fmt.Fprintf(w, "  - %s: %s\n", bank, ingestErr.Fields[bank])
		}
	}
	return err
}
