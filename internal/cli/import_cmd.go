package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/alexanderramin/horizon/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a snapshot file and store it for the sqlite source",
		Long: `import reads a JSON or YAML snapshot, validates it and replaces the
snapshot held in the store named by --db. Missing value stream totals are
summed from their products. A failed import leaves the previous snapshot
untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeStore, err := app.importer()
			if err != nil {
				return err
			}
			defer closeStore()

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Importing "+args[0])
			}
			result, err := uc.ImportSnapshot(cmd.Context(), args[0])
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(result, app.Config.DBPath))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var (
		format = formatValue(importer.FormatYAML)
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded snapshot as an importable JSON or YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.portfolio(cmd.Context())
			if err != nil {
				return err
			}

			f := importer.Format(format)
			if out != "" && !cmd.Flags().Changed("format") {
				if fromPath, err := importer.FormatFromPath(out); err == nil {
					f = fromPath
				}
			}

			data, err := importer.Encode(importer.FromSnapshot(svc.Snapshot()), f)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported to %s\n", formatter.StyleGreen.Render("✔"), out)
			return nil
		},
	}
	cmd.Flags().Var(&format, "format", "output encoding: json or yaml (default from --out extension, else yaml)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}
