package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/templui/challenge/internal/app"
)

func ExportCmd() *cobra.Command {
	var (
		archive bool
		out     string
	)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all achievements as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				if archive {
					result, err := a.ExportService.Archive(cmd.Context())
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "archived %s\n%s\n", result.Key, result.URL)
					return nil
				}

				if out == "" || out == "-" {
					return a.ExportService.WriteCSV(cmd.Context(), cmd.OutOrStdout())
				}

				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create export file: %w", err)
				}
				defer f.Close()

				if err := a.ExportService.WriteCSV(cmd.Context(), f); err != nil {
					return err
				}
				return f.Close()
			})
		},
	}

	exportCmd.Flags().BoolVar(&archive, "archive", false, "Upload the export to S3 and print a download link")
	exportCmd.Flags().StringVar(&out, "out", "", "Write CSV to file instead of stdout")
	exportCmd.MarkFlagsMutuallyExclusive("archive", "out")

	return exportCmd
}
