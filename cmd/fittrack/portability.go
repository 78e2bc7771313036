package fittrack

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/service"
)

var (
	exportFormat string
	exportOut    string
	importFormat string
	importIn     string
	importMode   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all local data (json or yaml)",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(exportFormat, exportOut)
		if err != nil {
			return err
		}
		return withState(cmd, func(s *session) error {
			var buf bytes.Buffer
			if err := service.Export(s.stores, &buf, format, s.now); err != nil {
				return err
			}
			if strings.TrimSpace(exportOut) == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(exportOut, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported data to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import data from a fittrack export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		format, err := resolveFormat(importFormat, importIn)
		if err != nil {
			return err
		}
		mode, err := service.ParseImportMode(importMode)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		return withState(cmd, func(s *session) error {
			report, err := service.Import(s.stores, data, format, mode)
			if err != nil {
				return err
			}
			if report.Replaced {
				fmt.Fprintf(cmd.OutOrStdout(), "Replaced local data with %d records\n", report.Inserted)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records (%d skipped)\n", report.Inserted, report.Skipped)
			return nil
		})
	},
}

// resolveFormat prefers an explicit --format and falls back to the file
// extension.
func resolveFormat(flag, path string) (service.Format, error) {
	if strings.TrimSpace(flag) != "" {
		return service.ParseFormat(flag)
	}
	return service.FormatFromPath(path), nil
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Export format (json|yaml; default from --out extension)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
	importCmd.Flags().StringVar(&importFormat, "format", "", "Import format (json|yaml; default from --in extension)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file")
	importCmd.Flags().StringVar(&importMode, "mode", "merge", "Import mode (merge|replace)")
}
