package nutrilog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/nutrilog/internal/service"
)

var (
	exportOut    string
	importIn     string
	importMode   string
	importDryRun bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all logs as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withService(cmd, func(s *session) error {
			data, err := s.svc.Export(s.ctx)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal export json: %w", err)
			}
			if err := os.WriteFile(exportOut, b, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			s.printf("Exported data to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import logs from a JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		mode, err := service.ParseImportMode(importMode)
		if err != nil {
			return err
		}
		b, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		var data service.ExportData
		if err := json.Unmarshal(b, &data); err != nil {
			return fmt.Errorf("parse import json: %w", err)
		}
		return withService(cmd, func(s *session) error {
			report, err := s.svc.Import(s.ctx, &data, service.ImportOptions{Mode: mode, DryRun: importDryRun})
			if err != nil {
				return err
			}
			prefix := "Imported"
			if importDryRun {
				prefix = "Dry run"
			}
			s.printf("%s: inserted %d, updated %d, skipped %d, conflicts %d\n", prefix, report.Inserted, report.Updated, report.Skipped, report.Conflicts)
			for _, w := range report.Warnings {
				s.printf("warning: %s\n", w)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
	importCmd.Flags().StringVar(&importMode, "mode", "fail", "Conflict handling: fail, skip or replace")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report what would change without writing")
}
