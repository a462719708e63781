package nutrilog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot and restore the store",
}

var (
	backupOut   string
	backupDir   string
	restoreFile string
)

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a backup with a checksum file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			out := backupOut
			if out == "" {
				dir := backupDir
				if dir == "" {
					dir = defaultBackupDir(s.cfg.path)
				}
				out = filepath.Join(dir, fmt.Sprintf("nutrilog-%s.json", time.Now().Format("20060102-150405")))
			}
			info, err := s.svc.CreateBackup(s.ctx, out)
			if err != nil {
				return err
			}
			s.printf("Created backup: %s (%d keys)\n", info.Path, info.Keys)
			s.printf("Checksum: %s\n", info.Checksum)
			return nil
		})
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace the store with a backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		if restoreFile == "" {
			return fmt.Errorf("--file is required")
		}
		return withService(cmd, func(s *session) error {
			info, err := s.svc.RestoreBackup(s.ctx, restoreFile)
			if err != nil {
				return err
			}
			s.printf("Restored %d keys from %s\n", info.Keys, info.Path)
			return nil
		})
	},
}

func defaultBackupDir(storePath string) string {
	if storePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "backups"
		}
		return filepath.Join(wd, "backups")
	}
	return filepath.Join(filepath.Dir(storePath), "backups")
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupRestoreCmd)
	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup file path")
	backupCreateCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (default next to the store)")
	backupRestoreCmd.Flags().StringVar(&restoreFile, "file", "", "Backup file to restore")
}
