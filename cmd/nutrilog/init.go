package nutrilog

import (
	"github.com/spf13/cobra"

	"github.com/saadjs/nutrilog/internal/app"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local nutrilog store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			// Loading every collection once surfaces unreadable data early.
			if _, err := s.svc.Export(s.ctx); err != nil {
				return err
			}
			if s.cfg.backend == app.BackendMemory {
				s.println("Initialized in-memory store (nothing is persisted)")
				return nil
			}
			s.printf("Initialized %s store at %s\n", s.cfg.backend, s.cfg.path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
