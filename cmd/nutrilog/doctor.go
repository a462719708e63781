package nutrilog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			report, err := s.svc.RunDoctor(s.ctx, doctorFix)
			if err != nil {
				return err
			}
			malformed := "none"
			if len(report.MalformedCollections) > 0 {
				malformed = strings.Join(report.MalformedCollections, ", ")
			}
			s.printf("Malformed collections: %s\n", malformed)
			s.printf("Invalid meals: %d\n", report.InvalidMeals)
			s.printf("Invalid sleep entries: %d\n", report.InvalidSleepEntries)
			s.printf("Duplicate sleep dates: %d\n", report.DuplicateSleepDates)
			if doctorFix {
				s.printf("Fixed collections: %d | Removed entries: %d\n", report.FixedCollections, report.RemovedEntries)
				// Re-check after fixes so exit status reflects final state.
				report, err = s.svc.RunDoctor(s.ctx, false)
				if err != nil {
					return err
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
