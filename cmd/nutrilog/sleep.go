package nutrilog

import (
	"github.com/spf13/cobra"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Log hours slept",
}

var (
	sleepHours float64
	sleepDate  string
	sleepDays  int
)

var sleepLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record hours slept for a day (overwrites that day's entry)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			day, err := parseDay(sleepDate, s)
			if err != nil {
				return err
			}
			entry, err := s.svc.LogSleep(s.ctx, day, sleepHours)
			if err != nil {
				return err
			}
			s.printf("Sleep %s: %.1f h\n", entry.Date, entry.Hours)
			return nil
		})
	},
}

var sleepHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show sleep for recent days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			history, err := s.svc.SleepHistory(s.ctx, sleepDays)
			if err != nil {
				return err
			}
			s.println("DATE\tHOURS")
			for _, e := range history {
				s.printf("%s\t%.1f\n", e.Date, e.Hours)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(sleepCmd)
	sleepCmd.AddCommand(sleepLogCmd, sleepHistoryCmd)
	sleepLogCmd.Flags().Float64Var(&sleepHours, "hours", 0, "Hours slept (0-24)")
	sleepLogCmd.Flags().StringVar(&sleepDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = sleepLogCmd.MarkFlagRequired("hours")
	sleepHistoryCmd.Flags().IntVar(&sleepDays, "days", 7, "Number of days")
}
