package nutrilog

import (
	"github.com/spf13/cobra"
)

var weekDate string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the weekly calorie buffer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			day, err := parseDay(weekDate, s)
			if err != nil {
				return err
			}
			summary, err := s.svc.WeekSummary(s.ctx, day)
			if err != nil {
				return err
			}
			s.printf("Week: %s .. %s\n", summary.WeekStart, summary.WeekEnd)
			s.printf("Target: %.0f kcal (%.0f/day)\n", summary.WeeklyTarget, summary.DailyGoal)
			s.printf("Consumed: %.0f kcal | Remaining: %.0f kcal\n", summary.Consumed, summary.RemainingWeekly)
			if !summary.Enabled {
				s.println("Buffer: weekly goal disabled")
			} else {
				s.printf("Buffer balance: %.0f kcal\n", summary.Balance)
			}
			s.println("DATE\tKCAL\tDELTA\tBANKED\tBALANCE\tAVAILABLE")
			for _, d := range summary.Days {
				s.printf("%s\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\n", d.Date, d.Calories, d.Delta, d.Banked, d.Balance, d.AvailableToday)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Any date in the week YYYY-MM-DD (default today)")
}
