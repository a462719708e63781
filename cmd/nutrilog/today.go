package nutrilog

import (
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show a day's intake, exercise and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			day, err := parseDay(todayDate, s)
			if err != nil {
				return err
			}
			status, err := s.svc.DaySummary(s.ctx, day)
			if err != nil {
				return err
			}
			s.printf("Date: %s\n", status.Date)
			s.printf("Intake: %.0f kcal (%d entries)\n", status.TotalCalories, status.Entries)
			s.printf("Exercise: %d kcal\n", status.ExerciseCalories)
			s.printf("Net: %.0f kcal\n", status.NetCalories)
			s.printf("Macros: P %.1fg | C %.1fg | F %.1fg\n", status.ProteinG, status.CarbsG, status.FatG)
			if status.FiberG > 0 || status.SugarG > 0 || status.SodiumMg > 0 {
				s.printf("Fiber %.1fg | Sugar %.1fg | Sodium %.0fmg\n", status.FiberG, status.SugarG, status.SodiumMg)
			}
			for _, b := range status.ByMealType {
				if b.Entries == 0 {
					continue
				}
				s.printf("  %s: %.0f kcal\n", b.MealType, b.Calories)
			}
			if status.HasGoal {
				s.printf("Goal: %d kcal | P %dg | C %dg | F %dg\n", status.GoalCalories, status.GoalProteinG, status.GoalCarbsG, status.GoalFatG)
				s.printf("Remaining: %.0f kcal | P %.1fg | C %.1fg | F %.1fg\n", status.RemainingCalories, status.RemainingProteinG, status.RemainingCarbsG, status.RemainingFatG)
			} else {
				s.println("Goal: not set")
			}
			if status.SleepHours > 0 {
				s.printf("Sleep: %.1f h\n", status.SleepHours)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
