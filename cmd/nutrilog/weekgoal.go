package nutrilog

import (
	"github.com/spf13/cobra"

	"github.com/saadjs/nutrilog/internal/model"
)

var weekGoalCmd = &cobra.Command{
	Use:   "week-goal",
	Short: "Manage the weekly calorie goal and buffer",
}

var (
	weekGoalCalories  int
	weekGoalBuffer    bool
	weekGoalBufferMax int
	weekGoalDisable   bool
)

var weekGoalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Enable the weekly goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := model.WeeklyGoalSettings{
			Enabled:         !weekGoalDisable,
			WeeklyCalories:  weekGoalCalories,
			BufferEnabled:   weekGoalBuffer,
			BufferMaxPerDay: weekGoalBufferMax,
		}
		return withService(cmd, func(s *session) error {
			if err := s.svc.SetWeeklyGoal(s.ctx, settings); err != nil {
				return err
			}
			printWeekGoal(s, settings)
			return nil
		})
	},
}

var weekGoalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the weekly goal settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			settings, err := s.svc.WeeklyGoal(s.ctx)
			if err != nil {
				return err
			}
			printWeekGoal(s, settings)
			return nil
		})
	},
}

func printWeekGoal(s *session, settings model.WeeklyGoalSettings) {
	if !settings.Enabled {
		s.println("Weekly goal: disabled")
		return
	}
	if settings.WeeklyCalories > 0 {
		s.printf("Weekly goal: %d kcal\n", settings.WeeklyCalories)
	} else {
		s.println("Weekly goal: 7 x daily target")
	}
	if settings.BufferEnabled {
		s.printf("Buffer: banked surplus capped at %d kcal/day\n", settings.BufferMaxPerDay)
	} else {
		s.println("Buffer: uncapped")
	}
}

func init() {
	rootCmd.AddCommand(weekGoalCmd)
	weekGoalCmd.AddCommand(weekGoalSetCmd, weekGoalShowCmd)
	weekGoalSetCmd.Flags().IntVar(&weekGoalCalories, "calories", 0, "Weekly calorie target (0 = 7 x daily target)")
	weekGoalSetCmd.Flags().BoolVar(&weekGoalBuffer, "buffer", false, "Cap the surplus a day can bank")
	weekGoalSetCmd.Flags().IntVar(&weekGoalBufferMax, "buffer-max", 0, "Max kcal banked per day when --buffer is set")
	weekGoalSetCmd.Flags().BoolVar(&weekGoalDisable, "disable", false, "Turn the weekly goal off")
}
