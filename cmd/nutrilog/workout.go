package nutrilog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/nutrilog/internal/nutrition"
	"github.com/saadjs/nutrilog/internal/service"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log workouts and estimate calories burned",
}

var (
	workoutType        string
	workoutIntensity   string
	workoutDuration    float64
	workoutCalories    int
	workoutDescription string
	workoutDate        string
	workoutTime        string
	workoutListDate    string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.WorkoutInput{
			Type:        workoutType,
			Intensity:   workoutIntensity,
			DurationMin: workoutDuration,
			Description: workoutDescription,
		}
		if cmd.Flags().Changed("calories") {
			in.Calories = &workoutCalories
		}
		return withService(cmd, func(s *session) error {
			loggedAt, err := parseDateTimeOrNow(workoutDate, workoutTime, s.cfg.loc)
			if err != nil {
				return err
			}
			in.LoggedAt = loggedAt
			w, err := s.svc.LogWorkout(s.ctx, in)
			if err != nil {
				return err
			}
			s.printf("Logged workout %s (%d kcal)\n", w.ID, w.Calories)
			return nil
		})
	},
}

var workoutEstimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate calories for a workout without logging it",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := nutrition.ParseWorkoutType(workoutType)
		if err != nil {
			return err
		}
		i, err := nutrition.ParseIntensity(workoutIntensity)
		if err != nil {
			return err
		}
		kcal, err := nutrition.EstimateWorkoutCalories(t, i, workoutDuration)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Estimated: %d kcal\n", kcal)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			day, err := parseDay(workoutListDate, s)
			if err != nil {
				return err
			}
			workouts, err := s.svc.ListWorkouts(s.ctx, day)
			if err != nil {
				return err
			}
			s.println("ID\tTIME\tTYPE\tINTENSITY\tMIN\tKCAL\tDESCRIPTION")
			for _, w := range workouts {
				fmt.Fprintf(s.out, "%s\t%s\t%s\t%s\t%g\t%d\t%s\n",
					w.ID, w.LoggedAt.In(s.cfg.loc).Format("15:04"), w.Type, w.Intensity, w.DurationMin, w.Calories, w.Description)
			}
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			removed, err := s.svc.DeleteWorkout(s.ctx, args[0])
			if err != nil {
				return err
			}
			if !removed {
				s.printf("No workout with id %s\n", args[0])
				return nil
			}
			s.printf("Deleted workout %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutEstimateCmd, workoutListCmd, workoutDeleteCmd)

	for _, c := range []*cobra.Command{workoutAddCmd, workoutEstimateCmd} {
		c.Flags().StringVar(&workoutType, "type", "", "run, weight_lifting, described or manual")
		c.Flags().StringVar(&workoutIntensity, "intensity", "medium", "low, medium or high")
		c.Flags().Float64Var(&workoutDuration, "duration", 0, "Duration in minutes")
		_ = c.MarkFlagRequired("type")
	}
	workoutAddCmd.Flags().IntVar(&workoutCalories, "calories", 0, "Calories burned (required for manual, overrides the estimate otherwise)")
	workoutAddCmd.Flags().StringVar(&workoutDescription, "description", "", "What you did (required for described)")
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default now)")
	workoutAddCmd.Flags().StringVar(&workoutTime, "time", "", "Time HH:MM")

	workoutListCmd.Flags().StringVar(&workoutListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
