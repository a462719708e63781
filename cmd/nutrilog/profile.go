package nutrilog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage body profile and derived daily targets",
}

var (
	profileAge        int
	profileGender     string
	profileHeight     float64
	profileHeightUnit string
	profileWeight     float64
	profileWeightUnit string
	profileGoalWeight float64
	profileActivity   string
	profileGoal       string
	weightUpdateUnit  string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile and recompute targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProfileInput{
			Age:           profileAge,
			Gender:        profileGender,
			Height:        profileHeight,
			HeightUnit:    profileHeightUnit,
			Weight:        profileWeight,
			WeightUnit:    profileWeightUnit,
			GoalWeight:    optionalFloat(cmd, "goal-weight", profileGoalWeight),
			ActivityLevel: profileActivity,
			Goal:          profileGoal,
		}
		return withService(cmd, func(s *session) error {
			p, err := s.svc.SetProfile(s.ctx, in)
			if err != nil {
				return err
			}
			printProfile(s, p)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile and targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			p, ok, err := s.svc.Profile(s.ctx)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("profile is not set; run `nutrilog profile set`")
			}
			printProfile(s, p)
			return nil
		})
	},
}

var profileWeightCmd = &cobra.Command{
	Use:   "weight <value>",
	Short: "Record a new body weight and recompute targets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := parseFloatArg("weight", args[0])
		if err != nil {
			return err
		}
		return withService(cmd, func(s *session) error {
			p, err := s.svc.UpdateWeight(s.ctx, weight, weightUpdateUnit)
			if err != nil {
				return err
			}
			printProfile(s, p)
			return nil
		})
	},
}

func printProfile(s *session, p model.UserProfile) {
	s.printf("Age: %d | Gender: %s\n", p.Age, p.Gender)
	s.printf("Height: %.1f cm | Weight: %.1f kg\n", p.HeightCm, p.WeightKg)
	if p.GoalWeightKg != nil {
		s.printf("Goal weight: %.1f kg\n", *p.GoalWeightKg)
	}
	s.printf("Activity: %s | Goal: %s\n", p.ActivityLevel, p.Goal)
	s.printf("Targets: %d kcal | P %dg | C %dg | F %dg\n", p.Targets.Calories, p.Targets.ProteinG, p.Targets.CarbsG, p.Targets.FatG)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd, profileWeightCmd)

	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male, female or other")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height")
	profileSetCmd.Flags().StringVar(&profileHeightUnit, "height-unit", "cm", "cm, in or ft")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Body weight")
	profileSetCmd.Flags().StringVar(&profileWeightUnit, "weight-unit", "kg", "kg or lb")
	profileSetCmd.Flags().Float64Var(&profileGoalWeight, "goal-weight", 0, "Goal weight (same unit as --weight)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "sedentary, light, moderate, active or very_active")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "maintain_weight", "lose_weight, maintain_weight or gain_weight")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("activity")

	profileWeightCmd.Flags().StringVar(&weightUpdateUnit, "unit", "kg", "kg or lb")
}
