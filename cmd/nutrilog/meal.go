package nutrilog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/service"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and edit meals",
}

var (
	mealName     string
	mealCalories float64
	mealProtein  float64
	mealCarbs    float64
	mealFat      float64
	mealFiber    float64
	mealSugar    float64
	mealSodium   float64
	mealServing  string
	mealImage    string
	mealQuantity float64
	mealType     string
	mealDate     string
	mealTime     string
	mealListDate string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food item",
	RunE: func(cmd *cobra.Command, args []string) error {
		food := model.FoodItem{
			Name:        mealName,
			Calories:    mealCalories,
			ProteinG:    mealProtein,
			CarbsG:      mealCarbs,
			FatG:        mealFat,
			FiberG:      optionalFloat(cmd, "fiber", mealFiber),
			SugarG:      optionalFloat(cmd, "sugar", mealSugar),
			SodiumMg:    optionalFloat(cmd, "sodium", mealSodium),
			ServingSize: strings.TrimSpace(mealServing),
			ImageRef:    strings.TrimSpace(mealImage),
		}
		return withService(cmd, func(s *session) error {
			loggedAt, err := parseDateTimeOrNow(mealDate, mealTime, s.cfg.loc)
			if err != nil {
				return err
			}
			meal, err := s.svc.LogMeal(s.ctx, service.MealInput{
				Food:     food,
				Quantity: mealQuantity,
				MealType: mealType,
				LoggedAt: loggedAt,
			})
			if err != nil {
				return err
			}
			s.printf("Logged meal %s (%.0f kcal)\n", meal.ID, meal.Food.Calories*meal.Quantity)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			day, err := parseDay(mealListDate, s)
			if err != nil {
				return err
			}
			meals, err := s.svc.ListMeals(s.ctx, day)
			if err != nil {
				return err
			}
			s.println("ID\tTIME\tTYPE\tNAME\tQTY\tKCAL\tP\tC\tF")
			for _, m := range meals {
				q := m.Quantity
				fmt.Fprintf(s.out, "%s\t%s\t%s\t%s\t%g\t%.0f\t%.1f\t%.1f\t%.1f\n",
					m.ID, m.LoggedAt.In(s.cfg.loc).Format("15:04"), m.MealType, m.Food.Name, q,
					m.Food.Calories*q, m.Food.ProteinG*q, m.Food.CarbsG*q, m.Food.FatG*q)
			}
			return nil
		})
	},
}

var (
	mealUpdateQuantity float64
	mealUpdateType     string
)

var mealUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change quantity or meal type of a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := service.MealUpdate{
			Quantity: optionalFloat(cmd, "quantity", mealUpdateQuantity),
			MealType: mealUpdateType,
		}
		return withService(cmd, func(s *session) error {
			meal, found, err := s.svc.UpdateMeal(s.ctx, args[0], update)
			if err != nil {
				return err
			}
			if !found {
				s.printf("No meal with id %s\n", args[0])
				return nil
			}
			s.printf("Updated meal %s: %g x %s (%s)\n", meal.ID, meal.Quantity, meal.Food.Name, meal.MealType)
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(s *session) error {
			removed, err := s.svc.DeleteMeal(s.ctx, args[0])
			if err != nil {
				return err
			}
			if !removed {
				s.printf("No meal with id %s\n", args[0])
				return nil
			}
			s.printf("Deleted meal %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealUpdateCmd, mealDeleteCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Food name")
	mealAddCmd.Flags().Float64Var(&mealCalories, "calories", 0, "Calories per serving")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "Protein grams per serving")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "Carb grams per serving")
	mealAddCmd.Flags().Float64Var(&mealFat, "fat", 0, "Fat grams per serving")
	mealAddCmd.Flags().Float64Var(&mealFiber, "fiber", 0, "Fiber grams per serving")
	mealAddCmd.Flags().Float64Var(&mealSugar, "sugar", 0, "Sugar grams per serving")
	mealAddCmd.Flags().Float64Var(&mealSodium, "sodium", 0, "Sodium mg per serving")
	mealAddCmd.Flags().StringVar(&mealServing, "serving", "", "Serving size label")
	mealAddCmd.Flags().StringVar(&mealImage, "image", "", "Image reference")
	mealAddCmd.Flags().Float64Var(&mealQuantity, "quantity", 1, "Number of servings")
	mealAddCmd.Flags().StringVar(&mealType, "type", "snack", "breakfast, lunch, dinner or snack")
	mealAddCmd.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default now)")
	mealAddCmd.Flags().StringVar(&mealTime, "time", "", "Time HH:MM")
	_ = mealAddCmd.MarkFlagRequired("name")
	_ = mealAddCmd.MarkFlagRequired("calories")

	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Date YYYY-MM-DD (default today)")

	mealUpdateCmd.Flags().Float64Var(&mealUpdateQuantity, "quantity", 0, "New number of servings")
	mealUpdateCmd.Flags().StringVar(&mealUpdateType, "type", "", "New meal type")
}
