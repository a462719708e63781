package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	api.Get("/profile", handler.GetProfile)
	api.Put("/profile", handler.PutProfile)
	api.Get("/weekly-goal", handler.GetWeeklyGoal)
	api.Put("/weekly-goal", handler.PutWeeklyGoal)

	meals := api.Group("/meals")
	meals.Get("", handler.ListMeals)
	meals.Post("", handler.CreateMeal)
	meals.Patch("/:id", handler.UpdateMeal)
	meals.Delete("/:id", handler.DeleteMeal)

	workouts := api.Group("/workouts")
	workouts.Get("", handler.ListWorkouts)
	workouts.Post("", handler.CreateWorkout)
	workouts.Post("/estimate", handler.EstimateWorkout)
	workouts.Delete("/:id", handler.DeleteWorkout)

	api.Get("/sleep", handler.SleepHistory)
	api.Post("/sleep", handler.LogSleep)

	moods := api.Group("/moods")
	moods.Get("", handler.ListMoods)
	moods.Post("", handler.CreateMood)
	moods.Delete("/:id", handler.DeleteMood)

	api.Get("/days/:date", handler.GetDay)
	api.Get("/weeks/:date", handler.GetWeek)
	api.Get("/export", handler.Export)
}
