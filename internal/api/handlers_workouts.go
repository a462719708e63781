package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saadjs/nutrilog/internal/nutrition"
	"github.com/saadjs/nutrilog/internal/service"
)

type workoutPayload struct {
	Type        string  `json:"type"`
	Intensity   string  `json:"intensity"`
	DurationMin float64 `json:"duration_min"`
	Calories    *int    `json:"calories"`
	Description string  `json:"description"`
	LoggedAt    string  `json:"logged_at"`
}

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c.Query("date"))
	if err != nil {
		return handler.respondError(c, err)
	}
	workouts, err := handler.svc.ListWorkouts(c.UserContext(), day)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(workouts)
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	payload := workoutPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	loggedAt, err := parseOptionalTime(payload.LoggedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	workout, err := handler.svc.LogWorkout(c.UserContext(), service.WorkoutInput{
		Type:        payload.Type,
		Intensity:   payload.Intensity,
		DurationMin: payload.DurationMin,
		Calories:    payload.Calories,
		Description: payload.Description,
		LoggedAt:    loggedAt,
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// EstimateWorkout prices a workout without logging it.
func (handler *Handler) EstimateWorkout(c *fiber.Ctx) error {
	payload := workoutPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	workoutType, err := nutrition.ParseWorkoutType(payload.Type)
	if err != nil {
		return handler.respondError(c, err)
	}
	intensity, err := nutrition.ParseIntensity(payload.Intensity)
	if err != nil {
		return handler.respondError(c, err)
	}
	calories, err := nutrition.EstimateWorkoutCalories(workoutType, intensity, payload.DurationMin)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"type": workoutType, "intensity": intensity, "duration_min": payload.DurationMin, "calories": calories})
}

func (handler *Handler) DeleteWorkout(c *fiber.Ctx) error {
	removed, err := handler.svc.DeleteWorkout(c.UserContext(), c.Params("id"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": removed})
}
