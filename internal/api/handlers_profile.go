package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/service"
)

type profilePayload struct {
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	Height        float64  `json:"height"`
	HeightUnit    string   `json:"height_unit"`
	Weight        float64  `json:"weight"`
	WeightUnit    string   `json:"weight_unit"`
	GoalWeight    *float64 `json:"goal_weight"`
	ActivityLevel string   `json:"activity_level"`
	Goal          string   `json:"goal"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, ok, err := handler.svc.Profile(c.UserContext())
	if err != nil {
		return handler.respondError(c, err)
	}
	if !ok {
		return apiError(c, fiber.StatusNotFound, "profile is not set")
	}
	return c.JSON(profile)
}

func (handler *Handler) PutProfile(c *fiber.Ctx) error {
	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	profile, err := handler.svc.SetProfile(c.UserContext(), service.ProfileInput{
		Age:           payload.Age,
		Gender:        payload.Gender,
		Height:        payload.Height,
		HeightUnit:    payload.HeightUnit,
		Weight:        payload.Weight,
		WeightUnit:    payload.WeightUnit,
		GoalWeight:    payload.GoalWeight,
		ActivityLevel: payload.ActivityLevel,
		Goal:          payload.Goal,
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(profile)
}

func (handler *Handler) GetWeeklyGoal(c *fiber.Ctx) error {
	settings, err := handler.svc.WeeklyGoal(c.UserContext())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(settings)
}

func (handler *Handler) PutWeeklyGoal(c *fiber.Ctx) error {
	settings := model.WeeklyGoalSettings{}
	if err := c.BodyParser(&settings); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.svc.SetWeeklyGoal(c.UserContext(), settings); err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(settings)
}
