package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saadjs/nutrilog/internal/model"
	"github.com/saadjs/nutrilog/internal/service"
)

type mealPayload struct {
	Food          model.FoodItem `json:"food"`
	Quantity      float64        `json:"quantity"`
	MealType      string         `json:"meal_type"`
	LoggedAt      string         `json:"logged_at"`
	OverrideImage string         `json:"override_image"`
}

type mealUpdatePayload struct {
	Quantity *float64 `json:"quantity"`
	MealType string   `json:"meal_type"`
}

func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c.Query("date"))
	if err != nil {
		return handler.respondError(c, err)
	}
	meals, err := handler.svc.ListMeals(c.UserContext(), day)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(meals)
}

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	payload := mealPayload{Quantity: 1}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	loggedAt, err := parseOptionalTime(payload.LoggedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	meal, err := handler.svc.LogMeal(c.UserContext(), service.MealInput{
		Food:          payload.Food,
		Quantity:      payload.Quantity,
		MealType:      payload.MealType,
		LoggedAt:      loggedAt,
		OverrideImage: payload.OverrideImage,
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

func (handler *Handler) UpdateMeal(c *fiber.Ctx) error {
	payload := mealUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	meal, found, err := handler.svc.UpdateMeal(c.UserContext(), c.Params("id"), service.MealUpdate{
		Quantity: payload.Quantity,
		MealType: payload.MealType,
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "meal not found")
	}
	return c.JSON(meal)
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	removed, err := handler.svc.DeleteMeal(c.UserContext(), c.Params("id"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": removed})
}
