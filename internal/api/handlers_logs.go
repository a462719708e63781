package api

import (
	"github.com/gofiber/fiber/v2"
)

type sleepPayload struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type moodPayload struct {
	Mood     string `json:"mood"`
	Note     string `json:"note"`
	LoggedAt string `json:"logged_at"`
}

func (handler *Handler) SleepHistory(c *fiber.Ctx) error {
	days, err := queryInt(c, "days", 7)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid days")
	}
	history, err := handler.svc.SleepHistory(c.UserContext(), days)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(history)
}

func (handler *Handler) LogSleep(c *fiber.Ctx) error {
	payload := sleepPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	day, err := handler.parseDayParam(payload.Date)
	if err != nil {
		return handler.respondError(c, err)
	}
	entry, err := handler.svc.LogSleep(c.UserContext(), day, payload.Hours)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) ListMoods(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 50)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid limit")
	}
	moods, err := handler.svc.ListMoods(c.UserContext(), limit)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(moods)
}

func (handler *Handler) CreateMood(c *fiber.Ctx) error {
	payload := moodPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	loggedAt, err := parseOptionalTime(payload.LoggedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	entry, err := handler.svc.LogMood(c.UserContext(), payload.Mood, payload.Note, loggedAt)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteMood(c *fiber.Ctx) error {
	removed, err := handler.svc.DeleteMood(c.UserContext(), c.Params("id"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": removed})
}
