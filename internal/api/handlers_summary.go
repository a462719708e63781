package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return handler.respondError(c, err)
	}
	summary, err := handler.svc.DaySummary(c.UserContext(), day)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) GetWeek(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return handler.respondError(c, err)
	}
	summary, err := handler.svc.WeekSummary(c.UserContext(), day)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) Export(c *fiber.Ctx) error {
	data, err := handler.svc.Export(c.UserContext())
	if err != nil {
		return handler.respondError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="nutrilog-export.json"`)
	return c.JSON(data)
}
