// Package api serves the service layer as a JSON HTTP API.
package api

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/saadjs/nutrilog/internal/nutrition"
	"github.com/saadjs/nutrilog/internal/service"
)

type Handler struct {
	svc    *service.Service
	logger *log.Logger
}

func NewHandler(svc *service.Service, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondError maps validation failures to 400. Anything else is logged and
// reported as 500 without internal detail.
func (handler *Handler) respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, nutrition.ErrInvalidInput) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	handler.logger.Printf("api: %s %s: %v", c.Method(), c.Path(), err)
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}

// parseDayParam accepts YYYY-MM-DD; empty and "today" mean the current day.
func (handler *Handler) parseDayParam(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "today") {
		return handler.svc.Today(), nil
	}
	return nutrition.ParseDay(raw, handler.svc.Location())
}

func parseOptionalTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("invalid timestamp (expected RFC 3339)")
	}
	return t, nil
}

func queryInt(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
