package controllers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/barberflow/barberflow-api/booking"
	"github.com/barberflow/barberflow-api/redis"
	"github.com/barberflow/barberflow-api/schedule"
	"github.com/barberflow/barberflow-api/utils"
)

// GetAvailability godoc
// @Summary Get available slots for a service on a date
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param service_id query int true "Service ID"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /availability [get]
func GetAvailability(c *fiber.Ctx) error {
	date := c.Query("date")
	serviceID := uint(c.QueryInt("service_id"))
	if date == "" || serviceID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date and service_id are required",
		})
	}

	if cached, ok := redis.GetAvailability(c.Context(), date, serviceID); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	slots, err := manager.AvailableSlots(c.Context(), date, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrServiceNotFound):
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found",
			})
		case errors.Is(err, schedule.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid date",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to compute availability",
				Error:   err.Error(),
			})
		}
	}

	response := fiber.Map{
		"date":       date,
		"service_id": serviceID,
		"slots":      slots,
	}
	if payload, err := json.Marshal(response); err == nil {
		redis.SetAvailability(c.Context(), date, serviceID, string(payload))
	}

	return c.JSON(response)
}
