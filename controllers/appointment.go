package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/barberflow/barberflow-api/booking"
	"github.com/barberflow/barberflow-api/db"
	"github.com/barberflow/barberflow-api/models"
	"github.com/barberflow/barberflow-api/redis"
	"github.com/barberflow/barberflow-api/schedule"
	"github.com/barberflow/barberflow-api/utils"
)

// GetAllAppointments godoc
// @Summary Get all active appointments
// @Description Get non-archived appointments ordered by date and time
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments [get]
func GetAllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	err := db.DB.Preload("Service").
		Where("is_archived = ?", false).
		Order("date, start_time").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetArchivedAppointments godoc
// @Summary Get archived appointments
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments/archived [get]
func GetArchivedAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	err := db.DB.Preload("Service").
		Where("is_archived = ?", true).
		Order("date DESC, start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch archived appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment godoc
// @Summary Get an appointment by ID
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id} [get]
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Service").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment godoc
// @Summary Book a new appointment
// @Description Availability is recomputed at commit time; a stale slot list is never trusted
// @Tags appointments
// @Accept json
// @Produce json
// @Param booking body booking.Request true "Booking"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /appointments [post]
func CreateAppointment(c *fiber.Ctx) error {
	type BookingInput struct {
		ClientName  string `json:"client_name"`
		ClientPhone string `json:"client_phone"`
		ClientEmail string `json:"client_email"`
		ServiceID   uint   `json:"service_id"`
		Date        string `json:"date"`
		StartTime   string `json:"start_time"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.ClientName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Client name is required",
		})
	}

	appointment, err := manager.Book(c.Context(), booking.Request{
		ClientName:  input.ClientName,
		ClientPhone: input.ClientPhone,
		ClientEmail: input.ClientEmail,
		ServiceID:   input.ServiceID,
		Date:        input.Date,
		StartTime:   input.StartTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrServiceNotFound):
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found",
			})
		case errors.Is(err, booking.ErrPastBooking):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Requested time is in the past",
			})
		case errors.Is(err, booking.ErrSlotUnavailable):
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Time slot not available",
			})
		case errors.Is(err, schedule.ErrInvalidDate), errors.Is(err, schedule.ErrInvalidTime):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid date or time",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create appointment",
				Error:   err.Error(),
			})
		}
	}

	redis.InvalidateDate(c.Context(), appointment.Date)

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointmentStatus godoc
// @Summary Update the status of an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id}/status [put]
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	type StatusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}

	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := appointment.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	// Canceling frees the slot for other clients.
	redis.InvalidateDate(c.Context(), appointment.Date)

	return c.JSON(appointment)
}

// ArchiveAppointment godoc
// @Summary Archive or unarchive an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id}/archive [put]
func ArchiveAppointment(c *fiber.Ctx) error {
	type ArchiveInput struct {
		IsArchived *bool `json:"is_archived"`
	}

	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	input := new(ArchiveInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// Defaults to archiving when the flag is omitted.
	archived := true
	if input.IsArchived != nil {
		archived = *input.IsArchived
	}

	if err := db.DB.Model(&appointment).Update("is_archived", archived).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}
	appointment.IsArchived = archived

	redis.InvalidateDate(c.Context(), appointment.Date)

	return c.JSON(appointment)
}
