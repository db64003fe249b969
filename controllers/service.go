package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/barberflow/barberflow-api/db"
	"github.com/barberflow/barberflow-api/models"
	"github.com/barberflow/barberflow-api/utils"
)

// GetAllServices godoc
// @Summary Get all services
// @Description Get the service catalog ordered by name
// @Tags services
// @Accept json
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} utils.ErrorResponse
// @Router /services [get]
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Order("name").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetService godoc
// @Summary Get a service by ID
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} models.Service
// @Failure 404 {object} utils.ErrorResponse
// @Router /services/{id} [get]
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

func validateService(service *models.Service) error {
	if service.Name == "" {
		return fmt.Errorf("name is required")
	}
	if service.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if service.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if service.Duration%cfg.Granularity != 0 {
		return fmt.Errorf("duration must be a multiple of %d minutes", cfg.Granularity)
	}
	return nil
}

// CreateService godoc
// @Summary Create a new service
// @Tags services
// @Accept json
// @Produce json
// @Param service body models.Service true "Service"
// @Success 201 {object} models.Service
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /services [post]
func CreateService(c *fiber.Ctx) error {
	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := validateService(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService godoc
// @Summary Update a service by ID
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param service body models.Service true "Service"
// @Success 200 {object} models.Service
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /services/{id} [put]
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	var input models.Service
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	service.Name = input.Name
	service.Price = input.Price
	service.Duration = input.Duration
	if err := validateService(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// DeleteService godoc
// @Summary Delete a service by ID
// @Description Deletion is blocked while active appointments reference the service
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /services/{id} [delete]
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	var activeCount int64
	db.DB.Model(&models.Appointment{}).
		Where("service_id = ? AND status <> ? AND is_archived = ?", service.ID, models.StatusCanceled, false).
		Count(&activeCount)
	if activeCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Service has active appointments and cannot be deleted",
		})
	}

	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
