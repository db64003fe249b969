package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/barberflow/barberflow-api/db"
	"github.com/barberflow/barberflow-api/models"
	"github.com/barberflow/barberflow-api/utils"
)

// GetMonthExpenses godoc
// @Summary Get the current month's expenses
// @Tags expenses
// @Produce json
// @Success 200 {array} models.Expense
// @Failure 500 {object} utils.ErrorResponse
// @Router /expenses [get]
func GetMonthExpenses(c *fiber.Ctx) error {
	now := time.Now().In(cfg.Location)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, cfg.Location)

	var expenses []models.Expense
	err := db.DB.Where("expense_date >= ?", firstOfMonth).
		Order("expense_date DESC").
		Find(&expenses).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch expenses",
			Error:   err.Error(),
		})
	}
	return c.JSON(expenses)
}

// CreateExpense godoc
// @Summary Add an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Success 201 {object} models.Expense
// @Failure 400 {object} utils.ErrorResponse
// @Router /expenses [post]
func CreateExpense(c *fiber.Ctx) error {
	type ExpenseInput struct {
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
		Date        string  `json:"date"`
		IsFixed     bool    `json:"is_fixed"`
	}

	input := new(ExpenseInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Description is required",
		})
	}
	if input.Amount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Amount must not be negative",
		})
	}

	expenseDate := time.Now().In(cfg.Location)
	if input.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", input.Date, cfg.Location)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid date",
				Error:   err.Error(),
			})
		}
		expenseDate = parsed
	}

	expense := models.Expense{
		Description: input.Description,
		Amount:      input.Amount,
		ExpenseDate: expenseDate,
		IsFixed:     input.IsFixed,
	}
	if err := db.DB.Create(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create expense",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

// DeleteExpense godoc
// @Summary Delete an expense by ID
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /expenses/{id} [delete]
func DeleteExpense(c *fiber.Ctx) error {
	id := c.Params("id")
	var expense models.Expense
	if err := db.DB.First(&expense, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: fmt.Sprintf("Expense %s not found", id),
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete expense",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
