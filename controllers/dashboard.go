package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/barberflow/barberflow-api/db"
	"github.com/barberflow/barberflow-api/models"
	"github.com/barberflow/barberflow-api/utils"
)

// GetDashboardOverview godoc
// @Summary Get the monthly revenue and expense report
// @Description Revenue counts completed, non-archived appointments since the first of the month
// @Tags dashboard
// @Produce json
// @Success 200 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /dashboard [get]
func GetDashboardOverview(c *fiber.Ctx) error {
	now := time.Now().In(cfg.Location)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, cfg.Location)
	firstOfMonthStr := firstOfMonth.Format("2006-01-02")

	type RevenueResult struct {
		TotalRevenue   float64
		CompletedCount int64
	}
	var revenue RevenueResult
	err := db.DB.Model(&models.Appointment{}).
		Select("COALESCE(SUM(service_price), 0) as total_revenue, COUNT(*) as completed_count").
		Where("status = ? AND is_archived = ? AND date >= ?", models.StatusCompleted, false, firstOfMonthStr).
		Scan(&revenue).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute revenue",
			Error:   err.Error(),
		})
	}

	type ExpenseResult struct {
		TotalExpenses float64
	}
	var expenses ExpenseResult
	err = db.DB.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0) as total_expenses").
		Where("expense_date >= ?", firstOfMonth).
		Scan(&expenses).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute expenses",
			Error:   err.Error(),
		})
	}

	// Daily revenue over the last 30 days for the chart.
	type DailyRow struct {
		Date         string  `json:"date"`
		Revenue      float64 `json:"revenue"`
		Appointments int64   `json:"appointments"`
	}
	since := now.AddDate(0, 0, -30).Format("2006-01-02")
	var daily []DailyRow
	err = db.DB.Model(&models.Appointment{}).
		Select("date, COALESCE(SUM(service_price), 0) as revenue, COUNT(*) as appointments").
		Where("status = ? AND is_archived = ? AND date >= ?", models.StatusCompleted, false, since).
		Group("date").
		Order("date").
		Scan(&daily).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute daily data",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"total_revenue":          revenue.TotalRevenue,
		"completed_appointments": revenue.CompletedCount,
		"total_expenses":         expenses.TotalExpenses,
		"net_income":             revenue.TotalRevenue - expenses.TotalExpenses,
		"daily_data":             daily,
		"last_updated":           now,
	})
}
