package db

import (
	"fmt"
	"log"
	"time"

	"github.com/barberflow/barberflow-api/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.Service{},
		&models.Appointment{},
		&models.Expense{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedDefaults()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedDefaults inserts the starter catalog and ledger rows on an empty database.
func seedDefaults() {
	var serviceCount int64
	DB.Model(&models.Service{}).Count(&serviceCount)
	if serviceCount == 0 {
		services := []models.Service{
			{Name: "Corte Simples", Price: 35.00, Duration: 45},
			{Name: "Design de Barba", Price: 25.00, Duration: 30},
			{Name: "Corte + Barba", Price: 55.00, Duration: 75},
		}
		for _, service := range services {
			DB.Create(&service)
		}
		log.Println("Seeded default services")
	}

	var expenseCount int64
	DB.Model(&models.Expense{}).Count(&expenseCount)
	if expenseCount == 0 {
		expenses := []models.Expense{
			{Description: "Aluguel", Amount: 1200.00, ExpenseDate: time.Now(), IsFixed: true},
			{Description: "Energia", Amount: 200.00, ExpenseDate: time.Now(), IsFixed: false},
		}
		for _, expense := range expenses {
			DB.Create(&expense)
		}
		log.Println("Seeded default expenses")
	}
}
