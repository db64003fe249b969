package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/barberflow/barberflow-api/config"
	"github.com/barberflow/barberflow-api/db"
	"github.com/barberflow/barberflow-api/models"
	"github.com/barberflow/barberflow-api/schedule"
	"github.com/barberflow/barberflow-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs(cfg *config.Config) {
	mailer := utils.Mailer{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.EmailUser,
		Pass: cfg.EmailPass,
	}
	if !mailer.Enabled() {
		log.Println("SMTP not configured, reminder emails disabled")
		return
	}

	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", func() {
		sendAppointmentReminders(cfg, mailer)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for appointments roughly an hour away and
// emails the client a reminder.
func sendAppointmentReminders(cfg *config.Config, mailer utils.Mailer) {
	var appointments []models.Appointment
	err := db.DB.Preload("Service").
		Where("status IN ? AND is_archived = ? AND client_email <> ''",
			[]models.AppointmentStatus{models.StatusScheduled, models.StatusConfirmed}, false).
		Where("date IN ?", []string{
			time.Now().In(cfg.Location).Format("2006-01-02"),
			time.Now().In(cfg.Location).AddDate(0, 0, 1).Format("2006-01-02"),
		}).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	now := time.Now().In(cfg.Location)
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	for _, appointment := range appointments {
		start, err := schedule.ParseDateTime(appointment.Date, appointment.StartTime, cfg.Location)
		if err != nil {
			continue
		}
		if start.Before(startWindow) || start.After(endWindow) {
			continue
		}

		if err := sendReminderEmail(mailer, &appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.ClientEmail)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(mailer utils.Mailer, appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appointment.ServiceName)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Reference:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>BarberFlow</p>
	`, appointment.ClientName, appointment.ServiceName, appointment.Date,
		appointment.StartTime, appointment.Reference)

	return mailer.Send(appointment.ClientEmail, subject, body)
}
