package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/barberflow/barberflow-api/models"
	"github.com/barberflow/barberflow-api/schedule"
)

// GormStore backs the manager with the shared Postgres connection.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := s.DB.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (s *GormStore) BlockingAppointments(ctx context.Context, date string) ([]schedule.Booking, error) {
	var rows []models.Appointment
	err := s.DB.WithContext(ctx).Preload("Service").
		Where("date = ? AND status <> ? AND is_archived = ?", date, models.StatusCanceled, false).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]schedule.Booking, 0, len(rows))
	for _, row := range rows {
		duration := row.Service.Duration
		if duration <= 0 {
			// Service edited or removed after booking; fall back to one step
			// so the slot itself still blocks.
			duration = 1
		}
		bookings = append(bookings, schedule.Booking{StartTime: row.StartTime, Duration: duration})
	}
	return bookings, nil
}

func (s *GormStore) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(appt).Error
	})
}
