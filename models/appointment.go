package models

import (
	"fmt"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// Appointment is a client booking for one slot. ServiceName and ServicePrice
// are snapshots taken at booking time, so reports survive catalog edits.
type Appointment struct {
	gorm.Model
	Reference    string            `json:"reference" gorm:"size:36;uniqueIndex"`
	ClientName   string            `json:"client_name" gorm:"size:100"`
	ClientPhone  string            `json:"client_phone" gorm:"size:20"`
	ClientEmail  string            `json:"client_email" gorm:"size:100"`
	ServiceID    uint              `json:"service_id"`
	Service      Service           `json:"service" gorm:"foreignKey:ServiceID"`
	ServiceName  string            `json:"service_name" gorm:"size:100"`
	ServicePrice float64           `json:"service_price"`
	Date         string            `json:"date" gorm:"size:10;index"` // "2006-01-02"
	StartTime    string            `json:"start_time" gorm:"size:5"`  // "15:04"
	Status       AppointmentStatus `json:"status" gorm:"size:20"`
	IsArchived   bool              `json:"is_archived" gorm:"default:false;index"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return nil
}

// Blocking reports whether the appointment occupies its slot for availability
// purposes. Canceled and archived appointments free their slot.
func (a *Appointment) Blocking() bool {
	return a.Status != StatusCanceled && !a.IsArchived
}

// CanTransition validates a status change without touching the database.
func (a *Appointment) CanTransition(newStatus AppointmentStatus) error {
	switch newStatus {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCanceled:
	default:
		return fmt.Errorf("unknown status %s", newStatus)
	}

	switch a.Status {
	case StatusScheduled:
		if newStatus == StatusScheduled {
			return fmt.Errorf("appointment is already %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}
	return nil
}

// UpdateStatus applies a validated status change.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if err := a.CanTransition(newStatus); err != nil {
		return err
	}
	a.Status = newStatus
	return tx.Save(a).Error
}
