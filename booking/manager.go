package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/barberflow/barberflow-api/models"
	"github.com/barberflow/barberflow-api/schedule"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrPastBooking     = errors.New("requested slot is not in the future")
	ErrSlotUnavailable = errors.New("slot is not available")
)

// Store is the persistence collaborator the manager books against.
type Store interface {
	ServiceByID(ctx context.Context, id uint) (*models.Service, error)
	BlockingAppointments(ctx context.Context, date string) ([]schedule.Booking, error)
	CreateAppointment(ctx context.Context, appt *models.Appointment) error
}

// Request carries one client booking attempt.
type Request struct {
	ClientName  string
	ClientPhone string
	ClientEmail string
	ServiceID   uint
	Date        string // "2006-01-02"
	StartTime   string // "15:04"
}

// Manager computes availability and commits bookings. The commit path is
// serialized per date so two clients racing for the same slot cannot both win.
type Manager struct {
	store   Store
	windows []schedule.Window
	step    int
	loc     *time.Location
	now     func() time.Time

	mu        sync.Mutex
	dateLocks map[string]*sync.Mutex
}

func NewManager(store Store, windows []schedule.Window, step int, loc *time.Location) *Manager {
	return &Manager{
		store:     store,
		windows:   windows,
		step:      step,
		loc:       loc,
		now:       time.Now,
		dateLocks: make(map[string]*sync.Mutex),
	}
}

// SetNow overrides the clock. Tests only.
func (m *Manager) SetNow(now func() time.Time) {
	m.now = now
}

func (m *Manager) lockDate(date string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.dateLocks[date]
	if !ok {
		lock = &sync.Mutex{}
		m.dateLocks[date] = lock
	}
	return lock
}

// AvailableSlots returns the bookable start times for a service on a date.
func (m *Manager) AvailableSlots(ctx context.Context, date string, serviceID uint) ([]string, error) {
	service, err := m.store.ServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	bookings, err := m.store.BlockingAppointments(ctx, date)
	if err != nil {
		return nil, err
	}

	return schedule.AvailableSlots(m.windows, m.step, service.Duration, date, bookings, m.loc, m.now())
}

// Book recomputes availability at commit time and inserts the appointment.
// The availability list a client saw earlier is never trusted.
func (m *Manager) Book(ctx context.Context, req Request) (*models.Appointment, error) {
	service, err := m.store.ServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	slot, err := schedule.ParseDateTime(req.Date, req.StartTime, m.loc)
	if err != nil {
		return nil, err
	}
	if !slot.After(m.now().In(m.loc)) {
		return nil, ErrPastBooking
	}

	lock := m.lockDate(req.Date)
	lock.Lock()
	defer lock.Unlock()

	bookings, err := m.store.BlockingAppointments(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	available, err := schedule.AvailableSlots(m.windows, m.step, service.Duration, req.Date, bookings, m.loc, m.now())
	if err != nil {
		return nil, err
	}
	if !contains(available, req.StartTime) {
		return nil, ErrSlotUnavailable
	}

	appt := &models.Appointment{
		Reference:    uuid.NewString(),
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		ServicePrice: service.Price,
		Date:         req.Date,
		StartTime:    req.StartTime,
		Status:       models.StatusScheduled,
	}
	if err := m.store.CreateAppointment(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func contains(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
