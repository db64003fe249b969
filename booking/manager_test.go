package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/barberflow/barberflow-api/models"
	"github.com/barberflow/barberflow-api/schedule"
)

var testWindows = []schedule.Window{
	{Start: "09:00", End: "12:00"},
	{Start: "14:00", End: "18:00"},
}

type memStore struct {
	mu       sync.Mutex
	services map[uint]*models.Service
	appts    []*models.Appointment
	nextID   uint
}

func newMemStore(services ...*models.Service) *memStore {
	s := &memStore{services: make(map[uint]*models.Service), nextID: 1}
	for _, svc := range services {
		s.services[svc.ID] = svc
	}
	return s
}

func (s *memStore) ServiceByID(_ context.Context, id uint) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (s *memStore) BlockingAppointments(_ context.Context, date string) ([]schedule.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bookings := make([]schedule.Booking, 0)
	for _, a := range s.appts {
		if a.Date != date || !a.Blocking() {
			continue
		}
		bookings = append(bookings, schedule.Booking{
			StartTime: a.StartTime,
			Duration:  s.services[a.ServiceID].Duration,
		})
	}
	return bookings, nil
}

func (s *memStore) CreateAppointment(_ context.Context, appt *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	appt.ID = s.nextID
	s.nextID++
	s.appts = append(s.appts, appt)
	return nil
}

func testManager(t *testing.T, store Store) *Manager {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	m := NewManager(store, testWindows, 15, loc)
	m.SetNow(func() time.Time {
		return time.Date(2026, 3, 9, 10, 0, 0, 0, loc)
	})
	return m
}

func haircut() *models.Service {
	svc := &models.Service{Name: "Corte Simples", Price: 35, Duration: 45}
	svc.ID = 1
	return svc
}

func TestBookSuccess(t *testing.T) {
	store := newMemStore(haircut())
	m := testManager(t, store)

	appt, err := m.Book(context.Background(), Request{
		ClientName: "João", ClientPhone: "11 99999-0000",
		ServiceID: 1, Date: "2026-03-10", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if appt.ID == 0 || appt.Reference == "" {
		t.Fatalf("expected persisted appointment with id and reference, got %+v", appt)
	}
	if appt.Status != models.StatusScheduled {
		t.Fatalf("expected initial status scheduled, got %s", appt.Status)
	}
	if appt.ServicePrice != 35 || appt.ServiceName != "Corte Simples" {
		t.Fatalf("expected service snapshot on appointment, got %+v", appt)
	}
}

func TestBookServiceNotFound(t *testing.T) {
	m := testManager(t, newMemStore())
	_, err := m.Book(context.Background(), Request{
		ServiceID: 42, Date: "2026-03-10", StartTime: "09:00",
	})
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestBookPastSlot(t *testing.T) {
	m := testManager(t, newMemStore(haircut()))

	// Injected now is 2026-03-09 10:00; one minute earlier the same day.
	_, err := m.Book(context.Background(), Request{
		ServiceID: 1, Date: "2026-03-09", StartTime: "09:59",
	})
	if !errors.Is(err, ErrPastBooking) {
		t.Fatalf("expected ErrPastBooking, got %v", err)
	}

	_, err = m.Book(context.Background(), Request{
		ServiceID: 1, Date: "2026-03-08", StartTime: "09:00",
	})
	if !errors.Is(err, ErrPastBooking) {
		t.Fatalf("expected ErrPastBooking for a past date, got %v", err)
	}
}

func TestBookInvalidInput(t *testing.T) {
	m := testManager(t, newMemStore(haircut()))

	_, err := m.Book(context.Background(), Request{ServiceID: 1, Date: "10/03/2026", StartTime: "09:00"})
	if !errors.Is(err, schedule.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	_, err = m.Book(context.Background(), Request{ServiceID: 1, Date: "2026-03-10", StartTime: "morning"})
	if !errors.Is(err, schedule.ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
}

func TestBookSlotOutsideWindows(t *testing.T) {
	m := testManager(t, newMemStore(haircut()))

	// 11:30 + 45min crosses the 12:00 close.
	_, err := m.Book(context.Background(), Request{
		ServiceID: 1, Date: "2026-03-10", StartTime: "11:30",
	})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}

	_, err = m.Book(context.Background(), Request{
		ServiceID: 1, Date: "2026-03-10", StartTime: "13:00",
	})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable outside all windows, got %v", err)
	}
}

func TestBookConflict(t *testing.T) {
	store := newMemStore(haircut())
	m := testManager(t, store)

	if _, err := m.Book(context.Background(), Request{
		ServiceID: 1, Date: "2026-03-10", StartTime: "09:00",
	}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// 09:00 for 45 minutes blocks 09:00, 09:15 and 09:30.
	for _, slot := range []string{"09:00", "09:15", "09:30"} {
		_, err := m.Book(context.Background(), Request{
			ServiceID: 1, Date: "2026-03-10", StartTime: slot,
		})
		if !errors.Is(err, ErrSlotUnavailable) {
			t.Fatalf("expected ErrSlotUnavailable at %s, got %v", slot, err)
		}
	}

	if _, err := m.Book(context.Background(), Request{
		ServiceID: 1, Date: "2026-03-10", StartTime: "09:45",
	}); err != nil {
		t.Fatalf("09:45 should still be bookable: %v", err)
	}
}

func TestBookConcurrentSameSlot(t *testing.T) {
	store := newMemStore(haircut())
	m := testManager(t, store)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = m.Book(context.Background(), Request{
				ClientName: "Cliente", ServiceID: 1,
				Date: "2026-03-10", StartTime: "14:00",
			})
		}(i)
	}
	wg.Wait()

	wins, losses := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotUnavailable):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || losses != attempts-1 {
		t.Fatalf("expected exactly one winner, got %d wins and %d losses", wins, losses)
	}
}

func TestAvailableSlotsForService(t *testing.T) {
	store := newMemStore(haircut())
	m := testManager(t, store)

	slots, err := m.AvailableSlots(context.Background(), "2026-03-10", 1)
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "17:15" {
		t.Fatalf("unexpected boundary slots: %v", slots)
	}
}

func TestAvailableSlotsCanceledFreesSlot(t *testing.T) {
	store := newMemStore(haircut())
	m := testManager(t, store)

	appt, err := m.Book(context.Background(), Request{
		ServiceID: 1, Date: "2026-03-10", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	appt.Status = models.StatusCanceled

	slots, err := m.AvailableSlots(context.Background(), "2026-03-10", 1)
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}
	if slots[0] != "09:00" {
		t.Fatalf("canceled appointment must free 09:00, got first slot %s", slots[0])
	}
}
