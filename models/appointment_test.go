package models

import "testing"

func TestCanTransitionFromScheduled(t *testing.T) {
	for _, next := range []AppointmentStatus{StatusConfirmed, StatusCompleted, StatusCanceled} {
		a := Appointment{Status: StatusScheduled}
		if err := a.CanTransition(next); err != nil {
			t.Fatalf("scheduled -> %s should be allowed: %v", next, err)
		}
	}
}

func TestCanTransitionFromConfirmed(t *testing.T) {
	a := Appointment{Status: StatusConfirmed}
	if err := a.CanTransition(StatusCompleted); err != nil {
		t.Fatalf("confirmed -> completed should be allowed: %v", err)
	}
	if err := a.CanTransition(StatusScheduled); err == nil {
		t.Fatalf("confirmed -> scheduled must be rejected")
	}
}

func TestCanTransitionTerminalStates(t *testing.T) {
	for _, terminal := range []AppointmentStatus{StatusCompleted, StatusCanceled} {
		a := Appointment{Status: terminal}
		if err := a.CanTransition(StatusConfirmed); err == nil {
			t.Fatalf("%s must not allow further transitions", terminal)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	a := Appointment{Status: StatusScheduled}
	if err := a.CanTransition("done"); err == nil {
		t.Fatalf("unknown status must be rejected")
	}
}

func TestBlocking(t *testing.T) {
	cases := []struct {
		appt Appointment
		want bool
	}{
		{Appointment{Status: StatusScheduled}, true},
		{Appointment{Status: StatusConfirmed}, true},
		{Appointment{Status: StatusCompleted}, true},
		{Appointment{Status: StatusCanceled}, false},
		{Appointment{Status: StatusScheduled, IsArchived: true}, false},
	}
	for _, c := range cases {
		if got := c.appt.Blocking(); got != c.want {
			t.Fatalf("Blocking() for status=%s archived=%v: got %v, want %v",
				c.appt.Status, c.appt.IsArchived, got, c.want)
		}
	}
}
