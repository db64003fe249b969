package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrInvalidDate     = errors.New("invalid date format")
	ErrInvalidTime     = errors.New("invalid time format")
	ErrInvalidDuration = errors.New("invalid duration")
)

// Window is a contiguous span of the day during which appointments may run.
type Window struct {
	Start string // "HH:MM", 24h
	End   string
}

// Booking is an existing appointment that blocks part of the grid.
type Booking struct {
	StartTime string // "HH:MM"
	Duration  int    // minutes
}

func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

func ParseDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return time.Time{}, ErrInvalidTime
	}
	if _, err := ParseDate(dateStr, loc); err != nil {
		return time.Time{}, err
	}

	parsed, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return parsed, nil
}

func ParseClockToMinutes(timeStr string) (int, error) {
	tm, err := time.Parse("15:04", timeStr)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return tm.Hour()*60 + tm.Minute(), nil
}

func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func IsDatePast(dateStr string, loc *time.Location, now time.Time) (bool, error) {
	date, err := ParseDate(dateStr, loc)
	if err != nil {
		return false, err
	}
	n := now.In(loc)
	startToday := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	return date.Before(startToday), nil
}

// IsSlotPast reports whether the slot's start is not strictly in the future.
func IsSlotPast(dateStr, timeStr string, loc *time.Location, now time.Time) (bool, error) {
	slot, err := ParseDateTime(dateStr, timeStr, loc)
	if err != nil {
		return false, err
	}
	return !slot.After(now.In(loc)), nil
}

// GenerateSlots enumerates every start time on the step grid at which an
// appointment of the given duration fits entirely inside a single window.
// Spanning across two windows is never allowed.
func GenerateSlots(windows []Window, step, duration int) ([]string, error) {
	if step <= 0 || duration <= 0 {
		return nil, ErrInvalidDuration
	}

	seen := make(map[int]bool)
	starts := make([]int, 0)
	for _, w := range windows {
		startMin, err := ParseClockToMinutes(w.Start)
		if err != nil {
			return nil, err
		}
		endMin, err := ParseClockToMinutes(w.End)
		if err != nil {
			return nil, err
		}

		for cursor := startMin; cursor < endMin; cursor += step {
			if cursor+duration > endMin {
				continue
			}
			if !seen[cursor] {
				seen[cursor] = true
				starts = append(starts, cursor)
			}
		}
	}
	sort.Ints(starts)

	slots := make([]string, 0, len(starts))
	for _, s := range starts {
		slots = append(slots, MinutesToClock(s))
	}
	return slots, nil
}

// OccupiedSlots returns every step-aligned point covered by a booking.
// A booking starting at T with duration Db blocks T, T+step, ... for every
// point strictly before T+Db, so trailing minutes of an unaligned duration
// still block the next grid point.
func OccupiedSlots(bookings []Booking, step int) (map[string]bool, error) {
	if step <= 0 {
		return nil, ErrInvalidDuration
	}
	occupied := make(map[string]bool)
	for _, b := range bookings {
		start, err := ParseClockToMinutes(b.StartTime)
		if err != nil {
			return nil, err
		}
		if b.Duration <= 0 {
			return nil, ErrInvalidDuration
		}
		for cursor := start; cursor < start+b.Duration; cursor += step {
			occupied[MinutesToClock(cursor)] = true
		}
	}
	return occupied, nil
}

// AvailableSlots computes the bookable start times for a date: the slot grid
// minus occupied points, minus slots already past when the date is today.
// Past dates yield an empty list. The caller injects now, so identical inputs
// always produce identical output.
func AvailableSlots(windows []Window, step, duration int, dateStr string, bookings []Booking, loc *time.Location, now time.Time) ([]string, error) {
	past, err := IsDatePast(dateStr, loc, now)
	if err != nil {
		return nil, err
	}
	if past {
		return []string{}, nil
	}

	grid, err := GenerateSlots(windows, step, duration)
	if err != nil {
		return nil, err
	}
	occupied, err := OccupiedSlots(bookings, step)
	if err != nil {
		return nil, err
	}

	available := make([]string, 0, len(grid))
	for _, slot := range grid {
		if occupied[slot] {
			continue
		}
		slotPast, err := IsSlotPast(dateStr, slot, loc, now)
		if err != nil {
			return nil, err
		}
		if slotPast {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}
