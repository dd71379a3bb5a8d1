package appointment

import (
	"time"

	"github.com/birdchime/appointment-api/internal/httperr"
)

// ===============================
// Business Rules
// ===============================

const (
	BusinessStartHour = 9  // 09:00 local time
	BusinessEndHour   = 17 // 17:00 local time
	SlotMinutes       = 30
)

const SlotDuration = SlotMinutes * time.Minute

const (
	CodePastBooking          = "past_booking"
	CodeOutsideBusinessHours = "outside_business_hours"
	CodeOutsideBusinessDays  = "outside_business_days"
	CodeInvalidSlotLength    = "invalid_slot_length"
	CodeTimeConflict         = "time_conflict"
)

var ErrTimeConflict = httperr.ErrBusinessMsg(CodeTimeConflict, "Time slot already booked.")

// IsWithinBusinessHours checks the wall-clock window only: start at or after
// 09:00, end at or before 17:00, both aligned to a :00 or :30 boundary.
// Duration and weekday are separate gates.
func IsWithinBusinessHours(startAt, endAt time.Time) bool {
	if startAt.Hour() < BusinessStartHour {
		return false
	}
	if endAt.Hour() > BusinessEndHour {
		return false
	}

	validMinutes := func(m int) bool { return m == 0 || m == 30 }
	if !validMinutes(startAt.Minute()) || !validMinutes(endAt.Minute()) {
		return false
	}
	return true
}

func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

func IsSlotLengthValid(startAt, endAt time.Time) bool {
	return endAt.Sub(startAt) == SlotDuration
}

// ValidateBookingTime runs the temporal policy gates in fixed order:
// past booking, business hours, business day, slot length. The first
// failing gate is the reported error. Inputs must already be in the
// business timezone.
func ValidateBookingTime(now, startAt, endAt time.Time) error {
	if startAt.Before(now) {
		return httperr.ErrBusinessMsg(CodePastBooking, "Cannot book for past time.")
	}
	if !IsWithinBusinessHours(startAt, endAt) {
		return httperr.ErrBusinessMsg(
			CodeOutsideBusinessHours,
			"Appointment must be inside business hours (9:00-17:00) and 30-min increments.",
		)
	}
	if !IsBusinessDay(startAt) {
		return httperr.ErrBusinessMsg(
			CodeOutsideBusinessDays,
			"Appointments are only available Monday to Friday.",
		)
	}
	if !IsSlotLengthValid(startAt, endAt) {
		return httperr.ErrBusinessMsg(
			CodeInvalidSlotLength,
			"Slot must be exactly 30 minutes.",
		)
	}
	return nil
}

// Overlaps reports half-open interval overlap: [s1,e1) and [s2,e2)
// overlap iff s1 < e2 && e1 > s2.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
