package appointment

import (
	"testing"
	"time"

	"github.com/birdchime/appointment-api/internal/models"
)

func utc(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestGenerateSlots_FullWeekdayYields16Slots(t *testing.T) {
	// Monday 2024-01-08
	slots := GenerateSlots(
		utc(2024, 1, 8, 0, 0),
		utc(2024, 1, 8, 23, 59),
		time.UTC,
		nil,
	)

	if len(slots) != 16 {
		t.Fatalf("slots = %d, want 16", len(slots))
	}
	if !slots[0].StartAt.Equal(utc(2024, 1, 8, 9, 0)) {
		t.Fatalf("first slot start = %v, want 09:00", slots[0].StartAt)
	}
	if !slots[15].StartAt.Equal(utc(2024, 1, 8, 16, 30)) {
		t.Fatalf("last slot start = %v, want 16:30", slots[15].StartAt)
	}
	for i, s := range slots {
		if !s.Available {
			t.Fatalf("slot %d not available, want all available", i)
		}
		if got := s.EndAt.Sub(s.StartAt); got != 30*time.Minute {
			t.Fatalf("slot %d length = %v, want 30m", i, got)
		}
	}
}

func TestGenerateSlots_ExistingAppointmentMarksSlotUnavailable(t *testing.T) {
	existing := []models.Appointment{
		{StartAt: utc(2024, 1, 8, 9, 0), EndAt: utc(2024, 1, 8, 9, 30)},
	}

	slots := GenerateSlots(
		utc(2024, 1, 8, 0, 0),
		utc(2024, 1, 8, 23, 59),
		time.UTC,
		existing,
	)

	if len(slots) != 16 {
		t.Fatalf("slots = %d, want 16", len(slots))
	}
	if slots[0].Available {
		t.Fatalf("09:00 slot available, want unavailable")
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i].Available {
			t.Fatalf("slot %d unavailable, want available", i)
		}
	}
}

func TestGenerateSlots_MisalignedAppointmentBlocksBothSlots(t *testing.T) {
	existing := []models.Appointment{
		{StartAt: utc(2024, 1, 8, 9, 15), EndAt: utc(2024, 1, 8, 9, 45)},
	}

	slots := GenerateSlots(
		utc(2024, 1, 8, 0, 0),
		utc(2024, 1, 8, 23, 59),
		time.UTC,
		existing,
	)

	if slots[0].Available || slots[1].Available {
		t.Fatalf("09:00/09:30 availability = %v/%v, want both unavailable",
			slots[0].Available, slots[1].Available)
	}
	if !slots[2].Available {
		t.Fatalf("10:00 slot unavailable, want available")
	}
}

func TestGenerateSlots_WeekendYieldsNothing(t *testing.T) {
	// Saturday 2024-01-06 through Sunday
	slots := GenerateSlots(
		utc(2024, 1, 6, 0, 0),
		utc(2024, 1, 7, 23, 59),
		time.UTC,
		nil,
	)

	if len(slots) != 0 {
		t.Fatalf("slots = %d, want 0 on a weekend", len(slots))
	}
}

func TestGenerateSlots_FullWeekYields80Slots(t *testing.T) {
	// Monday 2024-01-08 through Sunday 2024-01-14
	slots := GenerateSlots(
		utc(2024, 1, 8, 0, 0),
		utc(2024, 1, 15, 0, 0),
		time.UTC,
		nil,
	)

	if len(slots) != 80 {
		t.Fatalf("slots = %d, want 80 for a full week", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i-1].StartAt.Before(slots[i].StartAt) {
			t.Fatalf("slots not strictly ascending at %d", i)
		}
	}
}

func TestGenerateSlots_MidMorningRangeStartExcludesEarlierSlots(t *testing.T) {
	slots := GenerateSlots(
		utc(2024, 1, 8, 10, 15),
		utc(2024, 1, 8, 23, 59),
		time.UTC,
		nil,
	)

	if len(slots) == 0 {
		t.Fatalf("expected slots after 10:15")
	}
	if !slots[0].StartAt.Equal(utc(2024, 1, 8, 10, 30)) {
		t.Fatalf("first slot start = %v, want 10:30", slots[0].StartAt)
	}
}

func TestGenerateSlots_OnlySlotStartIsRangeChecked(t *testing.T) {
	// rangeEnd 16:45 keeps the 16:30 slot even though it ends at 17:00.
	slots := GenerateSlots(
		utc(2024, 1, 8, 16, 0),
		utc(2024, 1, 8, 16, 45),
		time.UTC,
		nil,
	)

	if len(slots) != 2 {
		t.Fatalf("slots = %d, want 2 (16:00 and 16:30)", len(slots))
	}
	if !slots[1].EndAt.Equal(utc(2024, 1, 8, 17, 0)) {
		t.Fatalf("last slot end = %v, want 17:00", slots[1].EndAt)
	}

	// rangeEnd 16:30 cuts the 16:30 slot off.
	slots = GenerateSlots(
		utc(2024, 1, 8, 16, 0),
		utc(2024, 1, 8, 16, 30),
		time.UTC,
		nil,
	)
	if len(slots) != 1 {
		t.Fatalf("slots = %d, want 1 when rangeEnd is 16:30", len(slots))
	}
}

func TestGenerateSlots_BusinessHoursBoundaries(t *testing.T) {
	slots := GenerateSlots(
		utc(2024, 1, 8, 0, 0),
		utc(2024, 1, 9, 0, 0),
		time.UTC,
		nil,
	)

	for _, s := range slots {
		if s.StartAt.Hour() < BusinessStartHour {
			t.Fatalf("slot starts before 09:00: %v", s.StartAt)
		}
		endHour, endMin := s.EndAt.Hour(), s.EndAt.Minute()
		if endHour > BusinessEndHour || (endHour == BusinessEndHour && endMin > 0) {
			t.Fatalf("slot ends after 17:00: %v", s.EndAt)
		}
	}
}
