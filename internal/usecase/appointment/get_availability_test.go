package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/birdchime/appointment-api/internal/models"
)

func TestGetAvailability_MarksBookedSlots(t *testing.T) {
	day := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC) // Monday

	uc := NewGetAvailability(&fakeRepo{
		findInRangeFn: func(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
			return []models.Appointment{
				{
					StartAt: day.Add(9 * time.Hour),
					EndAt:   day.Add(9*time.Hour + 30*time.Minute),
				},
			}, nil
		},
	}, nil, time.UTC)

	slots, err := uc.Execute(context.Background(), day, day.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(slots) != 16 {
		t.Fatalf("slots = %d, want 16", len(slots))
	}

	unavailable := 0
	for _, s := range slots {
		if !s.Available {
			unavailable++
			if !s.StartAt.Equal(day.Add(9 * time.Hour)) {
				t.Fatalf("wrong slot marked unavailable: %v", s.StartAt)
			}
		}
	}
	if unavailable != 1 {
		t.Fatalf("unavailable slots = %d, want 1", unavailable)
	}
}

func TestGetAvailability_EmptyCalendarIsAllAvailable(t *testing.T) {
	day := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	uc := NewGetAvailability(&fakeRepo{
		findInRangeFn: func(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
			return nil, nil
		},
	}, nil, time.UTC)

	slots, err := uc.Execute(context.Background(), day, day.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	for _, s := range slots {
		if !s.Available {
			t.Fatalf("slot %v unavailable on an empty calendar", s.StartAt)
		}
	}
}
