package appointment

import (
	"time"

	"github.com/birdchime/appointment-api/internal/models"
)

// TimeSlot is one bookable 30-minute interval on the grid, annotated with
// whether an existing appointment already occupies it.
type TimeSlot struct {
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	Available bool      `json:"available"`
}

// GenerateSlots builds the canonical slot grid for [rangeStart, rangeEnd),
// day by day. Weekdays contribute starts at every :00 and :30 between 09:00
// and 16:30 wall clock in loc; weekends contribute nothing. Only the slot
// start is range-checked, so the last slot of a range may end past rangeEnd.
// existing must be ordered ascending by StartAt; output is ascending too.
func GenerateSlots(
	rangeStart time.Time,
	rangeEnd time.Time,
	loc *time.Location,
	existing []models.Appointment,
) []TimeSlot {

	slots := []TimeSlot{}
	apIdx := 0

	cur := rangeStart.In(loc)
	for cur.Before(rangeEnd) {
		if IsBusinessDay(cur) {
			for hour := BusinessStartHour; hour < BusinessEndHour; hour++ {
				for _, minute := range []int{0, 30} {
					slotStart := time.Date(
						cur.Year(), cur.Month(), cur.Day(),
						hour, minute, 0, 0,
						loc,
					)
					if slotStart.Before(rangeStart) || !slotStart.Before(rangeEnd) {
						continue
					}
					slotEnd := slotStart.Add(SlotDuration)

					// skip appointments that already ended
					for apIdx < len(existing) && !existing[apIdx].EndAt.After(slotStart) {
						apIdx++
					}

					conflict := false
					for i := apIdx; i < len(existing) && existing[i].StartAt.Before(slotEnd); i++ {
						if Overlaps(slotStart, slotEnd, existing[i].StartAt, existing[i].EndAt) {
							conflict = true
							break
						}
					}

					slots = append(slots, TimeSlot{
						StartAt:   slotStart,
						EndAt:     slotEnd,
						Available: !conflict,
					})
				}
			}
		}

		// next day, midnight
		cur = time.Date(cur.Year(), cur.Month(), cur.Day()+1, 0, 0, 0, 0, loc)
	}

	return slots
}
