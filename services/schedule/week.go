package schedule

import (
	"time"

	"glowhaus/models"
)

// Week holds a business's schedule as a fixed-size array indexed by the
// canonical Monday-first day position. Day presence and ordering are
// structural rather than convention-based: a nil slot means the day was
// absent from the input. Build it once per schedule version and reuse
// it; construction is the only sorting pass.
type Week struct {
	days [7]*models.DaySchedule
}

// NewWeek builds a Week from an unordered, possibly sparse set of day
// schedules. Entries with unrecognized day names are dropped. If a day
// appears more than once the last entry wins.
func NewWeek(days []models.DaySchedule) Week {
	var w Week
	for i := range days {
		idx, ok := dayIndex[days[i].Day]
		if !ok {
			continue
		}
		d := days[i]
		w.days[idx] = &d
	}
	return w
}

// Days returns the schedules present in canonical Monday-to-Sunday
// order. Absent days are omitted, not synthesized.
func (w Week) Days() []models.DaySchedule {
	out := make([]models.DaySchedule, 0, 7)
	for _, d := range w.days {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out
}

// Day returns the schedule for the named day, or nil when absent.
func (w Week) Day(name string) *models.DaySchedule {
	idx, ok := dayIndex[name]
	if !ok {
		return nil
	}
	return w.days[idx]
}

// onDate returns the schedule for the weekday of t, or nil when absent.
func (w Week) onDate(t time.Time) *models.DaySchedule {
	// time.Weekday counts Sunday=0..Saturday=6; our array is Monday-first.
	idx := (int(t.Weekday()) + 6) % 7
	return w.days[idx]
}
