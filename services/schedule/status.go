package schedule

import "time"

// Status labels shown next to the working-hours widget.
const (
	LabelOpenNow      = "Open Now"
	LabelClosedNow    = "Closed Now"
	LabelClosedToday  = "Closed Today"
	LabelHoursNotSet  = "Hours not set"
	LabelCallForHours = "Call for hours"
)

// OpenStatus is the transient open/closed verdict for a moment in time.
// It is recomputed, never persisted.
type OpenStatus struct {
	IsOpen bool   `json:"isOpen"`
	Label  string `json:"label"`
}

// Evaluate decides whether the business is open at the given moment.
//
// The open interval is half-open: the opening minute counts as open,
// the closing minute as closed. When the closing time is earlier than
// the opening time the interval is treated as crossing midnight
// (e.g. 20:00–02:00 is open overnight).
func Evaluate(week Week, now time.Time) OpenStatus {
	day := week.onDate(now)
	if day == nil {
		return OpenStatus{IsOpen: false, Label: LabelHoursNotSet}
	}
	if day.Closed {
		return OpenStatus{IsOpen: false, Label: LabelClosedToday}
	}
	if day.Open == "" || day.Close == "" {
		return OpenStatus{IsOpen: false, Label: LabelCallForHours}
	}

	openMin, okOpen := minutesOfDay(day.Open)
	closeMin, okClose := minutesOfDay(day.Close)
	if !okOpen || !okClose {
		return OpenStatus{IsOpen: false, Label: LabelCallForHours}
	}

	cur := now.Hour()*60 + now.Minute()

	var open bool
	if closeMin < openMin {
		// Interval crosses midnight.
		open = cur >= openMin || cur < closeMin
	} else {
		open = cur >= openMin && cur < closeMin
	}

	if open {
		return OpenStatus{IsOpen: true, Label: LabelOpenNow}
	}
	return OpenStatus{IsOpen: false, Label: LabelClosedNow}
}
