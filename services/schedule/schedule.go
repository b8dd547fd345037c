// Package schedule implements the working-hours view logic: canonical
// week ordering, 12-hour time formatting and the live open/closed
// evaluation. All times are naive local wall-clock "HH:MM" strings;
// there is no timezone handling.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"glowhaus/models"
)

// dayIndex assigns each weekday its canonical Monday-first position.
var dayIndex = map[string]int{
	models.Monday:    0,
	models.Tuesday:   1,
	models.Wednesday: 2,
	models.Thursday:  3,
	models.Friday:    4,
	models.Saturday:  5,
	models.Sunday:    6,
}

// FormatTime converts a 24-hour "HH:MM" string to a 12-hour display
// string, e.g. "08:00" -> "8:00 AM". Empty input yields an empty
// string; input that does not parse is returned unchanged rather than
// failing, so a bad record degrades to showing the raw value.
func FormatTime(t string) string {
	if t == "" {
		return ""
	}
	hour, minute, ok := splitClock(t)
	if !ok {
		return t
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, ampm)
}

// FormatDay renders one day's hours for display: "Closed", a formatted
// range, or the call-for-hours fallback when the record is incomplete.
func FormatDay(day models.DaySchedule) string {
	if day.Closed {
		return "Closed"
	}
	if day.Open != "" && day.Close != "" {
		return FormatTime(day.Open) + " – " + FormatTime(day.Close)
	}
	return "Call for hours"
}

// minutesOfDay parses "HH:MM" into minutes since midnight.
func minutesOfDay(t string) (int, bool) {
	hour, minute, ok := splitClock(t)
	if !ok {
		return 0, false
	}
	return hour*60 + minute, true
}

func splitClock(t string) (hour, minute int, ok bool) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
