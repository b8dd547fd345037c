package schedule

import (
	"testing"
	"time"

	"glowhaus/models"

	"github.com/stretchr/testify/assert"
)

// at builds a timestamp on a fixed known week. 2024-01-01 is a Monday.
func at(day string, hour, minute int) time.Time {
	offsets := map[string]int{
		models.Monday: 0, models.Tuesday: 1, models.Wednesday: 2,
		models.Thursday: 3, models.Friday: 4, models.Saturday: 5,
		models.Sunday: 6,
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offsets[day]).Add(
		time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestEvaluateSameDayInterval(t *testing.T) {
	week := NewWeek([]models.DaySchedule{
		{Day: models.Monday, Open: "09:00", Close: "17:00"},
	})

	tests := []struct {
		name     string
		now      time.Time
		wantOpen bool
	}{
		{name: "one minute before opening", now: at(models.Monday, 8, 59), wantOpen: false},
		{name: "opening minute is open", now: at(models.Monday, 9, 0), wantOpen: true},
		{name: "last minute before close", now: at(models.Monday, 16, 59), wantOpen: true},
		{name: "closing minute is closed", now: at(models.Monday, 17, 0), wantOpen: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Evaluate(week, tt.now)
			assert.Equal(t, tt.wantOpen, st.IsOpen)
			if tt.wantOpen {
				assert.Equal(t, LabelOpenNow, st.Label)
			} else {
				assert.Equal(t, LabelClosedNow, st.Label)
			}
		})
	}
}

func TestEvaluateMidnightCrossing(t *testing.T) {
	week := NewWeek([]models.DaySchedule{
		{Day: models.Friday, Open: "20:00", Close: "02:00"},
	})

	tests := []struct {
		name     string
		now      time.Time
		wantOpen bool
	}{
		{name: "just before midnight", now: at(models.Friday, 23, 59), wantOpen: true},
		{name: "midnight", now: at(models.Friday, 0, 0), wantOpen: true},
		{name: "deep night still open", now: at(models.Friday, 1, 59), wantOpen: true},
		{name: "closing minute", now: at(models.Friday, 2, 0), wantOpen: false},
		{name: "evening before opening", now: at(models.Friday, 19, 59), wantOpen: false},
		{name: "opening minute", now: at(models.Friday, 20, 0), wantOpen: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Evaluate(week, tt.now)
			assert.Equal(t, tt.wantOpen, st.IsOpen)
		})
	}
}

func TestEvaluateClosedToday(t *testing.T) {
	week := NewWeek([]models.DaySchedule{
		{Day: models.Sunday, Closed: true, Open: "09:00", Close: "17:00"},
	})

	for _, hm := range [][2]int{{0, 0}, {9, 30}, {12, 0}, {23, 59}} {
		st := Evaluate(week, at(models.Sunday, hm[0], hm[1]))
		assert.False(t, st.IsOpen)
		assert.Equal(t, LabelClosedToday, st.Label)
	}
}

func TestEvaluateDayAbsent(t *testing.T) {
	week := NewWeek([]models.DaySchedule{
		{Day: models.Monday, Open: "09:00", Close: "17:00"},
	})

	st := Evaluate(week, at(models.Tuesday, 10, 0))
	assert.False(t, st.IsOpen)
	assert.Equal(t, LabelHoursNotSet, st.Label)
}

func TestEvaluateIncompleteHours(t *testing.T) {
	tests := []struct {
		name string
		day  models.DaySchedule
	}{
		{name: "missing close", day: models.DaySchedule{Day: models.Monday, Open: "09:00"}},
		{name: "missing open", day: models.DaySchedule{Day: models.Monday, Close: "17:00"}},
		{name: "missing both", day: models.DaySchedule{Day: models.Monday}},
		{name: "unparseable open", day: models.DaySchedule{Day: models.Monday, Open: "morning", Close: "17:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := NewWeek([]models.DaySchedule{tt.day})
			st := Evaluate(week, at(models.Monday, 10, 0))
			assert.False(t, st.IsOpen)
			assert.Equal(t, LabelCallForHours, st.Label)
		})
	}
}

func TestEvaluateEmptyWeek(t *testing.T) {
	st := Evaluate(NewWeek(nil), at(models.Wednesday, 12, 0))
	assert.False(t, st.IsOpen)
	assert.Equal(t, LabelHoursNotSet, st.Label)
}
