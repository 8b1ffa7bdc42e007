// Package slots produces the candidate booking slots shown for a doctor: a
// rolling 7-day window of 30-minute steps between 10:00 and 21:00 local time.
package slots

import (
	"errors"
	"time"
)

// Interval between consecutive slots.
const Interval = 30 * time.Minute

// closingHour is the end-of-day boundary; no slot starts at or after it.
const closingHour = 21

// Slot is an ephemeral candidate time: the absolute instant plus the display
// label the UI shows and the booking flow stores verbatim.
type Slot struct {
	DateTime time.Time
	Label    string
}

// Day is one day-bucket of the 7-day window. Slots may be empty for day 0
// when "now" is already past the last bookable start.
type Day struct {
	Date  time.Time
	Slots []Slot
}

// ErrNoSuchSlot is returned when a selected label does not resolve to a
// generated slot.
var ErrNoSuchSlot = errors.New("slots: no slot with that label")

// Generate recomputes the full window for the given wall clock. It is a pure
// function of now; callers rerun it whenever the selected doctor changes.
//
// Day 0 starts at max(now.Hour()+1, 10) with the minute snapped to 30 when
// now's minute is past the half hour, later days start at 10:00 sharp.
func Generate(now time.Time) []Day {
	days := make([]Day, 0, 7)

	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, i)
		end := time.Date(date.Year(), date.Month(), date.Day(), closingHour, 0, 0, 0, date.Location())

		var cursor time.Time
		if i == 0 {
			hour := now.Hour() + 1
			if hour < 10 {
				hour = 10
			}
			minute := 0
			if now.Minute() > 30 {
				minute = 30
			}
			cursor = time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
		} else {
			cursor = time.Date(date.Year(), date.Month(), date.Day(), 10, 0, 0, 0, date.Location())
		}

		var list []Slot
		for cursor.Before(end) {
			list = append(list, Slot{
				DateTime: cursor,
				Label:    cursor.Format("03:04 PM"),
			})
			cursor = cursor.Add(Interval)
		}

		days = append(days, Day{
			Date:  time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
			Slots: list,
		})
	}
	return days
}

// Find resolves the slot carrying the selected label within one day-bucket.
func Find(day Day, label string) (Slot, error) {
	for _, s := range day.Slots {
		if s.Label == label {
			return s, nil
		}
	}
	return Slot{}, ErrNoSuchSlot
}
