package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesSevenDayBuckets(t *testing.T) {
	now := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	days := Generate(now)

	require.Len(t, days, 7)
	for i, day := range days {
		assert.Equal(t, now.AddDate(0, 0, i).Day(), day.Date.Day(), "day %d", i)
		require.NotEmpty(t, day.Slots, "day %d", i)

		for j := 1; j < len(day.Slots); j++ {
			assert.Equal(t, Interval, day.Slots[j].DateTime.Sub(day.Slots[j-1].DateTime))
		}
		last := day.Slots[len(day.Slots)-1].DateTime
		assert.True(t, last.Hour() < 21, "slot %v at or past closing", last)
	}
}

func TestGenerateDayZeroStart(t *testing.T) {
	// Morning: first slot of today is at the 10:00 opening.
	morning := time.Date(2024, time.January, 1, 8, 15, 0, 0, time.UTC)
	days := Generate(morning)
	require.NotEmpty(t, days[0].Slots)
	assert.Equal(t, "10:00 AM", days[0].Slots[0].Label)

	// Mid-afternoon on the half hour boundary: next hour, minute snapped to 0.
	afternoon := time.Date(2024, time.January, 1, 14, 20, 0, 0, time.UTC)
	days = Generate(afternoon)
	assert.Equal(t, "03:00 PM", days[0].Slots[0].Label)

	// Past the half hour: minute snaps to 30.
	lateAfternoon := time.Date(2024, time.January, 1, 14, 40, 0, 0, time.UTC)
	days = Generate(lateAfternoon)
	assert.Equal(t, "03:30 PM", days[0].Slots[0].Label)
}

func TestGenerateLateEveningLeavesDayZeroEmpty(t *testing.T) {
	late := time.Date(2024, time.January, 1, 20, 45, 0, 0, time.UTC)
	days := Generate(late)

	require.Len(t, days, 7)
	assert.Empty(t, days[0].Slots)
	for i := 1; i < 7; i++ {
		require.NotEmpty(t, days[i].Slots, "day %d", i)
		assert.Equal(t, "10:00 AM", days[i].Slots[0].Label)
	}
}

func TestGenerateLastSlotBeforeClosing(t *testing.T) {
	now := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	days := Generate(now)

	for _, day := range days[1:] {
		last := day.Slots[len(day.Slots)-1]
		assert.Equal(t, "08:30 PM", last.Label)
	}
}

func TestFind(t *testing.T) {
	now := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	days := Generate(now)

	slot, err := Find(days[2], "11:30 AM")
	require.NoError(t, err)
	assert.Equal(t, 11, slot.DateTime.Hour())
	assert.Equal(t, 30, slot.DateTime.Minute())

	_, err = Find(days[2], "09:00 AM")
	assert.ErrorIs(t, err, ErrNoSuchSlot)
}
