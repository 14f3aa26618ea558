package availability

import (
	"testing"
	"time"

	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDaySlots(t *testing.T) {
	location := time.UTC
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, location) // a Monday
	workDay := models.WorkDay{
		Weekday:   int(time.Monday),
		StartTime: "09:00",
		EndTime:   "12:00",
	}
	slotDuration := time.Hour
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, location)

	t.Run("fills the working hours with fixed-length slots", func(t *testing.T) {
		slots := buildDaySlots(day, workDay, slotDuration, now, nil, location)

		require.Len(t, slots, 3)
		assert.Equal(t, "09:00", slots[0].StartTime)
		assert.Equal(t, "10:00", slots[0].EndTime)
		assert.Equal(t, "11:00", slots[2].StartTime)
		for _, slot := range slots {
			assert.True(t, slot.Available)
		}
	})

	t.Run("slot ids round-trip to the slot start instant", func(t *testing.T) {
		slots := buildDaySlots(day, workDay, slotDuration, now, nil, location)

		require.NotEmpty(t, slots)
		decoded := utils.DecodeTimeSlotID(slots[0].ID)
		assert.Equal(t, time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC), decoded)
	})

	t.Run("marks slots overlapping booked appointments as unavailable", func(t *testing.T) {
		booked := []models.Appointment{
			{
				AppointmentDate: time.Date(2026, 9, 7, 10, 0, 0, 0, location),
				DurationMinutes: 60,
				Status:          constvars.AppointmentStatusUpcoming,
			},
		}

		slots := buildDaySlots(day, workDay, slotDuration, now, booked, location)

		require.Len(t, slots, 3)
		assert.True(t, slots[0].Available)
		assert.False(t, slots[1].Available)
		assert.True(t, slots[2].Available)
	})

	t.Run("cancelled appointments release their slot", func(t *testing.T) {
		booked := []models.Appointment{
			{
				AppointmentDate: time.Date(2026, 9, 7, 10, 0, 0, 0, location),
				DurationMinutes: 60,
				Status:          constvars.AppointmentStatusCancelled,
			},
		}

		slots := buildDaySlots(day, workDay, slotDuration, now, booked, location)

		require.Len(t, slots, 3)
		assert.True(t, slots[1].Available)
	})

	t.Run("skips slots already in the past", func(t *testing.T) {
		lateNow := time.Date(2026, 9, 7, 10, 30, 0, 0, location)

		slots := buildDaySlots(day, workDay, slotDuration, lateNow, nil, location)

		require.Len(t, slots, 1)
		assert.Equal(t, "11:00", slots[0].StartTime)
	})

	t.Run("returns nothing for malformed working hours", func(t *testing.T) {
		badDay := models.WorkDay{Weekday: int(time.Monday), StartTime: "9am", EndTime: "12:00"}

		slots := buildDaySlots(day, badDay, slotDuration, now, nil, location)

		assert.Empty(t, slots)
	})

	t.Run("returns nothing when the end precedes the start", func(t *testing.T) {
		invertedDay := models.WorkDay{Weekday: int(time.Monday), StartTime: "12:00", EndTime: "09:00"}

		slots := buildDaySlots(day, invertedDay, slotDuration, now, nil, location)

		assert.Empty(t, slots)
	})
}

func TestOverlapsBooked(t *testing.T) {
	location := time.UTC
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, location)
	end := start.Add(time.Hour)

	t.Run("detects a partial overlap", func(t *testing.T) {
		booked := []models.Appointment{
			{
				AppointmentDate: time.Date(2026, 9, 7, 10, 30, 0, 0, location),
				DurationMinutes: 60,
				Status:          constvars.AppointmentStatusUpcoming,
			},
		}

		assert.True(t, overlapsBooked(start, end, booked))
	})

	t.Run("back-to-back appointments do not overlap", func(t *testing.T) {
		booked := []models.Appointment{
			{
				AppointmentDate: end,
				DurationMinutes: 60,
				Status:          constvars.AppointmentStatusUpcoming,
			},
		}

		assert.False(t, overlapsBooked(start, end, booked))
	})
}
