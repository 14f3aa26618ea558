package sessionclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestFormatTimeCompact(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		assert.Equal(t, "00:00", FormatTimeCompact(0))
	})

	t.Run("Under An Hour", func(t *testing.T) {
		assert.Equal(t, "09:05", FormatTimeCompact(545))
		assert.Equal(t, "59:59", FormatTimeCompact(3599))
	})

	t.Run("Over An Hour", func(t *testing.T) {
		assert.Equal(t, "01:01:01", FormatTimeCompact(3661))
		assert.Equal(t, "02:00:00", FormatTimeCompact(7200))
	})

	t.Run("Negative Degrades To Zero", func(t *testing.T) {
		assert.Equal(t, "00:00", FormatTimeCompact(-42))
	})
}

func TestProgress(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(50 * time.Minute)

	t.Run("At Start", func(t *testing.T) {
		assert.Equal(t, 0.0, Progress(start, end, start))
	})

	t.Run("At End", func(t *testing.T) {
		assert.Equal(t, 100.0, Progress(start, end, end))
	})

	t.Run("Midway", func(t *testing.T) {
		assert.InDelta(t, 50.0, Progress(start, end, start.Add(25*time.Minute)), 0.001)
	})

	t.Run("Before Start Clamps To Zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Progress(start, end, start.Add(-time.Minute)))
	})

	t.Run("After End Clamps To Hundred", func(t *testing.T) {
		assert.Equal(t, 100.0, Progress(start, end, end.Add(time.Hour)))
	})

	t.Run("Invalid Bounds Yield Zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Progress(end, start, start))
		assert.Equal(t, 0.0, Progress(start, start, start))
	})
}

func TestCompute_NullRenderRule(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("All Time Fields Absent Renders Nothing", func(t *testing.T) {
		state := Compute(Input{SessionStatus: StatusUpcoming, CanJoinSession: true}, now)
		assert.Nil(t, state)
	})

	t.Run("Any Time Field Present Renders", func(t *testing.T) {
		assert.NotNil(t, Compute(Input{SessionStartTime: timePtr(now.Add(time.Hour))}, now))
		assert.NotNil(t, Compute(Input{TimeUntilStartSeconds: int64Ptr(600)}, now))
		assert.NotNil(t, Compute(Input{TimeRemainingSeconds: int64Ptr(300)}, now))
	})
}

func TestCompute_TimeUntilStart(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("Prefers Start Timestamp Over Precomputed Field", func(t *testing.T) {
		in := Input{
			SessionStartTime:      timePtr(now.Add(90 * time.Second)),
			TimeUntilStartSeconds: int64Ptr(9999),
			SessionStatus:         StatusUpcoming,
		}
		state := Compute(in, now)
		assert.Equal(t, int64(90), state.TimeUntilStart)
	})

	t.Run("Falls Back To Precomputed Field", func(t *testing.T) {
		state := Compute(Input{TimeUntilStartSeconds: int64Ptr(120), SessionStatus: StatusUpcoming}, now)
		assert.Equal(t, int64(120), state.TimeUntilStart)
	})

	t.Run("Clamps Negative Precomputed Value", func(t *testing.T) {
		state := Compute(Input{TimeUntilStartSeconds: int64Ptr(-5), SessionStatus: StatusUpcoming}, now)
		assert.Equal(t, int64(0), state.TimeUntilStart)
	})

	t.Run("Past Start Time Clamps To Zero", func(t *testing.T) {
		state := Compute(Input{SessionStartTime: timePtr(now.Add(-time.Minute))}, now)
		assert.Equal(t, int64(0), state.TimeUntilStart)
	})
}

func TestCompute_TimeRemaining(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("Prefers Precomputed Field", func(t *testing.T) {
		in := Input{
			TimeRemainingSeconds: int64Ptr(240),
			SessionEndTime:       timePtr(now.Add(time.Hour)),
			SessionStatus:        StatusInProgress,
		}
		state := Compute(in, now)
		if assert.NotNil(t, state.TimeRemaining) {
			assert.Equal(t, int64(240), *state.TimeRemaining)
		}
	})

	t.Run("Computed From End Time When In Progress", func(t *testing.T) {
		in := Input{
			SessionStartTime: timePtr(now.Add(-10 * time.Minute)),
			SessionEndTime:   timePtr(now.Add(20 * time.Minute)),
			SessionStatus:    StatusInProgress,
		}
		state := Compute(in, now)
		if assert.NotNil(t, state.TimeRemaining) {
			assert.Equal(t, int64(1200), *state.TimeRemaining)
		}
	})

	t.Run("Absent When Not In Progress", func(t *testing.T) {
		in := Input{
			SessionStartTime: timePtr(now.Add(time.Hour)),
			SessionEndTime:   timePtr(now.Add(2 * time.Hour)),
			SessionStatus:    StatusUpcoming,
		}
		state := Compute(in, now)
		assert.Nil(t, state.TimeRemaining)
	})
}

func TestCompute_StatusBranches(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("Upcoming", func(t *testing.T) {
		state := Compute(Input{SessionStartTime: timePtr(now.Add(time.Hour)), SessionStatus: StatusUpcoming}, now)
		assert.Equal(t, "Starts in", state.Label)
		assert.Equal(t, "01:00:00", state.Value)
		assert.False(t, state.ShowProgress)
	})

	t.Run("Starting Soon", func(t *testing.T) {
		state := Compute(Input{SessionStartTime: timePtr(now.Add(5 * time.Minute)), SessionStatus: StatusStartingSoon, CanJoinSession: true}, now)
		assert.Equal(t, "Starting soon", state.Label)
		assert.Equal(t, "05:00", state.Value)
		assert.True(t, state.CanJoin)
	})

	t.Run("In Progress With Progress Bar", func(t *testing.T) {
		in := Input{
			SessionStartTime: timePtr(now.Add(-25 * time.Minute)),
			SessionEndTime:   timePtr(now.Add(25 * time.Minute)),
			SessionStatus:    StatusInProgress,
		}
		state := Compute(in, now)
		assert.Equal(t, "In progress", state.Label)
		assert.True(t, state.ShowProgress)
		assert.InDelta(t, 50.0, state.Progress, 0.001)
	})

	t.Run("In Progress Without End Time Shows No Progress", func(t *testing.T) {
		state := Compute(Input{SessionStartTime: timePtr(now.Add(-time.Minute)), SessionStatus: StatusInProgress}, now)
		assert.False(t, state.ShowProgress)
		assert.Equal(t, 0.0, state.Progress)
	})

	t.Run("Ended", func(t *testing.T) {
		state := Compute(Input{SessionStartTime: timePtr(now.Add(-2 * time.Hour)), SessionStatus: StatusEnded}, now)
		assert.Equal(t, "Session ended", state.Label)
		assert.Equal(t, "00:00", state.Value)
	})

	t.Run("Unknown Status Falls Through To Default", func(t *testing.T) {
		state := Compute(Input{SessionStartTime: timePtr(now), SessionStatus: "mystery"}, now)
		assert.Equal(t, StatusUnknown, state.Status)
		assert.Equal(t, "--:--", state.Value)
	})
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	start := now.Add(30 * time.Minute)
	end := start.Add(50 * time.Minute)

	t.Run("Upcoming Beyond Window", func(t *testing.T) {
		assert.Equal(t, StatusUpcoming, DeriveStatus(&start, &end, now))
	})

	t.Run("Starting Soon Within Window", func(t *testing.T) {
		assert.Equal(t, StatusStartingSoon, DeriveStatus(&start, &end, start.Add(-10*time.Minute)))
	})

	t.Run("In Progress", func(t *testing.T) {
		assert.Equal(t, StatusInProgress, DeriveStatus(&start, &end, start.Add(time.Minute)))
	})

	t.Run("Ended", func(t *testing.T) {
		assert.Equal(t, StatusEnded, DeriveStatus(&start, &end, end))
	})

	t.Run("Missing Bounds", func(t *testing.T) {
		assert.Equal(t, StatusUnknown, DeriveStatus(nil, &end, now))
		assert.Equal(t, StatusUnknown, DeriveStatus(&start, nil, start.Add(time.Minute)))
	})
}

func TestCanJoin(t *testing.T) {
	assert.True(t, CanJoin("telehealth", StatusStartingSoon))
	assert.True(t, CanJoin("telehealth", StatusInProgress))
	assert.False(t, CanJoin("telehealth", StatusUpcoming))
	assert.False(t, CanJoin("in_person", StatusInProgress))
}
