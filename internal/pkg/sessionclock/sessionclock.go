// Package sessionclock derives the display state of a therapy session from
// an appointment's time fields and a sampled wall clock. All derivations are
// pure and total: malformed or missing inputs degrade to zero values, never
// errors.
package sessionclock

import (
	"fmt"
	"time"
)

const (
	StatusUpcoming     = "upcoming"
	StatusStartingSoon = "starting_soon"
	StatusInProgress   = "in_progress"
	StatusEnded        = "ended"
	StatusUnknown      = "unknown"
)

// StartingSoonWindow is how far before the start an appointment is
// considered about to begin.
const StartingSoonWindow = 15 * time.Minute

// Input carries the appointment time fields the state machine reads.
// Countdown fields may be precomputed upstream; when both a timestamp and a
// precomputed countdown are present the timestamp wins.
type Input struct {
	SessionStartTime      *time.Time
	SessionEndTime        *time.Time
	TimeUntilStartSeconds *int64
	TimeRemainingSeconds  *int64
	SessionStatus         string
	CanJoinSession        bool
}

// State is the derived, render-ready session state.
type State struct {
	Status         string  `json:"status"`
	Label          string  `json:"label"`
	Value          string  `json:"value"`
	Subtitle       string  `json:"subtitle,omitempty"`
	TimeUntilStart int64   `json:"time_until_start_seconds"`
	TimeRemaining  *int64  `json:"time_remaining_seconds,omitempty"`
	Progress       float64 `json:"progress,omitempty"`
	ShowProgress   bool    `json:"show_progress"`
	CanJoin        bool    `json:"can_join_session"`
}

// Compute derives the session state at the given instant. It returns nil when
// none of the session start time, time-until-start, or time-remaining fields
// are present; callers must render nothing in that case.
func Compute(in Input, now time.Time) *State {
	if in.SessionStartTime == nil && in.TimeUntilStartSeconds == nil && in.TimeRemainingSeconds == nil {
		return nil
	}

	state := &State{
		Status:         normalizeStatus(in.SessionStatus),
		TimeUntilStart: timeUntilStart(in, now),
		TimeRemaining:  timeRemaining(in, now),
		CanJoin:        in.CanJoinSession,
	}

	if state.Status == StatusInProgress && in.SessionStartTime != nil && in.SessionEndTime != nil {
		state.Progress = Progress(*in.SessionStartTime, *in.SessionEndTime, now)
		state.ShowProgress = true
	}

	switch state.Status {
	case StatusUpcoming:
		state.Label = "Starts in"
		state.Value = FormatTimeCompact(state.TimeUntilStart)
		state.Subtitle = "Your session has not started yet"
	case StatusStartingSoon:
		state.Label = "Starting soon"
		state.Value = FormatTimeCompact(state.TimeUntilStart)
		state.Subtitle = "Get ready to join"
	case StatusInProgress:
		state.Label = "In progress"
		if state.TimeRemaining != nil {
			state.Value = FormatTimeCompact(*state.TimeRemaining)
			state.Subtitle = "remaining"
		} else {
			state.Value = "Session running"
		}
	case StatusEnded:
		state.Label = "Session ended"
		state.Value = "00:00"
	default:
		state.Label = "Session"
		state.Value = "--:--"
	}

	return state
}

// DeriveStatus computes the discrete session status from the session bounds.
// Terminal appointment statuses map to ended; absent bounds map to unknown.
func DeriveStatus(start, end *time.Time, now time.Time) string {
	if start == nil {
		return StatusUnknown
	}
	if now.Before(*start) {
		if start.Sub(now) <= StartingSoonWindow {
			return StatusStartingSoon
		}
		return StatusUpcoming
	}
	if end != nil && !now.Before(*end) {
		return StatusEnded
	}
	if end == nil {
		return StatusUnknown
	}
	return StatusInProgress
}

// CanJoin reports whether a join action should be offered.
func CanJoin(sessionType, sessionStatus string) bool {
	if sessionType != "telehealth" {
		return false
	}
	return sessionStatus == StatusStartingSoon || sessionStatus == StatusInProgress
}

// Progress returns the elapsed percentage of an in-progress session, clamped
// to [0, 100]. Invalid bounds yield 0.
func Progress(start, end, now time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 0
	}
	elapsed := now.Sub(start)
	progress := 100 * float64(elapsed) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// FormatTimeCompact renders a second count as MM:SS, or HH:MM:SS once the
// duration reaches an hour. Negative inputs render as 00:00.
func FormatTimeCompact(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

func timeUntilStart(in Input, now time.Time) int64 {
	if in.SessionStartTime != nil {
		until := int64(in.SessionStartTime.Sub(now) / time.Second)
		if until < 0 {
			return 0
		}
		return until
	}
	if in.TimeUntilStartSeconds != nil {
		if *in.TimeUntilStartSeconds < 0 {
			return 0
		}
		return *in.TimeUntilStartSeconds
	}
	return 0
}

func timeRemaining(in Input, now time.Time) *int64 {
	if in.TimeRemainingSeconds != nil {
		remaining := *in.TimeRemainingSeconds
		if remaining < 0 {
			remaining = 0
		}
		return &remaining
	}
	if normalizeStatus(in.SessionStatus) == StatusInProgress && in.SessionEndTime != nil {
		remaining := int64(in.SessionEndTime.Sub(now) / time.Second)
		if remaining < 0 {
			remaining = 0
		}
		return &remaining
	}
	return nil
}

func normalizeStatus(status string) string {
	switch status {
	case StatusUpcoming, StatusStartingSoon, StatusInProgress, StatusEnded:
		return status
	}
	return StatusUnknown
}
