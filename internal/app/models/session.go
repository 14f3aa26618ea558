package models

import "time"

type Session struct {
	SessionID      string    `json:"session_id"`
	UserID         string    `json:"user_id"`
	Role           string    `json:"role"`
	Email          string    `json:"email"`
	PatientID      string    `json:"patient_id,omitempty"`
	PsychologistID int64     `json:"psychologist_id,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func (s *Session) IsPatient() bool {
	return s.Role == "patient"
}

func (s *Session) IsPsychologist() bool {
	return s.Role == "psychologist"
}

func (s *Session) IsPracticeManager() bool {
	return s.Role == "practice_manager"
}

func (s *Session) IsAdmin() bool {
	return s.Role == "admin"
}

// IsStaff reports whether the session may see practice-wide resources.
func (s *Session) IsStaff() bool {
	return s.IsPracticeManager() || s.IsAdmin()
}
