package responses

import "time"

type ProgressNote struct {
	ID             string    `json:"id"`
	AppointmentID  string    `json:"appointment_id"`
	PatientID      string    `json:"patient_id"`
	PsychologistID int64     `json:"psychologist_id"`
	Subjective     string    `json:"subjective"`
	Objective      string    `json:"objective"`
	Assessment     string    `json:"assessment"`
	Plan           string    `json:"plan"`
	ProgressRating int       `json:"progress_rating"`
	Finalized      bool      `json:"finalized"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
