package responses

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	Role           string    `json:"role"`
	Active         bool      `json:"active"`
	PatientID      string    `json:"patient_id,omitempty"`
	PsychologistID int64     `json:"psychologist_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type Patient struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	Email          string `json:"email,omitempty"`
	MedicareNumber string `json:"medicare_number,omitempty"`
	PsychologistID int64  `json:"psychologist_id,omitempty"`
}

type Psychologist struct {
	PsychologistID       int64  `json:"psychologist_id"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	RegistrationNumber   string `json:"registration_number,omitempty"`
	AcceptingNewPatients bool   `json:"is_accepting_new_patients"`
	AcceptanceMessage    string `json:"acceptance_message,omitempty"`
}

type Schedule struct {
	PsychologistID       int64     `json:"psychologist_id"`
	WorkDays             []WorkDay `json:"work_days"`
	SlotDurationMinutes  int       `json:"slot_duration_minutes"`
	AcceptingNewPatients bool      `json:"is_accepting_new_patients"`
}

type WorkDay struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
