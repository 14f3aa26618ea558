package responses

import "time"

type Appointment struct {
	ID                 string     `json:"id"`
	PatientID          string     `json:"patient_id"`
	PatientName        string     `json:"patient_name,omitempty"`
	PsychologistID     int64      `json:"psychologist_id"`
	PsychologistName   string     `json:"psychologist_name,omitempty"`
	ServiceID          int64      `json:"service_id"`
	ServiceName        string     `json:"service_name,omitempty"`
	AppointmentDate    time.Time  `json:"appointment_date"`
	DurationMinutes    int        `json:"duration_minutes"`
	SessionType        string     `json:"session_type"`
	Status             string     `json:"status"`
	Notes              string     `json:"notes,omitempty"`
	SessionStartTime   *time.Time `json:"session_start_time,omitempty"`
	SessionEndTime     *time.Time `json:"session_end_time,omitempty"`
	TimeUntilStartSecs *int64     `json:"time_until_start_seconds,omitempty"`
	TimeRemainingSecs  *int64     `json:"time_remaining_seconds,omitempty"`
	SessionStatus      string     `json:"session_status,omitempty"`
	CanJoinSession     bool       `json:"can_join_session"`
}

type CreateAppointment struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

type CalendarDay struct {
	Date         string        `json:"date"`
	Appointments []Appointment `json:"appointments"`
}

type BookingSummary struct {
	PsychologistName string  `json:"psychologist_name"`
	ServiceName      string  `json:"service_name"`
	SessionType      string  `json:"session_type"`
	StartTime        string  `json:"start_time"`
	DurationMinutes  int     `json:"duration_minutes"`
	Fee              float64 `json:"fee"`
	MedicareRebate   float64 `json:"medicare_rebate"`
	GapAmount        float64 `json:"gap_amount"`
}
