package models

import "time"

type Appointment struct {
	ID               string     `bson:"_id,omitempty"`
	PatientID        string     `bson:"patientId"`
	PsychologistID   int64      `bson:"psychologistId"`
	ServiceID        int64      `bson:"serviceId"`
	AppointmentDate  time.Time  `bson:"appointmentDate"`
	DurationMinutes  int        `bson:"durationMinutes"`
	SessionType      string     `bson:"sessionType"`
	Status           string     `bson:"status"`
	Notes            string     `bson:"notes,omitempty"`
	CancelReason     string     `bson:"cancelReason,omitempty"`
	SessionStartTime *time.Time `bson:"sessionStartTime,omitempty"`
	SessionEndTime   *time.Time `bson:"sessionEndTime,omitempty"`
	CompletedAt      *time.Time `bson:"completedAt,omitempty"`
	TimeModel        `bson:",inline"`
}

// IsTerminal reports whether the appointment can no longer change state.
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case "completed", "cancelled", "no_show":
		return true
	}
	return false
}

func (a *Appointment) IsTelehealth() bool {
	return a.SessionType == "telehealth"
}
