package models

type ProgressNote struct {
	ID             string `bson:"_id,omitempty"`
	AppointmentID  string `bson:"appointmentId,omitempty"`
	PatientID      string `bson:"patientId"`
	PsychologistID int64  `bson:"psychologistId"`
	Subjective     string `bson:"subjective"`
	Objective      string `bson:"objective"`
	Assessment     string `bson:"assessment"`
	Plan           string `bson:"plan"`
	ProgressRating int    `bson:"progressRating"`
	SessionDate    string `bson:"sessionDate,omitempty"`
	Finalized      bool   `bson:"finalized"`
	TimeModel      `bson:",inline"`
}
