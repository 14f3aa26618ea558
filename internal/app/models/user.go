package models

type User struct {
	ID             string `bson:"_id,omitempty"`
	Email          string `bson:"email"`
	Username       string `bson:"username"`
	Password       string `bson:"password"`
	Role           string `bson:"role"`
	Active         bool   `bson:"active"`
	PatientID      string `bson:"patientId,omitempty"`
	PsychologistID int64  `bson:"psychologistId,omitempty"`
	TimeModel      `bson:",inline"`
}

func (u *User) IsPatient() bool {
	return u.Role == "patient"
}

func (u *User) IsPsychologist() bool {
	return u.Role == "psychologist"
}

func (u *User) IsPracticeManager() bool {
	return u.Role == "practice_manager"
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
