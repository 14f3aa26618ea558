package models

type Patient struct {
	ID             string `bson:"_id,omitempty"`
	UserID         string `bson:"userId,omitempty"`
	FirstName      string `bson:"firstName"`
	LastName       string `bson:"lastName"`
	DateOfBirth    string `bson:"dateOfBirth,omitempty"`
	PhoneNumber    string `bson:"phoneNumber,omitempty"`
	Email          string `bson:"email,omitempty"`
	MedicareNumber string `bson:"medicareNumber,omitempty"`
	PsychologistID int64  `bson:"psychologistId,omitempty"`
	TimeModel      `bson:",inline"`
}

func (p *Patient) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
