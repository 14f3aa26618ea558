package models

// WorkDay describes the bookable hours for a single weekday.
// Weekday follows time.Weekday numbering (Sunday = 0).
type WorkDay struct {
	Weekday   int    `bson:"weekday"`
	StartTime string `bson:"startTime"`
	EndTime   string `bson:"endTime"`
}

type Psychologist struct {
	ID                   string    `bson:"_id,omitempty"`
	PsychologistID       int64     `bson:"psychologistId"`
	UserID               string    `bson:"userId,omitempty"`
	FirstName            string    `bson:"firstName"`
	LastName             string    `bson:"lastName"`
	RegistrationNumber   string    `bson:"registrationNumber,omitempty"`
	AcceptingNewPatients bool      `bson:"acceptingNewPatients"`
	AcceptanceMessage    string    `bson:"acceptanceMessage,omitempty"`
	WorkDays             []WorkDay `bson:"workDays,omitempty"`
	SlotDurationMinutes  int       `bson:"slotDurationMinutes,omitempty"`
	TimeModel            `bson:",inline"`
}

func (p *Psychologist) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// WorkDayFor returns the working hours for the given weekday, if any.
func (p *Psychologist) WorkDayFor(weekday int) (WorkDay, bool) {
	for _, day := range p.WorkDays {
		if day.Weekday == weekday {
			return day, true
		}
	}
	return WorkDay{}, false
}
