package models

type Service struct {
	ID              string  `bson:"_id,omitempty"`
	ServiceID       int64   `bson:"serviceId"`
	Name            string  `bson:"name"`
	Description     string  `bson:"description,omitempty"`
	DurationMinutes int     `bson:"durationMinutes"`
	Fee             float64 `bson:"fee"`
	MedicareRebate  float64 `bson:"medicareRebate"`
	Active          bool    `bson:"active"`
	TimeModel       `bson:",inline"`
}

// Gap is the out-of-pocket amount after the Medicare rebate.
func (s *Service) Gap() float64 {
	gap := s.Fee - s.MedicareRebate
	if gap < 0 {
		return 0
	}
	return gap
}
