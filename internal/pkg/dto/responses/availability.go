package responses

type TimeSlot struct {
	ID        int64  `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type AvailableDate struct {
	Date    string     `json:"date"`
	DayName string     `json:"day_name"`
	Slots   []TimeSlot `json:"slots"`
}

type AvailableSlots struct {
	PsychologistID         int64           `json:"psychologist_id"`
	ServiceID              int64           `json:"service_id,omitempty"`
	SessionType            string          `json:"session_type"`
	IsAcceptingNewPatients bool            `json:"is_accepting_new_patients"`
	Message                string          `json:"message,omitempty"`
	Dates                  []AvailableDate `json:"dates"`
}
