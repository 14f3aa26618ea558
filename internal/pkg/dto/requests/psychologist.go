package requests

type WorkDay struct {
	Weekday   int    `json:"weekday" validate:"gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type UpdateSchedule struct {
	WorkDays             []WorkDay `json:"work_days" validate:"required,dive"`
	SlotDurationMinutes  int       `json:"slot_duration_minutes" validate:"required,gte=15,lte=120"`
	AcceptingNewPatients *bool     `json:"accepting_new_patients,omitempty"`
	AcceptanceMessage    string    `json:"acceptance_message,omitempty" validate:"omitempty,max=300"`
}
