package requests

type CreateAppointment struct {
	PsychologistID int64  `json:"psychologist_id" validate:"required,gte=1"`
	ServiceID      int64  `json:"service_id" validate:"required,gte=1"`
	TimeSlotID     int64  `json:"time_slot_id" validate:"required,gte=1"`
	SessionType    string `json:"session_type" validate:"required,session_type"`
	Notes          string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type RescheduleAppointment struct {
	TimeSlotID int64  `json:"time_slot_id" validate:"required,gte=1"`
	Reason     string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type CancelAppointment struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type BookingSummaryQuery struct {
	PsychologistID int64  `json:"psychologist_id" validate:"required,gte=1"`
	ServiceID      int64  `json:"service_id" validate:"required,gte=1"`
	TimeSlotID     int64  `json:"time_slot_id" validate:"required,gte=1"`
	SessionType    string `json:"session_type,omitempty" validate:"omitempty,session_type"`
}

type AvailableSlotsQuery struct {
	PsychologistID int64  `json:"psychologist_id"`
	ServiceID      int64  `json:"service_id,omitempty"`
	ServiceSlug    string `json:"service_slug,omitempty"`
	SessionType    string `json:"session_type,omitempty"`
}
