package requests

type CreateProgressNote struct {
	AppointmentID  string `json:"appointment_id,omitempty"`
	PatientID      string `json:"patient_id" validate:"required"`
	Subjective     string `json:"subjective" validate:"required,min=50"`
	Objective      string `json:"objective" validate:"required,min=50"`
	Assessment     string `json:"assessment" validate:"required,min=50"`
	Plan           string `json:"plan" validate:"required,min=50"`
	ProgressRating int    `json:"progress_rating" validate:"required,gte=1,lte=10"`
	SessionDate    string `json:"session_date,omitempty"`
}

type UpdateProgressNote struct {
	Subjective     string `json:"subjective,omitempty" validate:"omitempty,min=50"`
	Objective      string `json:"objective,omitempty" validate:"omitempty,min=50"`
	Assessment     string `json:"assessment,omitempty" validate:"omitempty,min=50"`
	Plan           string `json:"plan,omitempty" validate:"omitempty,min=50"`
	ProgressRating int    `json:"progress_rating,omitempty" validate:"omitempty,gte=1,lte=10"`
}
