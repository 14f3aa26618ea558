package requests

type UpdatePatient struct {
	FirstName      string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName       string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	MedicareNumber string `json:"medicare_number,omitempty" validate:"omitempty,medicare_number"`
	PsychologistID int64  `json:"psychologist_id,omitempty" validate:"omitempty,gte=1"`
}
