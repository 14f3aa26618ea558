package requests

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type QueryParams struct {
	Pagination
	Status         string `json:"status,omitempty"`
	Search         string `json:"search,omitempty"`
	FromDate       string `json:"from,omitempty"`
	ToDate         string `json:"to,omitempty"`
	SessionType    string `json:"session_type,omitempty"`
	PatientID      string `json:"patient_id,omitempty"`
	PsychologistID int64  `json:"psychologist_id,omitempty"`
	ServiceID      int64  `json:"service_id,omitempty"`
}
