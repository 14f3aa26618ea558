package requests

type RecordPayment struct {
	InvoiceID string  `json:"invoice_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=card cash bank_transfer"`
	Reference string  `json:"reference,omitempty" validate:"omitempty,max=100"`
}

type MedicareCheck struct {
	MedicareNumber string `json:"medicare_number" validate:"required"`
	PatientID      string `json:"patient_id,omitempty"`
}
