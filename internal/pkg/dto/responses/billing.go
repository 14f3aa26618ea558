package responses

import "time"

type Invoice struct {
	ID             string    `json:"id"`
	InvoiceNumber  string    `json:"invoice_number"`
	AppointmentID  string    `json:"appointment_id"`
	PatientID      string    `json:"patient_id"`
	PatientName    string    `json:"patient_name,omitempty"`
	ServiceName    string    `json:"service_name,omitempty"`
	Amount         float64   `json:"amount"`
	MedicareRebate float64   `json:"medicare_rebate"`
	AmountPaid     float64   `json:"amount_paid"`
	Outstanding    float64   `json:"outstanding"`
	Status         string    `json:"status"`
	IssuedAt       time.Time `json:"issued_at"`
	DocumentURL    string    `json:"document_url,omitempty"`
	Payments       []Payment `json:"payments,omitempty"`
}

type Payment struct {
	ID         string    `json:"id"`
	InvoiceID  string    `json:"invoice_id"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Reference  string    `json:"reference,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

type MedicareClaim struct {
	ID             string    `json:"id"`
	InvoiceID      string    `json:"invoice_id"`
	PatientID      string    `json:"patient_id"`
	MedicareNumber string    `json:"medicare_number"`
	RebateAmount   float64   `json:"rebate_amount"`
	Status         string    `json:"status"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type MedicareCheck struct {
	MedicareNumber    string `json:"medicare_number"`
	Valid             bool   `json:"valid"`
	SessionsUsed      int    `json:"sessions_used"`
	SessionsRemaining int    `json:"sessions_remaining"`
	Message           string `json:"message,omitempty"`
}
