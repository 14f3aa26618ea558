package models

import "time"

type Invoice struct {
	ID             string  `bson:"_id,omitempty"`
	InvoiceNumber  string  `bson:"invoiceNumber"`
	AppointmentID  string  `bson:"appointmentId"`
	PatientID      string  `bson:"patientId"`
	PsychologistID int64   `bson:"psychologistId"`
	ServiceID      int64   `bson:"serviceId"`
	ServiceName    string  `bson:"serviceName"`
	Amount         float64 `bson:"amount"`
	MedicareRebate float64 `bson:"medicareRebate"`
	GapAmount      float64 `bson:"gapAmount"`
	AmountPaid     float64 `bson:"amountPaid"`
	Status         string  `bson:"status"`
	DocumentObject string  `bson:"documentObject,omitempty"`
	TimeModel      `bson:",inline"`
}

// Outstanding is the unpaid remainder of the invoice amount.
func (i *Invoice) Outstanding() float64 {
	remaining := i.Amount - i.AmountPaid
	if remaining < 0 {
		return 0
	}
	return remaining
}

type Payment struct {
	ID        string    `bson:"_id,omitempty"`
	InvoiceID string    `bson:"invoiceId"`
	PatientID string    `bson:"patientId"`
	Amount    float64   `bson:"amount"`
	Method    string    `bson:"method"`
	PaidAt    time.Time `bson:"paidAt"`
	Reference string    `bson:"reference,omitempty"`
	TimeModel `bson:",inline"`
}

type MedicareClaim struct {
	ID             string    `bson:"_id,omitempty"`
	InvoiceID      string    `bson:"invoiceId"`
	AppointmentID  string    `bson:"appointmentId"`
	PatientID      string    `bson:"patientId"`
	MedicareNumber string    `bson:"medicareNumber"`
	RebateAmount   float64   `bson:"rebateAmount"`
	ServiceDate    time.Time `bson:"serviceDate"`
	Status         string    `bson:"status"`
	TimeModel      `bson:",inline"`
}
