package responses

type PracticeSummary struct {
	PeriodStart           string  `json:"period_start"`
	PeriodEnd             string  `json:"period_end"`
	TotalAppointments     int64   `json:"total_appointments"`
	CompletedAppointments int64   `json:"completed_appointments"`
	CancelledAppointments int64   `json:"cancelled_appointments"`
	NoShowAppointments    int64   `json:"no_show_appointments"`
	NewPatients           int64   `json:"new_patients"`
	TotalInvoiced         float64 `json:"total_invoiced"`
	TotalCollected        float64 `json:"total_collected"`
	TotalOutstanding      float64 `json:"total_outstanding"`
}
