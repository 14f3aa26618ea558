package constvars

const (
	EmailBasicSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailHTMLSubjectFormat  = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n"
)

const (
	EmailTypeAppointmentReminder     = "appointment_reminder"
	EmailTypeAppointmentConfirmation = "appointment_confirmation"
	EmailTypeAppointmentCancellation = "appointment_cancellation"
	EmailTypeInvoiceIssued           = "invoice_issued"
)
