package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess     = "account created successfully"
	LoginSuccess        = "successfully login"
	LogoutSuccess       = "successfully logout"
	RefreshTokenSuccess = "session refreshed successfully"

	// User-related messages
	UserCreatedSuccess = "user created successfully"
	UserUpdatedSuccess = "user updated successfully"
	UserDeletedSuccess = "user deleted successfully"
	GetUserSuccess     = "get users successfully"

	// Patient messages
	GetPatientSuccess     = "get patients successfully"
	PatientUpdatedSuccess = "patient updated successfully"

	// Psychologist messages
	GetPsychologistSuccess  = "get psychologists successfully"
	ScheduleUpdatedSuccess  = "schedule updated successfully"
	GetScheduleSuccess      = "get schedule successfully"
	GetAvailabilitySuccess  = "get available slots successfully"
	NotAcceptingNewPatients = "this psychologist is not accepting new patients at the moment"

	// Service messages
	GetServiceSuccess     = "get services successfully"
	ServiceCreatedSuccess = "service created successfully"
	ServiceUpdatedSuccess = "service updated successfully"
	ServiceDeletedSuccess = "service deleted successfully"

	// Appointment messages
	GetAppointmentSuccess         = "get appointments successfully"
	AppointmentBookedSuccess      = "appointment booked successfully"
	AppointmentCancelledSuccess   = "appointment cancelled successfully"
	AppointmentRescheduledSuccess = "appointment rescheduled successfully"
	SessionCompletedSuccess       = "session completed successfully"
	GetSessionStateSuccess        = "get session state successfully"
	GetCalendarViewSuccess        = "get calendar view successfully"
	GetBookingSummarySuccess      = "get booking summary successfully"

	// Progress note messages
	GetNoteSuccess       = "get progress notes successfully"
	NoteCreatedSuccess   = "progress note created successfully"
	NoteUpdatedSuccess   = "progress note updated successfully"
	NoteFinalizedSuccess = "progress note finalized successfully"

	// Billing messages
	GetInvoiceSuccess       = "get invoices successfully"
	GetInvoicePdfSuccess    = "invoice document ready for download"
	GetPaymentSuccess       = "get payments successfully"
	PaymentRecordedSuccess  = "payment recorded successfully"
	GetMedicareClaimSuccess = "get medicare claims successfully"
	MedicareCheckSuccess    = "medicare eligibility checked successfully"
	InvoiceDocumentUploaded = "invoice document uploaded successfully"

	// Analytics messages
	GetAnalyticsSummarySuccess = "get analytics summary successfully"
)
