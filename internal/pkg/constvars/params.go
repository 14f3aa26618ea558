package constvars

const (
	URLParamUserID         = "user_id"
	URLParamPatientID      = "patient_id"
	URLParamPsychologistID = "psychologist_id"
	URLParamAppointmentID  = "appointment_id"
	URLParamServiceID      = "service_id"
	URLParamNoteID         = "note_id"
	URLParamInvoiceID      = "invoice_id"
)

const (
	URLQueryParamPage           = "page"
	URLQueryParamPageSize       = "page_size"
	URLQueryParamSearch         = "search"
	URLQueryParamStatus         = "status"
	URLQueryParamFromDate       = "from"
	URLQueryParamToDate         = "to"
	URLQueryParamPsychologistID = "psychologist_id"
	URLQueryParamPatientID      = "patient_id"
	URLQueryParamServiceID      = "service_id"
	URLQueryParamSessionType    = "session_type"
	URLQueryParamRole           = "role"
	URLQueryParamService        = "service"
	URLQueryParamTimeSlotID     = "time_slot_id"
	URLQueryParamLimit          = "limit"
)
