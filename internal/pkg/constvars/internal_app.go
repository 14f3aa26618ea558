package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "sessionData"
	CONTEXT_SESSION_ID_KEY           ContextKey = "sessionID"
)

const (
	RoleTypePatient         = "patient"
	RoleTypePsychologist    = "psychologist"
	RoleTypePracticeManager = "practice_manager"
	RoleTypeAdmin           = "admin"
)

const (
	SessionTypeTelehealth = "telehealth"
	SessionTypeInPerson   = "in_person"
)

const (
	AppointmentStatusUpcoming  = "upcoming"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusPast      = "past"
	AppointmentStatusNoShow    = "no_show"
)

const (
	SessionStatusUpcoming     = "upcoming"
	SessionStatusStartingSoon = "starting_soon"
	SessionStatusInProgress   = "in_progress"
	SessionStatusEnded        = "ended"
	SessionStatusUnknown      = "unknown"
)

const (
	InvoiceStatusUnpaid        = "unpaid"
	InvoiceStatusPartiallyPaid = "partially_paid"
	InvoiceStatusPaid          = "paid"

	MedicareClaimStatusPending   = "pending"
	MedicareClaimStatusSubmitted = "submitted"
	MedicareClaimStatusRejected  = "rejected"
)

const (
	// StartingSoonWindowMinutes is how far before the session start an
	// appointment flips from upcoming to starting_soon.
	StartingSoonWindowMinutes = 15

	// AvailabilityWindowDays is the rolling slot search window starting today.
	AvailabilityWindowDays = 30

	// MedicareRebatedSessionsPerYear caps rebatable sessions per calendar year.
	MedicareRebatedSessionsPerYear = 10

	// ServiceSlugStrippableSuffix is removed during the last slug match pass.
	ServiceSlugStrippableSuffix = "-session"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
