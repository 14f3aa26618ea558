package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingSessionDataKey        = "session_data"
	LoggingQueryParamsKey        = "query_params"
	LoggingResponseKey           = "response"
	LoggingResponseLengthKey     = "response_length"
	LoggingResponseCountKey      = "response_count"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingUserIDKey             = "user_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingPsychologistIDKey     = "psychologist_id"
	LoggingServiceIDKey          = "service_id"
	LoggingServiceSlugKey        = "service_slug"
	LoggingTimeSlotIDKey         = "time_slot_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingAppointmentCountKey   = "appointment_count"
	LoggingInvoiceIDKey          = "invoice_id"
	LoggingNoteIDKey             = "note_id"
	LoggingSessionStatusKey      = "session_status"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueKey              = "queue"
	LoggingEventKey              = "event"
)
