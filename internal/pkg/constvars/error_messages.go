package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email",
	"alphanum":        "must contain only alphanumeric characters",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"eqfield":         "must match %s",
	"password":        "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":         "must be a number",
	"len":             "must be %s characters long",
	"oneof":           "must be one of [%s]",
	"gt":              "must be greater than %s",
	"gte":             "must be greater than or equal to %s",
	"lt":              "must be less than %s",
	"lte":             "must be less than or equal to %s",
	"session_type":    "must be either 'telehealth' or 'in_person'",
	"medicare_number": "must be a valid 10 digit Medicare number",
	"not_past_date":   "must not be a date in the past",
	"role_type":       "must be one of patient, psychologist, practice_manager or admin",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"

	ErrClientServiceNotFound         = "Service not found"
	ErrClientInvalidPsychologistID   = "invalid psychologist id"
	ErrClientPsychologistNotFound    = "psychologist not found"
	ErrClientSlotNotAvailable        = "the selected time slot is no longer available"
	ErrClientSlotOutsideWindow       = "the selected time slot is outside the booking window"
	ErrClientAppointmentNotFound     = "appointment not found"
	ErrClientAppointmentNotEditable  = "this appointment can no longer be changed"
	ErrClientPatientNotFound         = "patient not found"
	ErrClientNoteNotFound            = "progress note not found"
	ErrClientNoteAlreadyFinalized    = "this progress note has been finalized and cannot be edited"
	ErrClientInvoiceNotFound         = "invoice not found"
	ErrClientInvoiceDocumentMissing  = "no document has been generated for this invoice yet"
	ErrClientInvalidMedicareNumber   = "the Medicare number provided is not valid"
	ErrClientMedicareSessionCapAlert = "no rebatable sessions remaining this calendar year"
	ErrClientUserNotFound            = "user not found"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevInvalidInput               = "invalid input"
	ErrDevBuildRequest               = "failed to build request from body"
	ErrDevCannotParseJSON            = "failed to parse JSON body"
	ErrDevCannotMarshalJSON          = "failed to marshal value to JSON"
	ErrDevCannotParseDate            = "failed to parse date value"
	ErrDevURLParamIDValidationFailed = "failed to validate URL param: %s"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevMissingRequestID           = "request ID not found in request context"
	ErrDevMissingSessionData         = "session data not found in request context"

	ErrDevAuthTokenMissing     = "authorization token is missing"
	ErrDevAuthTokenInvalid     = "authorization token is invalid"
	ErrDevAuthInvalidSession   = "session not found or expired in redis"
	ErrDevAuthGenerateToken    = "failed to sign JWT"
	ErrDevAuthSigningMethod    = "unexpected JWT signing method"
	ErrDevInvalidCredentials   = "credentials do not match any user"
	ErrDevFailedToHashPassword = "failed to hash password with bcrypt"
	ErrDevEmailAlreadyExists   = "email already exists in users collection"
	ErrDevUsernameAlreadyExist = "username already exists in users collection"
	ErrDevUserNotExists        = "user does not exist"
	ErrDevRoleNotAllowed       = "session role is not allowed for this resource"

	ErrDevMongoDBInsertDocument  = "failed to insert document to mongoDB"
	ErrDevMongoDBFindDocument    = "failed to find document in mongoDB"
	ErrDevMongoDBUpdateDocument  = "failed to update document in mongoDB"
	ErrDevMongoDBDeleteDocument  = "failed to delete document in mongoDB"
	ErrDevMongoDBCountDocument   = "failed to count documents in mongoDB"
	ErrDevMongoDBAggregate       = "failed to run aggregation pipeline in mongoDB"
	ErrDevMongoDBNotObjectID     = "provided ID is not a valid mongoDB ObjectID"
	ErrDevRedisSet               = "failed to set value in redis"
	ErrDevRedisGetNoData         = "failed to get value from redis for key: %s"
	ErrDevRedisDelete            = "failed to delete value in redis"
	ErrDevRedisIncrement         = "failed to increment value in redis"
	ErrDevRedisUnlock            = "failed to release redis lock"
	ErrDevMinioCreateObject      = "failed to create object in bucket: %s"
	ErrDevMinioPresignObject     = "failed to presign object in bucket: %s"
	ErrDevMinioObjectNotFound    = "object not found in bucket: %s"
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue"
	ErrDevRabbitMQConsumeMessage = "failed to start consuming messages from queue"
	ErrDevSMTPSendEmail          = "failed to send email via SMTP"

	ErrDevBookingPayloadInvalid       = "booking payload failed pre-flight validation"
	ErrDevServiceSlugUnresolved       = "service slug did not resolve to any catalog entry"
	ErrDevPsychologistIDNotPositive   = "psychologist id must be a positive integer"
	ErrDevPsychologistNotExists       = "psychologist does not exist"
	ErrDevSlotConflict                = "time slot overlaps an existing appointment"
	ErrDevSlotOutsideAvailability     = "time slot is outside the psychologist availability window"
	ErrDevSlotLockNotAcquired         = "could not acquire booking lock for slot"
	ErrDevAppointmentNotExists        = "appointment does not exist"
	ErrDevAppointmentTerminalState    = "appointment is already in a terminal status"
	ErrDevPatientNotExists            = "patient does not exist"
	ErrDevNoteNotExists               = "progress note does not exist"
	ErrDevNoteAlreadyFinalized        = "progress note is finalized and can no longer be edited"
	ErrDevInvoiceNotExists            = "invoice does not exist"
	ErrDevInvoiceDocumentNotUploaded  = "invoice has no stored document object"
	ErrDevMedicareChecksumFailed      = "medicare number failed checksum validation"
	ErrDevMedicareSessionCapExhausted = "medicare rebated session cap exhausted for this calendar year"
)
