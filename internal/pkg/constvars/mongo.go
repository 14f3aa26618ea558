package constvars

const (
	MongoCollectionUsers          = "users"
	MongoCollectionPatients       = "patients"
	MongoCollectionPsychologists  = "psychologists"
	MongoCollectionServices       = "services"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionProgressNotes  = "progress_notes"
	MongoCollectionInvoices       = "invoices"
	MongoCollectionPayments       = "payments"
	MongoCollectionMedicareClaims = "medicare_claims"
	MongoCollectionCounters       = "counters"
)

const (
	MongoCounterPsychologistID = "psychologist_id"
	MongoCounterServiceID      = "service_id"
)
