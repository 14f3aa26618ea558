package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Mailer   AppMailer
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
	Booking  AppBooking
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	BaseUrl                    string
	Timezone                   string
	FrontendDomain             string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMailer struct {
	EmailSender string
}

type AppMinio struct {
	BucketName                        string
	PreSignedUrlObjectExpiryTimeHours int
}

type AppRabbitMQ struct {
	MailerQueue   string
	ReminderQueue string
}

type AppBooking struct {
	// AvailabilityWindowDays is the rolling window shown to patients when
	// listing bookable slots.
	AvailabilityWindowDays int
	// SlotLockTTLInSeconds bounds how long a slot stays held while a booking
	// request is in flight.
	SlotLockTTLInSeconds int
	// ReminderLeadTimeInHours is how far before the appointment the reminder
	// email goes out.
	ReminderLeadTimeInHours int
	// ReminderTickIntervalInSeconds is the poll interval of the reminder worker.
	ReminderTickIntervalInSeconds int
	// ReminderRatePerSecond throttles reminder publishes to the mailer queue.
	ReminderRatePerSecond int
}
