package constvars

const (
	RedisKeySessionFormat      = "clinicflow:session:%s"
	RedisKeyServiceCatalog     = "clinicflow:services:catalog"
	RedisKeySlotLockFormat     = "clinicflow:lock:slot:%d:%d"
	RedisKeyReminderSentFormat = "clinicflow:reminder:appointment:%s"
)
