package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexNumeric                      = `^\d+$`
	RegexDateYYYYMMDD                 = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM                     = `^\d{2}:\d{2}$`
	RegexMedicareNumber               = `^[2-6]\d{9}$`
	RegexPhoneNumberGeneral           = `^\+[1-9]\d{9,14}$`
)
