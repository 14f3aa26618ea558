package utils

import (
	"clinicflow-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("session_type", validateSessionType)
	validate.RegisterValidation("role_type", validateRoleType)
	validate.RegisterValidation("medicare_number", validateMedicareNumber)
	validate.RegisterValidation("not_past_date", validateNotPastDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateSessionType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.SessionTypeTelehealth || value == constvars.SessionTypeInPerson
}

func validateRoleType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RoleTypePatient, constvars.RoleTypePsychologist, constvars.RoleTypePracticeManager, constvars.RoleTypeAdmin:
		return true
	}
	return false
}

func validateMedicareNumber(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return ValidMedicareNumber(value)
}

func validateNotPastDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}
	today := time.Now().Truncate(24 * time.Hour)
	return !parsed.Before(today)
}
