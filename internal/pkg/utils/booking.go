package utils

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// BookingValidation is the outcome of a pre-flight booking payload check.
// Warnings never block submission; errors do.
type BookingValidation struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

var bookingIDFields = []string{"psychologist_id", "service_id", "time_slot_id"}

var allowedSessionTypes = []string{"telehealth", "in_person"}

// ValidateBookingPayload shape-checks a raw booking payload before it is
// decoded into a typed request. It never returns an error: malformed JSON
// and bad field types are reported through the result.
func ValidateBookingPayload(payload []byte) BookingValidation {
	result := BookingValidation{Errors: []string{}, Warnings: []string{}}

	var fields map[string]interface{}
	if err := json.Unmarshal(payload, &fields); err != nil {
		result.Errors = append(result.Errors, "payload must be a JSON object")
		return result
	}

	for _, field := range bookingIDFields {
		raw, present := fields[field]
		if !present || raw == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s is required", field))
			continue
		}
		value, ok := raw.(float64)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("%s must be a number", field))
			continue
		}
		if value != math.Trunc(value) {
			result.Errors = append(result.Errors, fmt.Sprintf("%s must be an integer", field))
			continue
		}
		if value < 1 {
			result.Errors = append(result.Errors, fmt.Sprintf("%s must be greater than or equal to 1", field))
		}
	}

	if raw, present := fields["session_type"]; present && raw != nil {
		sessionType, ok := raw.(string)
		if !ok || !isAllowedSessionType(sessionType) {
			result.Errors = append(result.Errors, fmt.Sprintf("session_type must be one of [%s, %s]", allowedSessionTypes[0], allowedSessionTypes[1]))
		}
	}

	if raw, present := fields["notes"]; present && raw != nil {
		if _, ok := raw.(string); !ok {
			result.Warnings = append(result.Warnings, "notes should be a string and will be ignored")
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

func isAllowedSessionType(sessionType string) bool {
	for _, allowed := range allowedSessionTypes {
		if sessionType == allowed {
			return true
		}
	}
	return false
}
