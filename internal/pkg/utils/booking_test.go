package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBookingPayload(t *testing.T) {
	t.Run("Valid Payload", func(t *testing.T) {
		payload := []byte(`{"psychologist_id": 3, "service_id": 1, "time_slot_id": 29555460, "session_type": "telehealth", "notes": "first visit"}`)

		result := ValidateBookingPayload(payload)

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
	})

	t.Run("Non Integer Psychologist ID", func(t *testing.T) {
		payload := []byte(`{"psychologist_id": 1.5, "service_id": 1, "time_slot_id": 2}`)

		result := ValidateBookingPayload(payload)

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "psychologist_id must be an integer")
	})

	t.Run("Invalid Session Type Lists Allowed Values", func(t *testing.T) {
		payload := []byte(`{"psychologist_id": 1, "service_id": 1, "time_slot_id": 2, "session_type": "video"}`)

		result := ValidateBookingPayload(payload)

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "session_type must be one of [telehealth, in_person]")
	})

	t.Run("Missing Fields", func(t *testing.T) {
		result := ValidateBookingPayload([]byte(`{}`))

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "psychologist_id is required")
		assert.Contains(t, result.Errors, "service_id is required")
		assert.Contains(t, result.Errors, "time_slot_id is required")
	})

	t.Run("Non Numeric ID", func(t *testing.T) {
		payload := []byte(`{"psychologist_id": "7", "service_id": 1, "time_slot_id": 2}`)

		result := ValidateBookingPayload(payload)

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "psychologist_id must be a number")
	})

	t.Run("Zero And Negative IDs", func(t *testing.T) {
		payload := []byte(`{"psychologist_id": 0, "service_id": -3, "time_slot_id": 2}`)

		result := ValidateBookingPayload(payload)

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "psychologist_id must be greater than or equal to 1")
		assert.Contains(t, result.Errors, "service_id must be greater than or equal to 1")
	})

	t.Run("Non String Notes Warns Only", func(t *testing.T) {
		payload := []byte(`{"psychologist_id": 1, "service_id": 1, "time_slot_id": 2, "notes": 42}`)

		result := ValidateBookingPayload(payload)

		assert.True(t, result.IsValid)
		assert.Contains(t, result.Warnings, "notes should be a string and will be ignored")
	})

	t.Run("Malformed JSON Never Panics", func(t *testing.T) {
		result := ValidateBookingPayload([]byte(`{"psychologist_id":`))

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "payload must be a JSON object")
	})
}

func TestHasSessionToken(t *testing.T) {
	assert.True(t, HasSessionToken("Bearer abc.def.ghi"))
	assert.False(t, HasSessionToken("Bearer "))
	assert.False(t, HasSessionToken(""))
	assert.False(t, HasSessionToken("Basic abc"))
}
