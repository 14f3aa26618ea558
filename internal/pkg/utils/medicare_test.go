package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidMedicareNumber(t *testing.T) {
	t.Run("Valid Numbers", func(t *testing.T) {
		assert.True(t, ValidMedicareNumber("2123456701"))
		assert.True(t, ValidMedicareNumber("2950156481"))
	})

	t.Run("Wrong Checksum", func(t *testing.T) {
		assert.False(t, ValidMedicareNumber("2123456711"))
	})

	t.Run("First Digit Out Of Range", func(t *testing.T) {
		assert.False(t, ValidMedicareNumber("1123456701"))
		assert.False(t, ValidMedicareNumber("7123456701"))
	})

	t.Run("Wrong Length Or Non Digits", func(t *testing.T) {
		assert.False(t, ValidMedicareNumber("212345670"))
		assert.False(t, ValidMedicareNumber("21234567012"))
		assert.False(t, ValidMedicareNumber("21234567ab"))
		assert.False(t, ValidMedicareNumber(""))
	})
}
