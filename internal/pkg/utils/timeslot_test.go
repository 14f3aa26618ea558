package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotID(t *testing.T) {
	t.Run("round-trips a slot start instant", func(t *testing.T) {
		start := time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC)

		id := EncodeTimeSlotID(start)

		assert.Equal(t, start, DecodeTimeSlotID(id))
	})

	t.Run("sub-minute precision is dropped", func(t *testing.T) {
		start := time.Date(2026, 9, 7, 9, 30, 42, 0, time.UTC)

		decoded := DecodeTimeSlotID(EncodeTimeSlotID(start))

		assert.Equal(t, time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC), decoded)
	})

	t.Run("later slots get larger ids", func(t *testing.T) {
		first := EncodeTimeSlotID(time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC))
		second := EncodeTimeSlotID(time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC))

		assert.Greater(t, second, first)
	})
}
