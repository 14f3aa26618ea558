package utils

import "time"

// Time slot ids are derived from the slot's start instant so availability
// responses stay stateless: id = minutes since the Unix epoch. Any id a
// client sends back can be decoded without a slot store.

func EncodeTimeSlotID(start time.Time) int64 {
	return start.Unix() / 60
}

func DecodeTimeSlotID(slotID int64) time.Time {
	return time.Unix(slotID*60, 0).UTC()
}
