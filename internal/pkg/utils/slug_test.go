package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "individual-therapy-session", Slugify("Individual Therapy Session"))
	assert.Equal(t, "couples-counselling", Slugify("  Couples Counselling "))
	assert.Equal(t, "", Slugify(""))
}

func TestMatchesServiceSlug(t *testing.T) {
	t.Run("Exact Match", func(t *testing.T) {
		assert.True(t, MatchesServiceSlug("individual-therapy-session", "individual-therapy-session"))
	})

	t.Run("Requested Contained In Derived", func(t *testing.T) {
		assert.True(t, MatchesServiceSlug("individual-therapy", "individual-therapy-session"))
	})

	t.Run("Derived Contained In Requested", func(t *testing.T) {
		assert.True(t, MatchesServiceSlug("extended-couples-counselling", "couples-counselling"))
	})

	t.Run("Session Suffix Stripped", func(t *testing.T) {
		assert.True(t, MatchesServiceSlug("initial-consult-session", "initial-consult"))
	})

	t.Run("No Match", func(t *testing.T) {
		assert.False(t, MatchesServiceSlug("group-therapy", "individual-therapy-session"))
	})

	t.Run("Empty Slugs Never Match", func(t *testing.T) {
		assert.False(t, MatchesServiceSlug("", "individual-therapy-session"))
		assert.False(t, MatchesServiceSlug("individual-therapy", ""))
	})
}
