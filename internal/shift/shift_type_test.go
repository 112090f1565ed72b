package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypeForStart_Boundaries(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2026, 8, 10, h, m, 0, 0, time.Local)
	}

	assert.Equal(t, TypeNight, TypeForStart(day(4, 59)))
	assert.Equal(t, TypeDay, TypeForStart(day(5, 0)))
	assert.Equal(t, TypeDay, TypeForStart(day(16, 59)))
	assert.Equal(t, TypeNight, TypeForStart(day(17, 0)))
	assert.Equal(t, TypeNight, TypeForStart(day(23, 30)))
	assert.Equal(t, TypeNight, TypeForStart(day(0, 15)))
}

func TestBusinessDateForStart(t *testing.T) {
	// Night shift starting in the evening belongs to the next calendar day.
	evening := time.Date(2026, 8, 10, 19, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-08-11", BusinessDateForStart(evening).Format("2006-01-02"))

	// A night shift already past midnight stays on its own date.
	smallHours := time.Date(2026, 8, 11, 2, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-08-11", BusinessDateForStart(smallHours).Format("2006-01-02"))

	morning := time.Date(2026, 8, 10, 9, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-08-10", BusinessDateForStart(morning).Format("2006-01-02"))
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 8.0, RoundHours(8*time.Hour))
	assert.Equal(t, 8.5, RoundHours(8*time.Hour+30*time.Minute))
	assert.Equal(t, 8.26, RoundHours(8*time.Hour+15*time.Minute+30*time.Second))
	assert.Equal(t, 0.0, RoundHours(0))
}
