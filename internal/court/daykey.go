package court

import (
	"fmt"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey returns the case identifier for the UTC day containing t. The day
// boundary is always UTC, never local time; case lookup depends on this.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// TodayKey returns the case identifier for the current UTC day.
func TodayKey() string {
	return DayKey(time.Now())
}

// NextMidnightUTC returns the next UTC midnight strictly after t.
func NextMidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
}

// TimeUntilReset returns how long until the next case day starts.
func TimeUntilReset(t time.Time) time.Duration {
	return NextMidnightUTC(t).Sub(t)
}

// FormatCountdown renders a duration as the "23h 59m" display string shown
// under the gavel.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
