package session

import (
	"time"

	"github.com/redditjury/reddit-jury-backend/internal/court"
)

// XP awards per action.
const (
	xpPerReveal     = 10
	xpPerSubmission = 50
	xpPerLevel      = 100
)

// Profile is an ephemeral per-session gamification counter. It is never
// persisted; a restart starts everyone fresh.
type Profile struct {
	Username   string `json:"username"`
	XP         int    `json:"xp"`
	Level      int    `json:"level"`
	Streak     int    `json:"streak"`
	LastPlayed string `json:"last_played,omitempty"` // YYYY-MM-DD
}

func NewProfile(username string) *Profile {
	return &Profile{Username: username, Level: 1}
}

func (p *Profile) addXP(amount int) {
	p.XP += amount
	p.Level = p.XP/xpPerLevel + 1
}

// recordReveal awards evidence-examination XP.
func (p *Profile) recordReveal() {
	p.addXP(xpPerReveal)
}

// recordSubmission awards submission XP and advances the daily streak:
// consecutive-day play extends it, a missed day resets it, a second action on
// the same day leaves it unchanged.
func (p *Profile) recordSubmission(now time.Time) {
	p.addXP(xpPerSubmission)

	today := court.DayKey(now)
	yesterday := court.DayKey(now.AddDate(0, 0, -1))

	switch p.LastPlayed {
	case today:
		// already counted today
	case yesterday:
		p.Streak++
	default:
		p.Streak = 1
	}
	p.LastPlayed = today
}
