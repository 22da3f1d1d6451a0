package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfileLevelsUpEveryHundredXP(t *testing.T) {
	p := NewProfile("juror")
	assert.Equal(t, 1, p.Level)

	for i := 0; i < 9; i++ {
		p.recordReveal()
	}
	assert.Equal(t, 90, p.XP)
	assert.Equal(t, 1, p.Level)

	p.recordReveal()
	assert.Equal(t, 100, p.XP)
	assert.Equal(t, 2, p.Level)
}

func TestStreakAdvancesOnConsecutiveDays(t *testing.T) {
	p := NewProfile("juror")
	day1 := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)

	p.recordSubmission(day1)
	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, "2026-09-01", p.LastPlayed)

	p.recordSubmission(day1.AddDate(0, 0, 1))
	assert.Equal(t, 2, p.Streak)

	p.recordSubmission(day1.AddDate(0, 0, 2))
	assert.Equal(t, 3, p.Streak)
}

func TestStreakUnchangedWithinSameDay(t *testing.T) {
	p := NewProfile("juror")
	day := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	p.recordSubmission(day)
	p.recordSubmission(day.Add(6 * time.Hour))
	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, 100, p.XP) // both submissions still award XP
}

func TestStreakResetsAfterMissedDay(t *testing.T) {
	p := NewProfile("juror")
	day1 := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	p.recordSubmission(day1)
	p.recordSubmission(day1.AddDate(0, 0, 1))
	assert.Equal(t, 2, p.Streak)

	p.recordSubmission(day1.AddDate(0, 0, 4))
	assert.Equal(t, 1, p.Streak)
}
