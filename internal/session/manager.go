package session

import (
	"sync"

	"github.com/redditjury/reddit-jury-backend/internal/court"
)

// Manager holds the per-viewer controllers and profiles for the process.
// Profiles outlive controllers: a new day replaces the viewer's controller but
// keeps their XP and streak for the session.
type Manager struct {
	mu          sync.Mutex
	controllers map[string]*Controller // by username
	profiles    map[string]*Profile
}

func NewManager() *Manager {
	return &Manager{
		controllers: make(map[string]*Controller),
		profiles:    make(map[string]*Profile),
	}
}

// ControllerFor returns the viewer's controller for the active case, creating
// a fresh one when the viewer is new or the case changed (new UTC day).
// hasSubmitted is consulted only on creation, to resume finished sessions in
// RESULT.
func (m *Manager) ControllerFor(username string, activeCase *court.Case, hasSubmitted bool) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.controllers[username]; ok && c.CaseID() == activeCase.ID {
		return c
	}

	c := NewController(activeCase, m.profileLocked(username), hasSubmitted)
	m.controllers[username] = c
	return c
}

// ProfileFor returns the viewer's session profile, creating it on first use.
func (m *Manager) ProfileFor(username string) *Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profileLocked(username)
}

func (m *Manager) profileLocked(username string) *Profile {
	p, ok := m.profiles[username]
	if !ok {
		p = NewProfile(username)
		m.profiles[username] = p
	}
	return p
}
