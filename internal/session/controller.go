package session

import (
	"errors"
	"sync"
	"time"

	"github.com/redditjury/reddit-jury-backend/internal/court"
)

// ErrUnknownEvidence - reveal target is not part of the active case.
var ErrUnknownEvidence = errors.New("evidence not found on the active case")

// Controller drives one viewer's phase state machine for one case. Reveal
// state lives here, per viewer, so one juror uncovering a clue is invisible to
// everyone else.
type Controller struct {
	mu          sync.Mutex
	caseID      string
	evidenceIDs []string
	revealed    map[string]bool
	phase       Phase
	profile     *Profile
}

// NewController builds a controller for the given case. A viewer who already
// submitted resumes directly in RESULT; a case whose evidence is all revealed
// (including a case with no evidence at all) starts in DELIBERATION.
func NewController(activeCase *court.Case, profile *Profile, hasSubmitted bool) *Controller {
	c := &Controller{
		caseID:   activeCase.ID,
		revealed: make(map[string]bool),
		profile:  profile,
	}
	for _, ev := range activeCase.Evidence {
		c.evidenceIDs = append(c.evidenceIDs, ev.ID)
	}

	switch {
	case hasSubmitted:
		c.phase = PhaseResult
	case c.allRevealed():
		c.phase = PhaseDeliberation
	default:
		c.phase = PhaseDiscovery
	}
	return c
}

func (c *Controller) CaseID() string { return c.caseID }

func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller) Profile() *Profile { return c.profile }

// IsRevealed reports whether this viewer has examined the given item.
func (c *Controller) IsRevealed(evidenceID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revealed[evidenceID]
}

// RevealedIDs returns examined evidence ids in case order.
func (c *Controller) RevealedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.revealed))
	for _, id := range c.evidenceIDs {
		if c.revealed[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Reveal marks an evidence item as examined. Revealing an already-revealed
// item is a no-op and awards nothing. The DISCOVERY -> DELIBERATION transition
// fires exactly when the last unrevealed item flips.
func (c *Controller) Reveal(evidenceID string) (alreadyRevealed bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.knows(evidenceID) {
		return false, ErrUnknownEvidence
	}
	if c.revealed[evidenceID] {
		return true, nil
	}

	c.revealed[evidenceID] = true
	c.profile.recordReveal()

	if c.phase == PhaseDiscovery && c.allRevealed() {
		c.phase = PhaseDeliberation
	}
	return false, nil
}

// MarkSubmitted moves the session to RESULT after a successful verdict
// submission and credits the profile. RESULT is terminal.
func (c *Controller) MarkSubmitted(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseResult {
		return
	}
	c.phase = PhaseResult
	c.profile.recordSubmission(now)
}

func (c *Controller) knows(evidenceID string) bool {
	for _, id := range c.evidenceIDs {
		if id == evidenceID {
			return true
		}
	}
	return false
}

func (c *Controller) allRevealed() bool {
	for _, id := range c.evidenceIDs {
		if !c.revealed[id] {
			return false
		}
	}
	return true
}
