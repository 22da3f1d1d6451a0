package court

// Stance is a categorical ruling on a case.
type Stance string

const (
	StanceGuilty   Stance = "GUILTY"
	StanceInnocent Stance = "INNOCENT"
	StanceESH      Stance = "ESH" // "Everyone Sucks Here"
)

// ValidStance reports whether s is one of the known stances. The empty stance is
// allowed; the simpler game variant submits verdicts without one.
func ValidStance(s Stance) bool {
	switch s {
	case "", StanceGuilty, StanceInnocent, StanceESH:
		return true
	}
	return false
}

// Evidence is one discoverable clue attached to a case. Reveal state is
// per-viewer session state, not part of the persisted case.
type Evidence struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Case is the daily scenario under judgment. ID is the UTC calendar date
// (YYYY-MM-DD) and doubles as the "is this today's case" test. Cases are
// immutable once created.
type Case struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Plaintiff   string     `json:"plaintiff"`
	Defendant   string     `json:"defendant"`
	Evidence    []Evidence `json:"evidence"`
	CreatedAt   int64      `json:"created_at"` // epoch milliseconds, display only
}

// Verdict is one user's ruling on a case. (CaseID, Author) is unique.
type Verdict struct {
	ID     string `json:"id"`
	CaseID string `json:"case_id"`
	Author string `json:"author"`
	Text   string `json:"text"`
	Stance Stance `json:"stance,omitempty"`
	Votes  int    `json:"votes"`
}

// EvidenceDraft is authoring input for one clue.
type EvidenceDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CaseDraft is the payload produced by the authoring collaborator or an admin.
type CaseDraft struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Plaintiff   string          `json:"plaintiff"`
	Defendant   string          `json:"defendant"`
	Evidence    []EvidenceDraft `json:"evidence,omitempty"`
}

// VerdictDraft is a submission before validation and server-side assignment.
type VerdictDraft struct {
	CaseID string `json:"case_id"`
	Author string `json:"author"`
	Text   string `json:"text"`
	Stance Stance `json:"stance,omitempty"`
}

// MaxVerdictLength bounds verdict text, counted in characters.
const MaxVerdictLength = 140

// InitialVotes is the vote count assigned to a freshly stored verdict. A
// submission counts as the author's own endorsement of their ruling.
const InitialVotes = 1
