package dto

import "github.com/redditjury/reddit-jury-backend/internal/court"

// EvidenceResponse is one clue as the viewer sees it: content stays hidden
// until they reveal the item.
type EvidenceResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content,omitempty"`
	IsRevealed bool   `json:"is_revealed"`
}

type CaseResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Plaintiff   string             `json:"plaintiff"`
	Defendant   string             `json:"defendant"`
	Evidence    []EvidenceResponse `json:"evidence"`
	CreatedAt   int64              `json:"created_at"`
}

type ProfileResponse struct {
	Username   string `json:"username"`
	XP         int    `json:"xp"`
	Level      int    `json:"level"`
	Streak     int    `json:"streak"`
	LastPlayed string `json:"last_played,omitempty"`
}

// TodayResponse is the full load-time payload for the webview.
type TodayResponse struct {
	Case         *CaseResponse   `json:"case"`
	Verdicts     []court.Verdict `json:"verdicts"`
	Phase        string          `json:"phase"`
	HasSubmitted bool            `json:"has_submitted"`
	TimeLeft     string          `json:"time_left"`
	Profile      ProfileResponse `json:"profile"`
}

type CreateCaseRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Plaintiff   string                `json:"plaintiff"`
	Defendant   string                `json:"defendant"`
	Evidence    []court.EvidenceDraft `json:"evidence"`
}

type SubmitVerdictRequest struct {
	Text   string `json:"text"`
	Stance string `json:"stance"`
}

type VoteRequest struct {
	Direction int `json:"direction"`
}

type VoteResponse struct {
	VerdictID string `json:"verdict_id"`
	Votes     int    `json:"votes"`
}

type RevealResponse struct {
	Evidence        EvidenceResponse `json:"evidence"`
	AlreadyRevealed bool             `json:"already_revealed"`
	Phase           string           `json:"phase"`
	Profile         ProfileResponse  `json:"profile"`
}

type SessionResponse struct {
	Phase        string          `json:"phase"`
	RevealedIDs  []string        `json:"revealed_ids"`
	HasSubmitted bool            `json:"has_submitted"`
	TimeLeft     string          `json:"time_left"`
	Profile      ProfileResponse `json:"profile"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
	Authoring string `json:"authoring"`
}
