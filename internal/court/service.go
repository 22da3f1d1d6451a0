package court

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/redditjury/reddit-jury-backend/internal/storage"
)

// Service is the sole authority over case and verdict persistence. Every
// operation reads a whole collection from the store, mutates it in memory and
// writes it back; the mutex serializes in-process writers. Writers in other
// processes race last-write-wins, which is accepted at this scale.
type Service struct {
	store storage.Store
	mu    sync.Mutex
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// TodayCase returns the case whose id matches the current UTC date key, or
// (nil, nil) when no case exists for today. Absence is not an error.
func (s *Service) TodayCase(ctx context.Context) (*Case, error) {
	cases, err := s.loadCases(ctx)
	if err != nil {
		return nil, err
	}

	today := TodayKey()
	for i := range cases {
		if cases[i].ID == today {
			return &cases[i], nil
		}
	}
	return nil, nil
}

// CaseByID returns the case with the given date key, or (nil, nil).
func (s *Service) CaseByID(ctx context.Context, id string) (*Case, error) {
	cases, err := s.loadCases(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cases {
		if cases[i].ID == id {
			return &cases[i], nil
		}
	}
	return nil, nil
}

// CreateCase stores a new case keyed by today's UTC date. A second case on the
// same day is rejected with ErrDuplicateCase.
func (s *Service) CreateCase(ctx context.Context, draft CaseDraft) (*Case, error) {
	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Description) == "" {
		return nil, ErrInvalidCase
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cases, err := s.loadCases(ctx)
	if err != nil {
		return nil, err
	}

	id := TodayKey()
	for i := range cases {
		if cases[i].ID == id {
			return nil, ErrDuplicateCase
		}
	}

	newCase := Case{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Plaintiff:   draft.Plaintiff,
		Defendant:   draft.Defendant,
		Evidence:    make([]Evidence, 0, len(draft.Evidence)),
		CreatedAt:   time.Now().UnixMilli(),
	}
	for i, ev := range draft.Evidence {
		newCase.Evidence = append(newCase.Evidence, Evidence{
			ID:      fmt.Sprintf("ev-%s-%d", id, i+1),
			Title:   ev.Title,
			Content: ev.Content,
		})
	}

	cases = append(cases, newCase)
	if err := s.saveCases(ctx, cases); err != nil {
		return nil, err
	}

	slog.Info("case created", "case_id", newCase.ID, "title", newCase.Title, "evidence", len(newCase.Evidence))
	return &newCase, nil
}

// Verdicts returns the verdicts for a case ranked by votes descending, ties
// broken by submission order.
func (s *Service) Verdicts(ctx context.Context, caseID string) ([]Verdict, error) {
	verdicts, err := s.loadVerdicts(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]Verdict, 0)
	for _, v := range verdicts {
		if v.CaseID == caseID {
			ranked = append(ranked, v)
		}
	}

	// Stable keeps insertion order within equal vote counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Votes > ranked[j].Votes
	})
	return ranked, nil
}

// SubmitVerdict validates and stores a verdict. One verdict per author per
// case; a repeat submission fails with ErrDuplicateSubmission and leaves the
// collection untouched.
func (s *Service) SubmitVerdict(ctx context.Context, draft VerdictDraft) (*Verdict, error) {
	text := strings.TrimSpace(draft.Text)
	if text == "" {
		return nil, ErrEmptyVerdict
	}
	if utf8.RuneCountInString(text) > MaxVerdictLength {
		return nil, ErrVerdictTooLong
	}
	if !ValidStance(draft.Stance) {
		return nil, ErrInvalidStance
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	verdicts, err := s.loadVerdicts(ctx)
	if err != nil {
		return nil, err
	}

	for _, v := range verdicts {
		if v.CaseID == draft.CaseID && v.Author == draft.Author {
			return nil, ErrDuplicateSubmission
		}
	}

	verdict := Verdict{
		ID:     uuid.NewString(),
		CaseID: draft.CaseID,
		Author: draft.Author,
		Text:   text,
		Stance: draft.Stance,
		Votes:  InitialVotes,
	}

	verdicts = append(verdicts, verdict)
	if err := s.saveVerdicts(ctx, verdicts); err != nil {
		return nil, err
	}

	slog.Info("verdict submitted", "case_id", verdict.CaseID, "author", verdict.Author, "stance", verdict.Stance)
	return &verdict, nil
}

// Vote applies a +1/-1 delta to a verdict and returns the new count. The voter
// is only logged; there is no per-voter bookkeeping.
func (s *Service) Vote(ctx context.Context, verdictID, voterID string, direction int) (int, error) {
	if direction != 1 && direction != -1 {
		return 0, ErrInvalidDirection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	verdicts, err := s.loadVerdicts(ctx)
	if err != nil {
		return 0, err
	}

	for i := range verdicts {
		if verdicts[i].ID == verdictID {
			verdicts[i].Votes += direction
			if err := s.saveVerdicts(ctx, verdicts); err != nil {
				return 0, err
			}
			slog.Info("vote applied", "verdict_id", verdictID, "voter", voterID, "direction", direction, "votes", verdicts[i].Votes)
			return verdicts[i].Votes, nil
		}
	}
	return 0, ErrVerdictNotFound
}

// Ping reports storage health for the health endpoint.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) loadCases(ctx context.Context) ([]Case, error) {
	data, err := s.store.Get(ctx, storage.CollectionCases)
	if errors.Is(err, storage.ErrNotFound) {
		return []Case{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cases: %w", err)
	}

	var cases []Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("decode cases: %w", err)
	}
	return cases, nil
}

func (s *Service) saveCases(ctx context.Context, cases []Case) error {
	data, err := json.Marshal(cases)
	if err != nil {
		return fmt.Errorf("encode cases: %w", err)
	}
	if err := s.store.Put(ctx, storage.CollectionCases, data); err != nil {
		return fmt.Errorf("store cases: %w", err)
	}
	return nil
}

func (s *Service) loadVerdicts(ctx context.Context) ([]Verdict, error) {
	data, err := s.store.Get(ctx, storage.CollectionVerdicts)
	if errors.Is(err, storage.ErrNotFound) {
		return []Verdict{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load verdicts: %w", err)
	}

	var verdicts []Verdict
	if err := json.Unmarshal(data, &verdicts); err != nil {
		return nil, fmt.Errorf("decode verdicts: %w", err)
	}
	return verdicts, nil
}

func (s *Service) saveVerdicts(ctx context.Context, verdicts []Verdict) error {
	data, err := json.Marshal(verdicts)
	if err != nil {
		return fmt.Errorf("encode verdicts: %w", err)
	}
	if err := s.store.Put(ctx, storage.CollectionVerdicts, data); err != nil {
		return fmt.Errorf("store verdicts: %w", err)
	}
	return nil
}
