package court

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/redditjury/reddit-jury-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewService(store), store
}

func testDraft() CaseDraft {
	return CaseDraft{
		Title:       "The Case of the Stolen Cake Day",
		Description: "The defendant allegedly reposted the plaintiff's cake day post.",
		Plaintiff:   "/u/OriginalPoster",
		Defendant:   "/u/SuspiciousReposter",
		Evidence: []EvidenceDraft{
			{Title: "Exhibit A", Content: "A screenshot with a familiar timestamp."},
			{Title: "Testimony", Content: "\"I saw the repost with my own eyes.\""},
		},
	}
}

func TestTodayCaseAbsent(t *testing.T) {
	svc, _ := newTestService(t)

	kase, err := svc.TodayCase(context.Background())
	require.NoError(t, err)
	assert.Nil(t, kase)
}

func TestCreateCaseAssignsTodayKey(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCase(ctx, testDraft())
	require.NoError(t, err)
	assert.Equal(t, DayKey(time.Now()), created.ID)
	assert.NotZero(t, created.CreatedAt)
	require.Len(t, created.Evidence, 2)
	for _, ev := range created.Evidence {
		assert.NotEmpty(t, ev.ID)
	}

	found, err := svc.TodayCase(ctx)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestTodayCaseIgnoresOtherDays(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	stale := []Case{{ID: "2000-01-01", Title: "Ancient History", Description: "A case from long ago."}}
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, storage.CollectionCases, data))

	kase, err := svc.TodayCase(ctx)
	require.NoError(t, err)
	assert.Nil(t, kase)

	byID, err := svc.CaseByID(ctx, "2000-01-01")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Ancient History", byID.Title)
}

func TestCreateCaseRejectsDuplicateDay(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCase(ctx, testDraft())
	require.NoError(t, err)

	_, err = svc.CreateCase(ctx, testDraft())
	assert.ErrorIs(t, err, ErrDuplicateCase)
}

func TestCreateCaseRejectsMissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateCase(context.Background(), CaseDraft{Title: "   "})
	assert.ErrorIs(t, err, ErrInvalidCase)
}

func TestSubmitVerdict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	v, err := svc.SubmitVerdict(ctx, VerdictDraft{
		CaseID: "2026-09-01",
		Author: "LegalBeagle",
		Text:   "  Guilty as charged  ",
		Stance: StanceGuilty,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "Guilty as charged", v.Text)
	assert.Equal(t, InitialVotes, v.Votes)
	assert.Equal(t, StanceGuilty, v.Stance)
}

func TestSubmitVerdictValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		draft   VerdictDraft
		wantErr error
	}{
		{
			name:    "empty text",
			draft:   VerdictDraft{CaseID: "c", Author: "a", Text: ""},
			wantErr: ErrEmptyVerdict,
		},
		{
			name:    "whitespace only",
			draft:   VerdictDraft{CaseID: "c", Author: "a", Text: "   \t  "},
			wantErr: ErrEmptyVerdict,
		},
		{
			name:    "too long",
			draft:   VerdictDraft{CaseID: "c", Author: "a", Text: strings.Repeat("x", MaxVerdictLength+1)},
			wantErr: ErrVerdictTooLong,
		},
		{
			name:    "unknown stance",
			draft:   VerdictDraft{CaseID: "c", Author: "a", Text: "ok", Stance: "MAYBE"},
			wantErr: ErrInvalidStance,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitVerdict(ctx, tt.draft)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// 140 characters exactly is allowed, and counts runes not bytes
	_, err := svc.SubmitVerdict(ctx, VerdictDraft{
		CaseID: "c", Author: "exact", Text: strings.Repeat("é", MaxVerdictLength),
	})
	assert.NoError(t, err)
}

func TestSubmitVerdictRejectsSecondFromSameAuthor(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitVerdict(ctx, VerdictDraft{CaseID: "c", Author: "KarmaCop", Text: "Guilty"})
	require.NoError(t, err)

	_, err = svc.SubmitVerdict(ctx, VerdictDraft{CaseID: "c", Author: "KarmaCop", Text: "Changed my mind"})
	assert.ErrorIs(t, err, ErrDuplicateSubmission)

	// The collection is untouched by the rejected attempt
	verdicts, err := svc.Verdicts(ctx, "c")
	require.NoError(t, err)
	require.Len(t, verdicts, 1)
	assert.Equal(t, "Guilty", verdicts[0].Text)

	// The same author may rule on a different case
	_, err = svc.SubmitVerdict(ctx, VerdictDraft{CaseID: "other", Author: "KarmaCop", Text: "Innocent"})
	assert.NoError(t, err)
}

func TestVerdictsRanking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// No verdicts at all
	verdicts, err := svc.Verdicts(ctx, "c")
	require.NoError(t, err)
	assert.Empty(t, verdicts)

	first, err := svc.SubmitVerdict(ctx, VerdictDraft{CaseID: "c", Author: "first", Text: "one"})
	require.NoError(t, err)

	verdicts, err = svc.Verdicts(ctx, "c")
	require.NoError(t, err)
	require.Len(t, verdicts, 1)

	second, err := svc.SubmitVerdict(ctx, VerdictDraft{CaseID: "c", Author: "second", Text: "two"})
	require.NoError(t, err)
	third, err := svc.SubmitVerdict(ctx, VerdictDraft{CaseID: "c", Author: "third", Text: "three"})
	require.NoError(t, err)

	// Another case's verdicts must not leak into the ranking
	_, err = svc.SubmitVerdict(ctx, VerdictDraft{CaseID: "other", Author: "first", Text: "elsewhere"})
	require.NoError(t, err)

	// Push third above the rest; first and second stay tied
	_, err = svc.Vote(ctx, third.ID, "t2_voter", 1)
	require.NoError(t, err)

	verdicts, err = svc.Verdicts(ctx, "c")
	require.NoError(t, err)
	require.Len(t, verdicts, 3)
	assert.Equal(t, third.ID, verdicts[0].ID)
	// Tie broken by submission order
	assert.Equal(t, first.ID, verdicts[1].ID)
	assert.Equal(t, second.ID, verdicts[2].ID)
}

func TestVoteRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	v, err := svc.SubmitVerdict(ctx, VerdictDraft{CaseID: "c", Author: "a", Text: "ruling"})
	require.NoError(t, err)

	up, err := svc.Vote(ctx, v.ID, "t2_voter", 1)
	require.NoError(t, err)
	assert.Equal(t, v.Votes+1, up)

	down, err := svc.Vote(ctx, v.ID, "t2_voter", -1)
	require.NoError(t, err)
	assert.Equal(t, v.Votes, down)
}

func TestVoteErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Vote(ctx, "missing", "t2_voter", 1)
	assert.ErrorIs(t, err, ErrVerdictNotFound)

	v, err := svc.SubmitVerdict(ctx, VerdictDraft{CaseID: "c", Author: "a", Text: "ruling"})
	require.NoError(t, err)

	_, err = svc.Vote(ctx, v.ID, "t2_voter", 2)
	assert.ErrorIs(t, err, ErrInvalidDirection)
	_, err = svc.Vote(ctx, v.ID, "t2_voter", 0)
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestVoteAllowsRepeatVoters(t *testing.T) {
	// There is no per-voter bookkeeping: the same voter may vote any number
	// of times.
	svc, _ := newTestService(t)
	ctx := context.Background()

	v, err := svc.SubmitVerdict(ctx, VerdictDraft{CaseID: "c", Author: "a", Text: "ruling"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.Vote(ctx, v.ID, "t2_same_voter", 1)
		require.NoError(t, err)
	}

	verdicts, err := svc.Verdicts(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, v.Votes+3, verdicts[0].Votes)
}
