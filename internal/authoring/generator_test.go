package authoring

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatPayload(content string) string {
	return `{"choices":[{"message":{"content":` + jsonString(content) + `}}]}`
}

func jsonString(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + replacer.Replace(s) + `"`
}

const generatedCase = `{
  "title": "The Case of the Downvoted Dinner",
  "description": "The defendant allegedly mass-downvoted the plaintiff's lasagna photos.",
  "plaintiff": "/u/HomeCook",
  "defendant": "/u/FoodCritic9000",
  "evidence": [
    {"title": "Exhibit A: Vote History", "content": "47 downvotes in 12 seconds."},
    {"title": "Witness Testimony", "content": "He always hated lasagna."},
    {"title": "Character Note", "content": ""}
  ]
}`

func TestGenerateCaseWithoutKeyFallsBack(t *testing.T) {
	g := NewGenerator("http://unused.invalid", "", "glm-4.6", time.Second)

	assert.False(t, g.IsAvailable())
	draft := g.GenerateCase(context.Background())
	assert.Equal(t, FallbackDraft(), draft)
}

func TestGenerateCaseParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(chatPayload(generatedCase)))
	}))
	defer srv.Close()

	g := NewGenerator(srv.URL, "test-key", "glm-4.6", time.Second)
	require.True(t, g.IsAvailable())

	draft := g.GenerateCase(context.Background())
	assert.Equal(t, "The Case of the Downvoted Dinner", draft.Title)
	assert.Equal(t, "/u/HomeCook", draft.Plaintiff)
	// The empty evidence item is dropped
	require.Len(t, draft.Evidence, 2)
	assert.Equal(t, "Exhibit A: Vote History", draft.Evidence[0].Title)
}

func TestGenerateCaseStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + generatedCase + "\n```"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatPayload(fenced)))
	}))
	defer srv.Close()

	g := NewGenerator(srv.URL, "test-key", "glm-4.6", time.Second)
	draft := g.GenerateCase(context.Background())
	assert.Equal(t, "The Case of the Downvoted Dinner", draft.Title)
}

func TestGenerateCaseFallsBackOnBadResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "empty choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "content is not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(chatPayload("I'd be happy to help with that!")))
			},
		},
		{
			name: "missing required fields",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(chatPayload(`{"title":"The Case of the Nameless Parties"}`)))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			g := NewGenerator(srv.URL, "test-key", "glm-4.6", time.Second)
			draft := g.GenerateCase(context.Background())
			assert.Equal(t, FallbackDraft(), draft)
		})
	}
}

func TestGenerateCaseFallsBackWhenUnreachable(t *testing.T) {
	g := NewGenerator("http://127.0.0.1:1", "test-key", "glm-4.6", 200*time.Millisecond)

	draft := g.GenerateCase(context.Background())
	assert.Equal(t, FallbackDraft(), draft)
}

func TestFallbackDraftIsComplete(t *testing.T) {
	draft := FallbackDraft()
	assert.Equal(t, "The Case of the Missing Data", draft.Title)
	assert.NotEmpty(t, draft.Description)
	assert.NotEmpty(t, draft.Plaintiff)
	assert.NotEmpty(t, draft.Defendant)
	require.Len(t, draft.Evidence, 3)
	for _, ev := range draft.Evidence {
		assert.NotEmpty(t, ev.Title)
		assert.NotEmpty(t, ev.Content)
	}
}

func TestSeedDraftIsComplete(t *testing.T) {
	draft := SeedDraft()
	assert.Equal(t, "The Case of the Accidental Permaban", draft.Title)
	require.Len(t, draft.Evidence, 3)
}
