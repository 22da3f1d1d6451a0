package authoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redditjury/reddit-jury-backend/internal/court"
)

const systemPrompt = `You are the court clerk for "Reddit Jury", a daily social game where users judge fictional Reddit disputes.

Rules:
1. Cases must be funny, dramatic and family-friendly
2. Theme: Reddit tropes (mods, karma, cake day, sub rules)
3. Evidence should be slightly contradictory or ambiguous
4. Return ONLY valid JSON, no markdown, no explanation`

const userPrompt = `Generate one fictional Reddit court case. Create exactly 3 pieces of specific evidence:
1. Physical Evidence (e.g. a suspicious screenshot)
2. Witness Testimony (e.g. a neighbor's comment)
3. Character Note (e.g. the defendant's post history)

Return a JSON object with this exact format:
{
  "title": "The Case of ...",
  "description": "What happened and what is being claimed",
  "plaintiff": "/u/SomeUser",
  "defendant": "/u/OtherUser",
  "evidence": [
    {"title": "Exhibit A: ...", "content": "..."}
  ]
}

Return ONLY the JSON object, nothing else.`

// Generator produces case drafts via a chat-completions API. Every failure
// mode (no credentials, transport error, bad status, unusable payload)
// resolves to the fixed fallback draft; callers never see an error.
type Generator struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

func NewGenerator(apiURL, apiKey, model string, timeout time.Duration) *Generator {
	return &Generator{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

// IsAvailable checks if the generation API is configured.
func (g *Generator) IsAvailable() bool {
	return g.apiKey != ""
}

// GenerateCase returns a usable case draft, falling back on any failure.
func (g *Generator) GenerateCase(ctx context.Context) court.CaseDraft {
	draft, err := g.generate(ctx)
	if err != nil {
		slog.Warn("case generation failed, using fallback case", "error", err)
		return FallbackDraft()
	}
	return draft
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *Generator) generate(ctx context.Context) (court.CaseDraft, error) {
	if g.apiKey == "" {
		return court.CaseDraft{}, fmt.Errorf("generation API key not configured")
	}

	chatReq := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.9,
		MaxTokens:   2048,
	}

	reqBody, err := json.Marshal(chatReq)
	if err != nil {
		return court.CaseDraft{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return court.CaseDraft{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return court.CaseDraft{}, fmt.Errorf("failed to call generation API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return court.CaseDraft{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return court.CaseDraft{}, fmt.Errorf("generation API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return court.CaseDraft{}, fmt.Errorf("failed to parse API response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return court.CaseDraft{}, fmt.Errorf("no content in API response")
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var draft court.CaseDraft
	if err := json.Unmarshal([]byte(content), &draft); err != nil {
		return court.CaseDraft{}, fmt.Errorf("failed to parse generated case: %w", err)
	}

	if strings.TrimSpace(draft.Title) == "" ||
		strings.TrimSpace(draft.Description) == "" ||
		strings.TrimSpace(draft.Plaintiff) == "" ||
		strings.TrimSpace(draft.Defendant) == "" {
		return court.CaseDraft{}, fmt.Errorf("generated case is missing required fields")
	}

	kept := draft.Evidence[:0]
	for _, ev := range draft.Evidence {
		if strings.TrimSpace(ev.Title) != "" && strings.TrimSpace(ev.Content) != "" {
			kept = append(kept, ev)
		}
	}
	draft.Evidence = kept

	return draft, nil
}
