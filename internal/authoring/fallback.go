package authoring

import "github.com/redditjury/reddit-jury-backend/internal/court"

// FallbackDraft is the deterministic placeholder served whenever generation is
// unavailable or returns unusable data. It communicates the failure in-theme;
// the game loop is never blocked on the AI.
func FallbackDraft() court.CaseDraft {
	return court.CaseDraft{
		Title:       "The Case of the Missing Data",
		Description: "The AI is on strike. The judge is confused.",
		Plaintiff:   "The Users",
		Defendant:   "The Server",
		Evidence: []court.EvidenceDraft{
			{Title: "Exhibit A", Content: "A blank sheet of paper."},
			{Title: "Testimony", Content: "I saw nothing."},
			{Title: "History", Content: "The logs are empty."},
		},
	}
}

// SeedDraft is the demo case used to make a fresh install playable.
func SeedDraft() court.CaseDraft {
	return court.CaseDraft{
		Title:       "The Case of the Accidental Permaban",
		Description: "The defendant (a junior mod) accidentally banned the subreddit's most popular artist because their dog stepped on the \"Ban\" key. The artist is suing for 1 million lost Karma.",
		Plaintiff:   "/u/ArtisticLegend",
		Defendant:   "/u/ClumsyMod",
		Evidence: []court.EvidenceDraft{
			{Title: "Exhibit A: The Keyboard", Content: "A high-resolution photo showing a single Golden Retriever hair wedged under the \"Enter\" key."},
			{Title: "Witness Testimony", Content: "\"I heard a sharp bark, a frantic clicking sound, and then u/ClumsyMod sobbing loudly.\" - The Next Door Neighbor"},
			{Title: "Character Note", Content: "The defendant's profile shows they have been a member of r/GoodBoys for 8 years."},
		},
	}
}
