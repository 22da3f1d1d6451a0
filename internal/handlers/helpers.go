package handlers

import (
	"github.com/redditjury/reddit-jury-backend/internal/court"
	"github.com/redditjury/reddit-jury-backend/internal/dto"
	"github.com/redditjury/reddit-jury-backend/internal/session"
)

// caseResponse masks evidence per viewer: items keep their title as a teaser,
// content is withheld until the viewer reveals them.
func caseResponse(kase *court.Case, ctrl *session.Controller) *dto.CaseResponse {
	resp := &dto.CaseResponse{
		ID:          kase.ID,
		Title:       kase.Title,
		Description: kase.Description,
		Plaintiff:   kase.Plaintiff,
		Defendant:   kase.Defendant,
		Evidence:    make([]dto.EvidenceResponse, 0, len(kase.Evidence)),
		CreatedAt:   kase.CreatedAt,
	}
	for _, ev := range kase.Evidence {
		item := dto.EvidenceResponse{ID: ev.ID, Title: ev.Title}
		if ctrl != nil && ctrl.IsRevealed(ev.ID) {
			item.Content = ev.Content
			item.IsRevealed = true
		}
		resp.Evidence = append(resp.Evidence, item)
	}
	return resp
}

func profileResponse(p *session.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		Username:   p.Username,
		XP:         p.XP,
		Level:      p.Level,
		Streak:     p.Streak,
		LastPlayed: p.LastPlayed,
	}
}

func hasSubmitted(verdicts []court.Verdict, author string) bool {
	for _, v := range verdicts {
		if v.Author == author {
			return true
		}
	}
	return false
}
