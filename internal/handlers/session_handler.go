package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/redditjury/reddit-jury-backend/internal/court"
	"github.com/redditjury/reddit-jury-backend/internal/dto"
	"github.com/redditjury/reddit-jury-backend/internal/identity"
	"github.com/redditjury/reddit-jury-backend/internal/session"
)

// SessionHandler serves the viewer-local state: evidence reveal, phase and
// profile.
type SessionHandler struct {
	service  *court.Service
	sessions *session.Manager
}

func NewSessionHandler(service *court.Service, sessions *session.Manager) *SessionHandler {
	return &SessionHandler{service: service, sessions: sessions}
}

// controllerForToday loads today's case and the viewer's controller for it.
// Returns (nil, nil, nil) when no case is in session.
func (h *SessionHandler) controllerForToday(c *fiber.Ctx) (*court.Case, *session.Controller, error) {
	ctx := c.UserContext()
	username := identity.Username(c)

	kase, err := h.service.TodayCase(ctx)
	if err != nil || kase == nil {
		return nil, nil, err
	}

	verdicts, err := h.service.Verdicts(ctx, kase.ID)
	if err != nil {
		return nil, nil, err
	}

	return kase, h.sessions.ControllerFor(username, kase, hasSubmitted(verdicts, username)), nil
}

// RevealEvidence handles POST /api/evidence/:id/reveal. Revealing an item the
// viewer already examined is a no-op that awards nothing.
func (h *SessionHandler) RevealEvidence(c *fiber.Ctx) error {
	kase, ctrl, err := h.controllerForToday(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load today's case",
		})
	}
	if kase == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No case is currently in session",
		})
	}

	// Copy the route param: Fiber's zero-copy string would otherwise be
	// retained in the controller's reveal map past this request, and its
	// backing buffer is reused by later requests.
	evidenceID := utils.CopyString(c.Params("id"))
	already, err := ctrl.Reveal(evidenceID)
	if errors.Is(err, session.ErrUnknownEvidence) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	var revealed court.Evidence
	for _, ev := range kase.Evidence {
		if ev.ID == evidenceID {
			revealed = ev
			break
		}
	}

	return c.JSON(dto.RevealResponse{
		Evidence: dto.EvidenceResponse{
			ID:         revealed.ID,
			Title:      revealed.Title,
			Content:    revealed.Content,
			IsRevealed: true,
		},
		AlreadyRevealed: already,
		Phase:           string(ctrl.Phase()),
		Profile:         profileResponse(ctrl.Profile()),
	})
}

// GetSession handles GET /api/session
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	username := identity.Username(c)
	timeLeft := court.FormatCountdown(court.TimeUntilReset(time.Now()))

	kase, ctrl, err := h.controllerForToday(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load session",
		})
	}
	if kase == nil {
		return c.JSON(dto.SessionResponse{
			Phase:       string(session.PhaseNoCase),
			RevealedIDs: []string{},
			TimeLeft:    timeLeft,
			Profile:     profileResponse(h.sessions.ProfileFor(username)),
		})
	}

	return c.JSON(dto.SessionResponse{
		Phase:        string(ctrl.Phase()),
		RevealedIDs:  ctrl.RevealedIDs(),
		HasSubmitted: ctrl.Phase() == session.PhaseResult,
		TimeLeft:     timeLeft,
		Profile:      profileResponse(ctrl.Profile()),
	})
}

// GetProfile handles GET /api/profile
func (h *SessionHandler) GetProfile(c *fiber.Ctx) error {
	profile := h.sessions.ProfileFor(identity.Username(c))
	return c.JSON(profileResponse(profile))
}
