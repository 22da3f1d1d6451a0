package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redditjury/reddit-jury-backend/internal/authoring"
	"github.com/redditjury/reddit-jury-backend/internal/court"
	"github.com/redditjury/reddit-jury-backend/internal/dto"
	"github.com/redditjury/reddit-jury-backend/internal/identity"
	"github.com/redditjury/reddit-jury-backend/internal/session"
)

// CourtHandler handles HTTP requests for cases, verdicts and votes.
type CourtHandler struct {
	service   *court.Service
	sessions  *session.Manager
	generator *authoring.Generator
}

func NewCourtHandler(service *court.Service, sessions *session.Manager, generator *authoring.Generator) *CourtHandler {
	return &CourtHandler{
		service:   service,
		sessions:  sessions,
		generator: generator,
	}
}

// GetToday handles GET /api/case/today
func (h *CourtHandler) GetToday(c *fiber.Ctx) error {
	ctx := c.UserContext()
	username := identity.Username(c)
	timeLeft := court.FormatCountdown(court.TimeUntilReset(time.Now()))

	kase, err := h.service.TodayCase(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load today's case",
		})
	}

	if kase == nil {
		return c.JSON(dto.TodayResponse{
			Verdicts: []court.Verdict{},
			Phase:    string(session.PhaseNoCase),
			TimeLeft: timeLeft,
			Profile:  profileResponse(h.sessions.ProfileFor(username)),
		})
	}

	verdicts, err := h.service.Verdicts(ctx, kase.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load verdicts",
		})
	}

	submitted := hasSubmitted(verdicts, username)
	ctrl := h.sessions.ControllerFor(username, kase, submitted)

	return c.JSON(dto.TodayResponse{
		Case:         caseResponse(kase, ctrl),
		Verdicts:     verdicts,
		Phase:        string(ctrl.Phase()),
		HasSubmitted: submitted,
		TimeLeft:     timeLeft,
		Profile:      profileResponse(ctrl.Profile()),
	})
}

// CreateCase handles POST /api/case (admin). An empty body triggers AI
// generation; generation failures still yield the playable fallback case.
func (h *CourtHandler) CreateCase(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCaseRequest
	_ = c.BodyParser(&req)

	var draft court.CaseDraft
	if req.Title == "" {
		draft = h.generator.GenerateCase(ctx)
	} else {
		draft = court.CaseDraft{
			Title:       req.Title,
			Description: req.Description,
			Plaintiff:   req.Plaintiff,
			Defendant:   req.Defendant,
			Evidence:    req.Evidence,
		}
	}

	kase, err := h.service.CreateCase(ctx, draft)
	if errors.Is(err, court.ErrDuplicateCase) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	if errors.Is(err, court.ErrInvalidCase) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create case",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(kase)
}

// GetVerdicts handles GET /api/case/:id/verdicts
func (h *CourtHandler) GetVerdicts(c *fiber.Ctx) error {
	verdicts, err := h.service.Verdicts(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load verdicts",
		})
	}
	return c.JSON(fiber.Map{"verdicts": verdicts, "total": len(verdicts)})
}

// SubmitVerdict handles POST /api/verdicts for today's case.
func (h *CourtHandler) SubmitVerdict(c *fiber.Ctx) error {
	ctx := c.UserContext()
	username := identity.Username(c)

	var req dto.SubmitVerdictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	kase, err := h.service.TodayCase(ctx)
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

	verdict, err := h.service.SubmitVerdict(ctx, court.VerdictDraft{
		CaseID: kase.ID,
		Author: username,
		Text:   req.Text,
		Stance: court.Stance(req.Stance),
	})
	switch {
	case errors.Is(err, court.ErrDuplicateSubmission):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, court.ErrEmptyVerdict),
		errors.Is(err, court.ErrVerdictTooLong),
		errors.Is(err, court.ErrInvalidStance):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit verdict",
		})
	}

	ctrl := h.sessions.ControllerFor(username, kase, false)
	ctrl.MarkSubmitted(time.Now())

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"verdict": verdict,
		"phase":   string(ctrl.Phase()),
		"profile": profileResponse(ctrl.Profile()),
	})
}

// Vote handles POST /api/verdicts/:id/vote
func (h *CourtHandler) Vote(c *fiber.Ctx) error {
	var req dto.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	verdictID := c.Params("id")
	votes, err := h.service.Vote(c.UserContext(), verdictID, identity.UserID(c), req.Direction)
	switch {
	case errors.Is(err, court.ErrVerdictNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, court.ErrInvalidDirection):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to apply vote",
		})
	}

	return c.JSON(dto.VoteResponse{VerdictID: verdictID, Votes: votes})
}
