package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reawakn/matchengine/internal/domain/matching"
	"github.com/reawakn/matchengine/internal/domain/scheduling"
	"github.com/reawakn/matchengine/internal/infra/embedder"
	"github.com/reawakn/matchengine/internal/infra/skillrepo"
	apperrors "github.com/reawakn/matchengine/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	matchSvc *matching.Service
	schedSvc *scheduling.Service
	skills   matching.SkillRepository
	embed    embedder.Embedder
	logger   *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(matchSvc *matching.Service, schedSvc *scheduling.Service, skills matching.SkillRepository, embed embedder.Embedder, logger *slog.Logger) *Handler {
	return &Handler{
		matchSvc: matchSvc,
		schedSvc: schedSvc,
		skills:   skills,
		embed:    embed,
		logger:   logger.With("component", "http.handler"),
	}
}

type addSkillRequest struct {
	UserID        string          `json:"userId" binding:"required"`
	Skill         string          `json:"skill" binding:"required"`
	Kind          string          `json:"kind" binding:"required"`
	TeachingHours int             `json:"teachingHours"`
	Embedding     json.RawMessage `json:"embedding"`
}

// AddSkill registers an advertised skill. When the request carries no
// embedding the configured provider computes one from the skill text.
func (h *Handler) AddSkill(c *gin.Context) {
	var req addSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "userId must be a uuid", err))
		return
	}
	kind, ok := parseSkillKind(req.Kind)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "kind must be teach or learn", nil))
		return
	}

	var vector []float32
	if len(req.Embedding) > 0 {
		vector = skillrepo.NormalizeEmbedding(req.Embedding)
		if vector == nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "embedding payload is not a numeric vector", nil))
			return
		}
	} else {
		vectors, err := h.embed.Embed(c.Request.Context(), []string{req.Skill})
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadGateway, "embedding_failed", errMessage(err), err))
			return
		}
		if len(vectors) == 1 {
			vector = vectors[0]
		}
	}

	rec := matching.SkillRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Skill:         req.Skill,
		Kind:          kind,
		Embedding:     vector,
		TeachingHours: req.TeachingHours,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.skills.Add(c.Request.Context(), rec); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "skill_store_failed", errMessage(err), err))
		return
	}

	c.JSON(http.StatusCreated, rec)
}

type removeSkillRequest struct {
	UserID string `json:"userId" binding:"required"`
	Skill  string `json:"skill" binding:"required"`
	Kind   string `json:"kind" binding:"required"`
}

// RemoveSkill deletes a previously advertised skill.
func (h *Handler) RemoveSkill(c *gin.Context) {
	var req removeSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "userId must be a uuid", err))
		return
	}
	kind, ok := parseSkillKind(req.Kind)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "kind must be teach or learn", nil))
		return
	}

	if err := h.skills.Remove(c.Request.Context(), userID, req.Skill, kind); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "skill_store_failed", errMessage(err), err))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSkills returns every advertised skill for a user.
func (h *Handler) ListSkills(c *gin.Context) {
	userID, httpErr := pathUUID(c, "userID")
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	records, err := h.skills.ListByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "skill_store_failed", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": records})
}

// GetMatch returns the bidirectional compatibility score for a pair.
func (h *Handler) GetMatch(c *gin.Context) {
	userID, httpErr := pathUUID(c, "userID")
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}
	targetID, httpErr := pathUUID(c, "targetID")
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	result, err := h.matchSvc.Compare(c.Request.Context(), userID, targetID)
	if err != nil {
		abortWithError(c, domainError("match_failed", err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// RefreshMatch drops the cached score for a pair so the next lookup
// recomputes it.
func (h *Handler) RefreshMatch(c *gin.Context) {
	userID, httpErr := pathUUID(c, "userID")
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}
	targetID, httpErr := pathUUID(c, "targetID")
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	if err := h.matchSvc.Refresh(c.Request.Context(), userID, targetID); err != nil {
		abortWithError(c, domainError("match_failed", err))
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAvailability returns the shared free one-hour slots for a pair.
func (h *Handler) GetAvailability(c *gin.Context) {
	userID, httpErr := pathUUID(c, "userID")
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}
	targetID, httpErr := pathUUID(c, "targetID")
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	slots, err := h.schedSvc.ResolveAvailability(c.Request.Context(), userID, targetID)
	if err != nil {
		abortWithError(c, domainError("availability_failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

type proposalRequest struct {
	HostID  string `json:"hostId" binding:"required"`
	GuestID string `json:"guestId" binding:"required"`
}

// ProposeMeetings runs the full pipeline for a pair and returns the ranked
// session plan.
func (h *Handler) ProposeMeetings(c *gin.Context) {
	var req proposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	hostID, err := uuid.Parse(req.HostID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "hostId must be a uuid", err))
		return
	}
	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "guestId must be a uuid", err))
		return
	}

	proposal, err := h.schedSvc.ProposeMeetings(c.Request.Context(), hostID, guestID)
	if err != nil {
		abortWithError(c, domainError("proposal_failed", err))
		return
	}

	c.JSON(http.StatusOK, proposal)
}

type bookingRequest struct {
	HostID   string    `json:"hostId" binding:"required"`
	GuestID  string    `json:"guestId" binding:"required"`
	StartUTC time.Time `json:"startUTC" binding:"required"`
	EndUTC   time.Time `json:"endUTC"`
	Title    string    `json:"title"`
}

// BookMeeting persists a chosen slot as a pending meeting. A missing end
// defaults to one hour after the start.
func (h *Handler) BookMeeting(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	hostID, err := uuid.Parse(req.HostID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "hostId must be a uuid", err))
		return
	}
	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "guestId must be a uuid", err))
		return
	}

	end := req.EndUTC
	if end.IsZero() {
		end = req.StartUTC.Add(time.Hour)
	}
	slot := scheduling.CandidateSlot{StartUTC: req.StartUTC, EndUTC: end}

	meeting, err := h.schedSvc.BookSlot(c.Request.Context(), hostID, guestID, slot, req.Title)
	if err != nil {
		abortWithError(c, domainError("booking_failed", err))
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

func parseSkillKind(s string) (matching.SkillKind, bool) {
	switch matching.SkillKind(s) {
	case matching.SkillKindTeach:
		return matching.SkillKindTeach, true
	case matching.SkillKindLearn:
		return matching.SkillKindLearn, true
	}
	return "", false
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, *HTTPError) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, NewHTTPError(http.StatusBadRequest, "invalid_request", name+" must be a uuid", err)
	}
	return id, nil
}

func domainError(code string, err error) *HTTPError {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "storage_error"):
		status = http.StatusInternalServerError
	case apperrors.IsCode(err, "dimension_mismatch"):
		status = http.StatusUnprocessableEntity
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
