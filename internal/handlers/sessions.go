package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"peerskill/api/internal/models"
	"peerskill/api/internal/service"
)

type scheduleRequest struct {
	Scheduler string `json:"scheduler" binding:"required"`
	Peer      string `json:"peer" binding:"required"`
	Skill     string `json:"skill" binding:"required"`
	DateTime  string `json:"dateTime" binding:"required"`
}

func (h HandlerSet) ScheduleSession(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	principal, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	session, err := h.sessionService.Schedule(c.Request.Context(), service.ScheduleInput{
		CallerEmail:    principal.Email,
		SchedulerEmail: req.Scheduler,
		PeerEmail:      req.Peer,
		Skill:          req.Skill,
		DateTime:       req.DateTime,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"link":   session.Link,
	})
}

type sessionResponse struct {
	ID        string    `json:"id"`
	Scheduler string    `json:"scheduler"`
	Peer      string    `json:"peer"`
	Skill     string    `json:"skill"`
	DateTime  string    `json:"dateTime"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}

func toSessionResponses(sessions []models.Session) []sessionResponse {
	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, sessionResponse{
			ID:        s.ID,
			Scheduler: s.SchedulerEmail,
			Peer:      s.PeerEmail,
			Skill:     s.Skill,
			DateTime:  s.DateTime,
			Link:      s.Link,
			CreatedAt: s.CreatedAt,
		})
	}
	return out
}

func (h HandlerSet) MySessions(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	principal, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if !strings.EqualFold(principal.Email, req.Email) {
		h.respondError(c, service.ErrIdentityMismatch)
		return
	}

	sessions, err := h.sessions.ListByParticipant(c.Request.Context(), req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": toSessionResponses(sessions)})
}
