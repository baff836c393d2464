package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) AdminListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": toUserResponses(users)})
}

type adminRequestResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Skill     string    `json:"skill"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h HandlerSet) AdminListRequests(c *gin.Context) {
	requests, err := h.requests.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]adminRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, adminRequestResponse{
			ID:        r.ID,
			Email:     r.Email,
			Name:      r.Name,
			Skill:     r.Skill,
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"requests": out})
}

func (h HandlerSet) AdminListSessions(c *gin.Context) {
	sessions, err := h.sessions.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": toSessionResponses(sessions)})
}

func (h HandlerSet) AdminDeleteUser(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), req.Email); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type updatePointsRequest struct {
	Email  string `json:"email" binding:"required"`
	Points *int   `json:"points" binding:"required"`
}

func (h HandlerSet) AdminUpdatePoints(c *gin.Context) {
	var req updatePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.adminService.SetSkillPoints(c.Request.Context(), req.Email, *req.Points); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
