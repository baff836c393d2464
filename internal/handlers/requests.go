package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"peerskill/api/internal/ids"
	"peerskill/api/internal/models"
	"peerskill/api/internal/service"
)

type skillRequestBody struct {
	Email string `json:"email" binding:"required"`
	Skill string `json:"skill" binding:"required"`
}

func (h HandlerSet) RequestSkill(c *gin.Context) {
	var req skillRequestBody
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

	// Name is a denormalized snapshot; status starts Open and is never
	// transitioned anywhere in the system.
	request := models.SkillRequest{
		ID:     ids.New(),
		Email:  principal.Email,
		Name:   principal.Name,
		Skill:  req.Skill,
		Status: models.RequestStatusOpen,
	}

	if err := h.requests.Create(c.Request.Context(), request); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
