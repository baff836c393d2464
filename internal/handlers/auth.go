package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"peerskill/api/internal/models"
	"peerskill/api/internal/repository"
	"peerskill/api/internal/service"
)

type signupRequest struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Contact   string   `json:"contact"`
	Password  string   `json:"password" binding:"required,min=6"`
	Teach     []string `json:"teach"`
	Learn     []string `json:"learn"`
	StudyYear string   `json:"studyYear"`
	Branch    string   `json:"branch"`
	Avatar    string   `json:"avatar"`
}

func (h HandlerSet) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.authService.Signup(c.Request.Context(), service.SignupInput{
		Name:      req.Name,
		Email:     req.Email,
		Contact:   req.Contact,
		Password:  req.Password,
		Teach:     req.Teach,
		Learn:     req.Learn,
		StudyYear: req.StudyYear,
		Branch:    req.Branch,
		AvatarURL: req.Avatar,
	})
	if err != nil {
		// The original surface reports duplicate emails as a plain 400.
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.respondError(c, err)
		return
	}

	c.String(http.StatusOK, "Signup saved")
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"role":   result.Role,
		"name":   result.Name,
		"email":  result.Email,
		"token":  result.Token,
	})
}

type emailRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h HandlerSet) Me(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

type updateProfileRequest struct {
	Email     string    `json:"email" binding:"required"`
	Name      *string   `json:"name"`
	Contact   *string   `json:"contact"`
	Teach     *[]string `json:"teach"`
	Learn     *[]string `json:"learn"`
	StudyYear *string   `json:"studyYear"`
	Branch    *string   `json:"branch"`
	Avatar    *string   `json:"avatar"`
}

func (h HandlerSet) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	principal, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if !isSelfOrAdmin(principal, req.Email) {
		h.respondError(c, service.ErrIdentityMismatch)
		return
	}

	err := h.users.UpdateProfile(c.Request.Context(), req.Email, models.ProfileUpdate{
		Name:      req.Name,
		Contact:   req.Contact,
		Teach:     req.Teach,
		Learn:     req.Learn,
		StudyYear: req.StudyYear,
		Branch:    req.Branch,
		AvatarURL: req.Avatar,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h HandlerSet) UploadAvatar(c *gin.Context) {
	principal, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_required"})
		return
	}
	defer file.Close()

	url, err := h.avatarService.Upload(c.Request.Context(), principal, file, header)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"avatar": url,
	})
}
