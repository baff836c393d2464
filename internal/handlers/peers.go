package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) Recommendations(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	peers, err := h.peerService.Recommend(c.Request.Context(), req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"peers": toUserResponses(peers)})
}

func (h HandlerSet) RandomPeers(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	peers, err := h.peerService.RandomPeers(c.Request.Context(), req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"peers": toUserResponses(peers)})
}

type searchRequest struct {
	Email string `json:"email" binding:"required"`
	Query string `json:"query"`
}

func (h HandlerSet) SearchPeers(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	peers, err := h.peerService.Search(c.Request.Context(), req.Email, req.Query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"peers": toUserResponses(peers)})
}

func (h HandlerSet) Leaderboard(c *gin.Context) {
	peers, err := h.peerService.Leaderboard(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"peers": toUserResponses(peers)})
}

type rateRequest struct {
	PeerEmail string  `json:"peerEmail" binding:"required"`
	Rating    float64 `json:"rating" binding:"required"`
}

func (h HandlerSet) RatePeer(c *gin.Context) {
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	principal, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result, err := h.ratingService.Apply(c.Request.Context(), principal.Email, req.PeerEmail, req.Rating)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"newPoints": result.NewPoints,
		"newRating": result.NewRating,
	})
}
