package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Me returns the caller's credits/activation/subscription state.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	p, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// AdminGrantCredits is the manual support fallback.
func (h *Handler) AdminGrantCredits(c *gin.Context) {
	userID := c.Param("id")

	var req struct {
		Amount int `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a positive integer"})
		return
	}

	if err := h.service.GrantCredits(c.Request.Context(), userID, req.Amount); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "credits granted",
		"user_id": userID,
		"amount":  req.Amount,
	})
}
