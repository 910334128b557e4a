package generation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rogulenkoko/MenuCraft-sub000/internal/profile"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Generate is the core endpoint: one credit buys one design run.
func (h *Handler) Generate(c *gin.Context) {
	userID := c.GetString("userID")

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	g, err := h.service.Generate(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrInsufficientCredits):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNoSource):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            g.ID,
		"menu_name":     g.MenuName,
		"status":        g.Status,
		"html_variants": g.HTMLVariants,
		"design_urls":   g.DesignURLs,
	})
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetString("userID")

	generations, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"generations": generations})
}

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")
	genID := c.Param("id")

	g, err := h.service.GetOwned(c.Request.Context(), genID, userID)
	if err != nil {
		if errors.Is(err, ErrNotGenerationOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            g.ID,
		"menu_name":     g.MenuName,
		"style":         g.Style,
		"status":        g.Status,
		"html_variants": g.HTMLVariants,
		"design_urls":   g.DesignURLs,
		"created_at":    g.CreatedAt,
	})
}

// Download serves one HTML variant as an attachment. 403 until the
// one-time activation purchase.
func (h *Handler) Download(c *gin.Context) {
	userID := c.GetString("userID")
	genID := c.Param("id")

	variant := 0
	if v := c.Query("variant"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "variant must be an integer"})
			return
		}
		variant = parsed
	}

	html, filename, err := h.service.DownloadVariant(c.Request.Context(), genID, userID, variant)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrActivationRequired):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotGenerationOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, ErrVariantOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// AdminRecent is the admin overview of the latest runs.
func (h *Handler) AdminRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	generations, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"generations": generations})
}
