package document

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload accepts a multipart menu document, extracts its text, and
// returns the stored record.
func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetString("userID")

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	doc, err := h.service.UploadDocument(c.Request.Context(), userID, header)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoReadableText):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case err.Error() == "file exceeds 10MB limit",
			err.Error() == "file type not allowed, use .pdf, .docx or .txt",
			err.Error() == "file extension missing",
			err.Error() == "not a pdf file",
			err.Error() == "not a docx file":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":             doc.ID,
		"filename":       doc.Filename,
		"char_count":     doc.CharCount,
		"extracted_text": doc.ExtractedText,
	})
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetString("userID")

	docs, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")
	docID := c.Param("id")

	doc, err := h.service.GetOwned(c.Request.Context(), docID, userID)
	if err != nil {
		if errors.Is(err, ErrNotDocumentOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, doc)
}
