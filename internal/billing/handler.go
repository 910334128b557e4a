package billing

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79/webhook"
)

const maxWebhookBodyBytes = 1 << 16

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Checkout creates a Stripe Checkout session and returns its URL.
func (h *Handler) Checkout(c *gin.Context) {
	userID := c.GetString("userID")
	email := c.GetString("userEmail")

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	url, err := h.service.CreateCheckout(c.Request.Context(), userID, email, req)
	if err != nil {
		if err == ErrUnknownCheckoutKind {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("CHECKOUT_FAILED user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Portal creates a Stripe Billing Portal session for the current user.
func (h *Handler) Portal(c *gin.Context) {
	userID := c.GetString("userID")

	url, err := h.service.CreatePortal(c.Request.Context(), userID)
	if err != nil {
		if err == ErrNoStripeCustomer {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no billing account yet, complete a purchase first"})
			return
		}
		log.Printf("PORTAL_FAILED user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create portal session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Webhook verifies the Stripe signature and queues the event. Actual
// processing happens in the worker, so Stripe gets a fast 200.
func (h *Handler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		log.Printf("WEBHOOK_BAD_SIGNATURE err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	inserted, err := h.service.EnqueueEvent(c.Request.Context(), event.ID, string(event.Type), event.Data.Raw)
	if err != nil {
		log.Printf("WEBHOOK_ENQUEUE_FAILED id=%s err=%v", event.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store event"})
		return
	}
	if !inserted {
		log.Printf("WEBHOOK_DUPLICATE id=%s type=%s", event.ID, event.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
