package billing

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v79"
	portalsession "github.com/stripe/stripe-go/v79/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"

	"github.com/rogulenkoko/MenuCraft-sub000/internal/profile"
)

var (
	ErrUnknownCheckoutKind = errors.New("unknown checkout kind")
	ErrNoStripeCustomer    = errors.New("no stripe customer for user")
)

type Service struct {
	events   EventRepository
	profiles *profile.Service

	// monthly credit grant per subscription price id
	planCredits map[string]int
}

func NewService(events EventRepository, profiles *profile.Service) *Service {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	planCredits := map[string]int{}
	if p := os.Getenv("STRIPE_PRICE_PLAN_STARTER"); p != "" {
		planCredits[p] = 20
	}
	if p := os.Getenv("STRIPE_PRICE_PLAN_PRO"); p != "" {
		planCredits[p] = 60
	}

	return &Service{
		events:      events,
		profiles:    profiles,
		planCredits: planCredits,
	}
}

// --------------------------------------------------
// Checkout / Portal
// --------------------------------------------------

type CheckoutRequest struct {
	Kind string `json:"kind"` // activation | credits | subscription
	Pack string `json:"pack"` // small | medium | large (kind=credits)
	Plan string `json:"plan"` // starter | pro        (kind=subscription)
}

// CreateCheckout builds the Stripe Checkout session for an activation
// purchase, a credit pack, or a subscription plan.
func (s *Service) CreateCheckout(ctx context.Context, userID, email string, req CheckoutRequest) (string, error) {
	successURL := os.Getenv("CHECKOUT_SUCCESS_URL")
	cancelURL := os.Getenv("CHECKOUT_CANCEL_URL")

	params := &stripe.CheckoutSessionParams{
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(cancelURL),
		ClientReferenceID: stripe.String(userID),
		CustomerEmail:     stripe.String(email),
	}

	switch req.Kind {
	case KindActivation:
		params.Mode = stripe.String(string(stripe.CheckoutSessionModePayment))
		params.LineItems = []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(os.Getenv("STRIPE_PRICE_ACTIVATION")),
			Quantity: stripe.Int64(1),
		}}
		params.AddMetadata("kind", KindActivation)

	case KindCredits:
		credits, ok := creditPacks[req.Pack]
		if !ok {
			return "", fmt.Errorf("unknown credit pack %q", req.Pack)
		}
		params.Mode = stripe.String(string(stripe.CheckoutSessionModePayment))
		params.LineItems = []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(packPriceID(req.Pack)),
			Quantity: stripe.Int64(1),
		}}
		params.AddMetadata("kind", KindCredits)
		params.AddMetadata("credits", fmt.Sprintf("%d", credits))

	case KindSubscription:
		priceID := planPriceID(req.Plan)
		if priceID == "" {
			return "", fmt.Errorf("unknown plan %q", req.Plan)
		}
		params.Mode = stripe.String(string(stripe.CheckoutSessionModeSubscription))
		params.LineItems = []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(priceID),
			Quantity: stripe.Int64(1),
		}}
		params.AddMetadata("kind", KindSubscription)

	default:
		return "", ErrUnknownCheckoutKind
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

// CreatePortal returns a Billing Portal session URL for the user's
// Stripe customer.
func (s *Service) CreatePortal(ctx context.Context, userID string) (string, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if p.StripeCustomerID == nil || *p.StripeCustomerID == "" {
		return "", ErrNoStripeCustomer
	}

	sess, err := portalsession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*p.StripeCustomerID),
		ReturnURL: stripe.String(os.Getenv("PORTAL_RETURN_URL")),
	})
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

// EnqueueEvent stores a verified webhook event for the worker.
// Returns false on redelivery of an already-seen event.
func (s *Service) EnqueueEvent(ctx context.Context, stripeEventID, eventType string, payload []byte) (bool, error) {
	return s.events.Insert(ctx, stripeEventID, eventType, payload)
}

func packPriceID(pack string) string {
	switch pack {
	case "small":
		return os.Getenv("STRIPE_PRICE_PACK_SMALL")
	case "medium":
		return os.Getenv("STRIPE_PRICE_PACK_MEDIUM")
	case "large":
		return os.Getenv("STRIPE_PRICE_PACK_LARGE")
	}
	return ""
}

func planPriceID(plan string) string {
	switch plan {
	case "starter":
		return os.Getenv("STRIPE_PRICE_PLAN_STARTER")
	case "pro":
		return os.Getenv("STRIPE_PRICE_PLAN_PRO")
	}
	return ""
}
