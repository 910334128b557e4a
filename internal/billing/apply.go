package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Apply executes the side effects of a single Stripe event. It must be
// idempotent at the event level: the repository already rejects
// duplicate stripe event ids, so Apply only sees each event once.
func (s *Service) Apply(ctx context.Context, e *Event) error {
	switch e.Type {
	case "checkout.session.completed":
		return s.applyCheckoutCompleted(ctx, e.Payload)
	case "invoice.paid":
		return s.applyInvoicePaid(ctx, e.Payload)
	case "customer.subscription.updated":
		return s.applySubscriptionUpdated(ctx, e.Payload)
	case "customer.subscription.deleted":
		return s.applySubscriptionDeleted(ctx, e.Payload)
	default:
		// unhandled event types are acknowledged, not failed
		return nil
	}
}

func (s *Service) applyCheckoutCompleted(ctx context.Context, payload []byte) error {
	var sess struct {
		ClientReferenceID string            `json:"client_reference_id"`
		Customer          string            `json:"customer"`
		Mode              string            `json:"mode"`
		Subscription      string            `json:"subscription"`
		Metadata          map[string]string `json:"metadata"`
	}
	if err := json.Unmarshal(payload, &sess); err != nil {
		return fmt.Errorf("parse checkout session: %w", err)
	}
	if sess.ClientReferenceID == "" {
		return fmt.Errorf("checkout session without client_reference_id")
	}
	userID := sess.ClientReferenceID

	if sess.Customer != "" {
		if err := s.profiles.AttachStripeCustomer(ctx, userID, sess.Customer); err != nil {
			return fmt.Errorf("attach stripe customer: %w", err)
		}
	}

	switch sess.Metadata["kind"] {
	case KindActivation:
		if err := s.profiles.Activate(ctx, userID); err != nil {
			return fmt.Errorf("activate profile: %w", err)
		}
	case KindCredits:
		credits, err := strconv.Atoi(sess.Metadata["credits"])
		if err != nil || credits <= 0 {
			return fmt.Errorf("bad credits metadata %q", sess.Metadata["credits"])
		}
		if err := s.profiles.GrantCredits(ctx, userID, credits); err != nil {
			return fmt.Errorf("grant credits: %w", err)
		}
	case KindSubscription:
		if sess.Subscription != "" {
			if err := s.profiles.SyncSubscription(ctx, userID, sess.Subscription, "active", "", nil); err != nil {
				return fmt.Errorf("record subscription: %w", err)
			}
		}
	}
	return nil
}

func (s *Service) applyInvoicePaid(ctx context.Context, payload []byte) error {
	var inv struct {
		Customer string `json:"customer"`
		Lines    struct {
			Data []struct {
				Price struct {
					ID string `json:"id"`
				} `json:"price"`
				Period struct {
					End int64 `json:"end"`
				} `json:"period"`
			} `json:"data"`
		} `json:"lines"`
	}
	if err := json.Unmarshal(payload, &inv); err != nil {
		return fmt.Errorf("parse invoice: %w", err)
	}
	if inv.Customer == "" || len(inv.Lines.Data) == 0 {
		return nil
	}

	p, err := s.profiles.FindByStripeCustomer(ctx, inv.Customer)
	if err != nil {
		return fmt.Errorf("find profile for customer %s: %w", inv.Customer, err)
	}

	line := inv.Lines.Data[0]
	credits, ok := s.planCredits[line.Price.ID]
	if !ok {
		// not a subscription plan invoice, nothing to grant
		return nil
	}

	if err := s.profiles.GrantCredits(ctx, p.UserID, credits); err != nil {
		return fmt.Errorf("grant plan credits: %w", err)
	}
	if line.Period.End > 0 {
		end := time.Unix(line.Period.End, 0).UTC()
		if err := s.profiles.SyncSubscription(ctx, p.UserID, "", "active", line.Price.ID, &end); err != nil {
			return fmt.Errorf("update period end: %w", err)
		}
	}
	return nil
}

func (s *Service) applySubscriptionUpdated(ctx context.Context, payload []byte) error {
	var sub struct {
		ID               string `json:"id"`
		Customer         string `json:"customer"`
		Status           string `json:"status"`
		CurrentPeriodEnd int64  `json:"current_period_end"`
		Items            struct {
			Data []struct {
				Price struct {
					ID string `json:"id"`
				} `json:"price"`
			} `json:"data"`
		} `json:"items"`
	}
	if err := json.Unmarshal(payload, &sub); err != nil {
		return fmt.Errorf("parse subscription: %w", err)
	}
	if sub.Customer == "" {
		return nil
	}

	p, err := s.profiles.FindByStripeCustomer(ctx, sub.Customer)
	if err != nil {
		return fmt.Errorf("find profile for customer %s: %w", sub.Customer, err)
	}

	priceID := ""
	if len(sub.Items.Data) > 0 {
		priceID = sub.Items.Data[0].Price.ID
	}
	var end *time.Time
	if sub.CurrentPeriodEnd > 0 {
		t := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
		end = &t
	}
	return s.profiles.SyncSubscription(ctx, p.UserID, sub.ID, sub.Status, priceID, end)
}

func (s *Service) applySubscriptionDeleted(ctx context.Context, payload []byte) error {
	var sub struct {
		Customer string `json:"customer"`
	}
	if err := json.Unmarshal(payload, &sub); err != nil {
		return fmt.Errorf("parse subscription: %w", err)
	}
	if sub.Customer == "" {
		return nil
	}

	p, err := s.profiles.FindByStripeCustomer(ctx, sub.Customer)
	if err != nil {
		return fmt.Errorf("find profile for customer %s: %w", sub.Customer, err)
	}
	return s.profiles.ClearSubscription(ctx, p.UserID)
}
