package billing

import (
	"context"
	"log"
	"time"
)

type Worker struct {
	events  EventRepository
	service *Service
}

func NewWorker(events EventRepository, service *Service) *Worker {
	return &Worker{events: events, service: service}
}

// ProcessOne picks ONE pending billing event and applies it safely
func (w *Worker) ProcessOne(ctx context.Context) error {
	e, err := w.events.FetchPending(ctx)
	if err != nil || e == nil {
		// No pending events is NOT an error
		return nil
	}

	log.Printf("BILLING_EVENT id=%d type=%s stripe_id=%s", e.ID, e.Type, e.StripeEventID)

	if err := w.service.Apply(ctx, e); err != nil {
		log.Printf("BILLING_FAILED id=%d type=%s err=%v", e.ID, e.Type, err)
		_ = w.events.MarkFailed(ctx, e.ID, err.Error())
		return nil // do NOT block worker
	}

	log.Printf("BILLING_DONE id=%d type=%s", e.ID, e.Type)
	return w.events.MarkProcessed(ctx, e.ID)
}

// Run processes billing events indefinitely on a 2 second ticker.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.ProcessOne(ctx); err != nil {
				log.Printf("billing worker error: %v", err)
			}
		}
	}
}

// Start launches the worker loop in the background.
func Start(w *Worker) {
	go func() {
		log.Println("Billing worker started")
		w.Run(context.Background())
	}()
}
