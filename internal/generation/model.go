package generation

import (
	"time"

	"github.com/rogulenkoko/MenuCraft-sub000/internal/llm"
)

// Generation is one AI design run: the source menu text, the chosen
// style, and the HTML variants the model produced.
type Generation struct {
	ID           string          `json:"id"`
	UserID       string          `json:"-"`
	RestaurantID *string         `json:"restaurant_id,omitempty"`
	DocumentID   *string         `json:"document_id,omitempty"`
	MenuName     string          `json:"menu_name"`
	SourceText   string          `json:"-"`
	Style        llm.StyleParams `json:"style"`
	HTMLVariants []string        `json:"-"`
	DesignURLs   []string        `json:"design_urls,omitempty"`
	Status       string          `json:"status"`
	Error        *string         `json:"error,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

const (
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Summary is the list-view projection (no HTML payloads).
type Summary struct {
	ID           string    `json:"id"`
	MenuName     string    `json:"menu_name"`
	Status       string    `json:"status"`
	VariantCount int       `json:"variant_count"`
	CreatedAt    time.Time `json:"created_at"`
}
