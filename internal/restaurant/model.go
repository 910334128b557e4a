package restaurant

import "time"

type Restaurant struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"-"`
	Name             string    `json:"name"`
	City             string    `json:"city"`
	CuisineType      string    `json:"cuisine_type"`
	ShortDescription string    `json:"short_description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
