package document

import "time"

// MenuDocument is one uploaded menu file and the text scraped out of it.
type MenuDocument struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"`
	Filename      string    `json:"filename"`
	ContentType   string    `json:"content_type"`
	ObjectKey     string    `json:"-"`
	ExtractedText string    `json:"extracted_text"`
	CharCount     int       `json:"char_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// MaxUploadBytes caps menu uploads at 10MB.
const MaxUploadBytes = 10 << 20
