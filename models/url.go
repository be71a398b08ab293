package models

import "time"

// URL is a persisted mapping between an original URL and its short code.
type URL struct {
	ID          int64     `db:"id"`
	ShortCode   string    `db:"short_code"`
	OriginalURL string    `db:"original_url"`
	CreatedAt   time.Time `db:"created_at"`
}
