// Package storage persists short code mappings.
package storage

import (
	"context"
	"errors"

	"github.com/Yapcheekian/shortcode/models"
)

var (
	// ErrNotFound is returned when no mapping exists for a code.
	ErrNotFound = errors.New("mapping not found")
	// ErrCodeTaken is returned by Create when the short code is already stored.
	ErrCodeTaken = errors.New("short code already taken")
)

// Store saves and resolves mappings. Create must be atomic with respect to
// the short code: of two concurrent inserts with the same code, exactly one
// succeeds and the other gets ErrCodeTaken.
type Store interface {
	Create(ctx context.Context, url *models.URL) error
	GetByCode(ctx context.Context, code string) (models.URL, error)
}
