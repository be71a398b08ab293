// Package shortener turns original URLs into unique short codes and back.
package shortener

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yapcheekian/shortcode/models"
	"github.com/Yapcheekian/shortcode/storage"
	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyURL           = errors.New("original url is empty")
	ErrCodeSpaceExhausted = errors.New("no free short code found")
)

// IDGenerator hands out record identifiers. *snowflake.Node implements it.
type IDGenerator interface {
	Generate() snowflake.ID
}

type Service struct {
	store       storage.Store
	codes       *Generator
	ids         IDGenerator
	maxAttempts int
}

// NewService wires a Service. maxAttempts bounds the number of codes tried
// per request; zero means no bound.
func NewService(store storage.Store, codes *Generator, ids IDGenerator, maxAttempts int) *Service {
	return &Service{
		store:       store,
		codes:       codes,
		ids:         ids,
		maxAttempts: maxAttempts,
	}
}

// Shorten stores originalURL under a freshly generated code. Every call
// creates a new mapping, even for a URL that was shortened before.
func (s *Service) Shorten(ctx context.Context, originalURL string) (models.URL, error) {
	if originalURL == "" {
		return models.URL{}, ErrEmptyURL
	}

	for attempt := 1; s.maxAttempts == 0 || attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return models.URL{}, err
		}

		code, err := s.codes.Next()
		if err != nil {
			return models.URL{}, fmt.Errorf("generate code: %w", err)
		}

		url := models.URL{
			ID:          int64(s.ids.Generate()),
			ShortCode:   code,
			OriginalURL: originalURL,
		}

		err = s.store.Create(ctx, &url)
		if errors.Is(err, storage.ErrCodeTaken) {
			log.Debug().Str("code", code).Int("attempt", attempt).Msg("short code collision")
			continue
		}
		if err != nil {
			return models.URL{}, fmt.Errorf("store mapping: %w", err)
		}

		return url, nil
	}

	return models.URL{}, ErrCodeSpaceExhausted
}

// Resolve returns the mapping for code, or storage.ErrNotFound.
func (s *Service) Resolve(ctx context.Context, code string) (models.URL, error) {
	return s.store.GetByCode(ctx, code)
}
