package storage

import (
	"context"
	"sync"
	"time"

	"github.com/Yapcheekian/shortcode/models"
)

// Memory keeps mappings in a map. It is used when no database is configured.
type Memory struct {
	mu   sync.RWMutex
	urls map[string]models.URL
}

func NewMemory() *Memory {
	return &Memory{
		urls: make(map[string]models.URL),
	}
}

func (m *Memory) Create(_ context.Context, url *models.URL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.urls[url.ShortCode]; ok {
		return ErrCodeTaken
	}

	url.CreatedAt = time.Now()
	m.urls[url.ShortCode] = *url
	return nil
}

func (m *Memory) GetByCode(_ context.Context, code string) (models.URL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	url, ok := m.urls[code]
	if !ok {
		return models.URL{}, ErrNotFound
	}
	return url, nil
}

// Len reports how many mappings are stored.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.urls)
}
