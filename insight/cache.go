package insight

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// MarketCache keeps the latest market summary so handlers never wait on the
// provider. A cron schedule refreshes it in the background.
type MarketCache struct {
	mu        sync.RWMutex
	provider  Provider
	text      string
	updatedAt time.Time
	cron      *cron.Cron
}

func NewMarketCache(provider Provider) *MarketCache {
	return &MarketCache{provider: provider}
}

// Summary returns the cached text, fetching synchronously only when the
// cache has never been filled.
func (m *MarketCache) Summary(ctx context.Context) (string, time.Time) {
	m.mu.RLock()
	text, at := m.text, m.updatedAt
	m.mu.RUnlock()
	if text != "" {
		return text, at
	}
	m.Refresh(ctx)
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text, m.updatedAt
}

// Refresh fetches a new summary. The provider is expected to be wrapped
// with WithFallback, so the cache always ends up with something to serve.
func (m *MarketCache) Refresh(ctx context.Context) {
	text, err := m.provider.MarketSummary(ctx)
	if err != nil {
		log.Printf("[insight] market summary refresh failed: %v", err)
		text = FallbackMarket
	}
	m.mu.Lock()
	m.text = text
	m.updatedAt = time.Now()
	m.mu.Unlock()
}

// Start warms the cache and schedules periodic refreshes using a cron spec
// such as "@hourly".
func (m *MarketCache) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		m.Refresh(ctx)
	}); err != nil {
		return err
	}
	c.Start()
	m.cron = c

	// Warm the cache off the startup path.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		m.Refresh(ctx)
	}()
	return nil
}

func (m *MarketCache) Stop() {
	if m.cron != nil {
		m.cron.Stop()
	}
}
