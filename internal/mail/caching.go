package mail

import (
	"context"
	"log/slog"
)

// CachingProvider consults a BodyStore before delegating a fetch, and
// stores successful fetches. Reruns of the pipeline regenerate the full
// dataset without hitting provider rate limits for bodies already seen.
// Cache errors degrade to a plain fetch; they never fail the item.
type CachingProvider struct {
	inner  Provider
	store  BodyStore
	logger *slog.Logger
}

func NewCachingProvider(inner Provider, store BodyStore, logger *slog.Logger) *CachingProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachingProvider{inner: inner, store: store, logger: logger}
}

func (p *CachingProvider) ListIDs(ctx context.Context) ([]string, error) {
	return p.inner.ListIDs(ctx)
}

func (p *CachingProvider) Fetch(ctx context.Context, id string) (*Message, error) {
	msg, ok, err := p.store.Get(ctx, id)
	if err != nil {
		p.logger.Warn("mail.cache.get_failed", "id", id, "err", err)
	} else if ok {
		return msg, nil
	}

	msg, err = p.inner.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.store.Put(ctx, msg); err != nil {
		p.logger.Warn("mail.cache.put_failed", "id", id, "err", err)
	}
	return msg, nil
}
