package mail

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/joseph-ayodele/orders-tracker/internal/common"
)

// RetryingProvider wraps Fetch with bounded exponential backoff for
// transient failures (rate limits, provider 5xx). Exhausting the retry
// budget surfaces as an ordinary fetch error, which the pipeline demotes
// to a per-item failure. ListIDs is delegated untouched.
type RetryingProvider struct {
	inner      Provider
	maxRetries uint64
	initial    time.Duration
	logger     *slog.Logger
}

func NewRetryingProvider(inner Provider, maxRetries uint64, initial time.Duration, logger *slog.Logger) *RetryingProvider {
	if logger == nil {
		logger = slog.Default()
	}
	if initial <= 0 {
		initial = 500 * time.Millisecond
	}
	return &RetryingProvider{inner: inner, maxRetries: maxRetries, initial: initial, logger: logger}
}

func (p *RetryingProvider) ListIDs(ctx context.Context) ([]string, error) {
	return p.inner.ListIDs(ctx)
}

func (p *RetryingProvider) Fetch(ctx context.Context, id string) (*Message, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.initial

	var msg *Message
	op := func() error {
		m, err := p.inner.Fetch(ctx, id)
		if err != nil {
			if !errors.Is(err, common.ErrRateLimited) {
				return backoff.Permanent(err)
			}
			p.logger.Warn("mail.fetch.retrying", "id", id, "err", err)
			return err
		}
		msg = m
		return nil
	}
	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, p.maxRetries), ctx))
	if err != nil {
		return nil, err
	}
	return msg, nil
}
