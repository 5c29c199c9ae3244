// Package mail defines the provider boundary: an ordered source of
// opaque messages, plus the filtering, retry, and caching layers that
// sit between a concrete provider and the pipeline.
package mail

import "context"

// Message is one resolved email. Body is the provider's chosen payload:
// HTML preferred over plain text when both parts exist.
type Message struct {
	ID      string
	Subject string
	From    string
	Date    string
	Body    string
}

// Provider yields an ordered sequence of message IDs and resolves each
// to a full message.
type Provider interface {
	ListIDs(ctx context.Context) ([]string, error)
	Fetch(ctx context.Context, id string) (*Message, error)
}

// BodyStore is the read-through cache a CachingProvider consults before
// going back to the upstream provider.
type BodyStore interface {
	Get(ctx context.Context, id string) (*Message, bool, error)
	Put(ctx context.Context, msg *Message) error
}
