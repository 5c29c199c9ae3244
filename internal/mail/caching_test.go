package mail

import (
	"context"
	"errors"
	"testing"
)

type mapStore struct {
	msgs map[string]*Message
	fail bool
}

func (s *mapStore) Get(_ context.Context, id string) (*Message, bool, error) {
	if s.fail {
		return nil, false, errors.New("cache unavailable")
	}
	msg, ok := s.msgs[id]
	return msg, ok, nil
}

func (s *mapStore) Put(_ context.Context, msg *Message) error {
	if s.fail {
		return errors.New("cache unavailable")
	}
	s.msgs[msg.ID] = msg
	return nil
}

type countingProvider struct {
	calls int
}

func (p *countingProvider) ListIDs(context.Context) ([]string, error) {
	return []string{"m1"}, nil
}

func (p *countingProvider) Fetch(_ context.Context, id string) (*Message, error) {
	p.calls++
	return &Message{ID: id, Body: "fresh"}, nil
}

func TestCachingProvider_SecondFetchHitsCache(t *testing.T) {
	inner := &countingProvider{}
	store := &mapStore{msgs: map[string]*Message{}}
	p := NewCachingProvider(inner, store, nil)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		msg, err := p.Fetch(ctx, "m1")
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		if msg.Body != "fresh" {
			t.Fatalf("fetch %d: body = %q", i, msg.Body)
		}
	}
	if inner.calls != 1 {
		t.Fatalf("inner calls = %d, want 1", inner.calls)
	}
}

func TestCachingProvider_StoreErrorsDegradeToFetch(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachingProvider(inner, &mapStore{fail: true}, nil)

	msg, err := p.Fetch(context.Background(), "m1")
	if err != nil || msg.Body != "fresh" {
		t.Fatalf("cache failure must not fail the fetch: msg=%+v err=%v", msg, err)
	}
	if inner.calls != 1 {
		t.Fatalf("inner calls = %d, want 1", inner.calls)
	}
}
