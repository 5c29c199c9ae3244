package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/joseph-ayodele/orders-tracker/internal/mail"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	msg := &mail.Message{
		ID:      "m1",
		Subject: "Your order was successfully delivered",
		From:    "Swiggy <noreply@swiggy.in>",
		Date:    "Mon, 3 Mar 2025 14:00:00 +0530",
		Body:    "<html>₹350.00</html>",
	}
	if err := s.Put(ctx, msg); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := s.Get(ctx, "m1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if *got != *msg {
		t.Fatalf("round trip mismatch: %+v != %+v", got, msg)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)
	if _, ok, err := s.Get(context.Background(), "nope"); ok || err != nil {
		t.Fatalf("missing id: ok=%v err=%v", ok, err)
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, &mail.Message{ID: "m1", Body: "old"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, &mail.Message{ID: "m1", Body: "new"}); err != nil {
		t.Fatalf("second put: %v", err)
	}
	got, ok, err := s.Get(ctx, "m1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Body != "new" {
		t.Fatalf("body = %q, want the overwritten value", got.Body)
	}
}
