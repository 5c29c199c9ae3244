package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/joseph-ayodele/orders-tracker/internal/extract"
	"github.com/joseph-ayodele/orders-tracker/internal/mail"
)

const goodBody = `Restaurant
Spice Hub
Order placed at:
Monday, March 3, 2025 1:00 PM
Order delivered at:
Monday, March 3, 2025 1:40 PM
Order Total:
₹350.00`

type fakeProvider struct {
	order    []string
	messages map[string]*mail.Message
	errs     map[string]error
	listErr  error
}

func (p *fakeProvider) ListIDs(context.Context) ([]string, error) {
	return p.order, p.listErr
}

func (p *fakeProvider) Fetch(_ context.Context, id string) (*mail.Message, error) {
	if err := p.errs[id]; err != nil {
		return nil, err
	}
	return p.messages[id], nil
}

func orderMessage(id, body string) *mail.Message {
	return &mail.Message{
		ID:      id,
		Subject: "Your order was successfully delivered",
		From:    "Swiggy <noreply@swiggy.in>",
		Date:    "Mon, 3 Mar 2025 14:00:00 +0530",
		Body:    body,
	}
}

func newTestPipeline(p mail.Provider) *Pipeline {
	parser := extract.NewParser(nil, extract.DefaultRules(2))
	filter := mail.NewMarkerFilter("noreply@swiggy.in", nil, 3)
	return New(nil, p, filter, parser)
}

func TestRun_MixedOutcomes(t *testing.T) {
	promo := orderMessage("m3", "Get 50% off your next order!")
	promo.From = "offers@swiggy.in"

	provider := &fakeProvider{
		order: []string{"m1", "m2", "m3", "m4", "m5"},
		messages: map[string]*mail.Message{
			"m1": orderMessage("m1", goodBody),
			"m2": orderMessage("m2", strings.Replace(goodBody, "Order Total:\n₹350.00", "thanks for ordering", 1)),
			"m3": promo,
			"m5": orderMessage("m5", ""),
		},
		errs: map[string]error{"m4": errors.New("permanent: not found")},
	}

	res, err := newTestPipeline(provider).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.Stats.Processed != 5 || res.Stats.Succeeded != 1 || res.Stats.Skipped != 1 || res.Stats.Failed != 3 {
		t.Fatalf("stats = %+v", res.Stats)
	}
	if len(res.Records) != 1 || res.Records[0].EmailID != "m1" {
		t.Fatalf("records = %+v", res.Records)
	}
	if res.Records[0].RestaurantName != "Spice Hub" {
		t.Fatalf("record = %+v", res.Records[0])
	}
	if got := res.Stats.SuccessRate(); got != 0.2 {
		t.Fatalf("success rate = %v, want 0.2", got)
	}

	reasons := map[string]string{}
	for _, f := range res.Failures {
		reasons[f.EmailID] = f.Reason
	}
	if !strings.Contains(reasons["m2"], "missing required fields") {
		t.Fatalf("m2 reason = %q", reasons["m2"])
	}
	if !strings.Contains(reasons["m4"], "fetch") {
		t.Fatalf("m4 reason = %q", reasons["m4"])
	}
	if reasons["m5"] != "missing body" {
		t.Fatalf("m5 reason = %q", reasons["m5"])
	}
}

func TestRun_FailuresCarryContext(t *testing.T) {
	provider := &fakeProvider{
		order: []string{"m2"},
		messages: map[string]*mail.Message{
			"m2": orderMessage("m2", strings.Replace(goodBody, "Order Total:\n₹350.00", "thanks for ordering", 1)),
		},
	}
	res, err := newTestPipeline(provider).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Failures) != 1 {
		t.Fatalf("failures = %+v", res.Failures)
	}
	f := res.Failures[0]
	if f.EmailID != "m2" || f.Subject == "" || f.Date == "" {
		t.Fatalf("failure should carry identifying context: %+v", f)
	}
}

func TestRun_ListFailureAbortsRun(t *testing.T) {
	provider := &fakeProvider{listErr: errors.New("auth expired")}
	if _, err := newTestPipeline(provider).Run(context.Background()); err == nil {
		t.Fatal("expected run error when listing fails")
	}
}

func TestRun_EmptyInbox(t *testing.T) {
	res, err := newTestPipeline(&fakeProvider{}).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Stats.Processed != 0 || len(res.Records) != 0 || res.Stats.SuccessRate() != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
