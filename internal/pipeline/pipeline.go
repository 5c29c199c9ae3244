// Package pipeline sequences fetch → filter → extract → validate over
// the provider's messages, one at a time. No single item's failure
// aborts a run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orders-tracker/constants"
	"github.com/joseph-ayodele/orders-tracker/internal/common"
	"github.com/joseph-ayodele/orders-tracker/internal/entity"
	"github.com/joseph-ayodele/orders-tracker/internal/extract"
	"github.com/joseph-ayodele/orders-tracker/internal/mail"
)

// Failure captures enough context about a failed message for diagnosis.
type Failure struct {
	EmailID string
	Subject string
	Date    string
	Status  constants.ItemStatus
	Reason  string
}

// Stats summarizes a run.
type Stats struct {
	Processed int
	Succeeded int
	Skipped   int
	Failed    int
}

func (s Stats) SuccessRate() float64 {
	if s.Processed == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Processed)
}

// Result is the outcome of one run: the ordered valid records plus the
// failure list and aggregate counts.
type Result struct {
	Records  []entity.OrderRecord
	Failures []Failure
	Stats    Stats
}

func (r *Result) fail(f Failure) {
	r.Stats.Failed++
	r.Failures = append(r.Failures, f)
}

type Pipeline struct {
	logger   *slog.Logger
	provider mail.Provider
	filter   *mail.MarkerFilter
	parser   *extract.Parser
}

func New(logger *slog.Logger, provider mail.Provider, filter *mail.MarkerFilter, parser *extract.Parser) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger, provider: provider, filter: filter, parser: parser}
}

// Run processes every message the provider lists. The returned error is
// non-nil only when the listing itself fails; everything downstream is
// per-item and lands in the Result.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	runID := uuid.New()
	ids, err := p.provider.ListIDs(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list messages")
	}
	p.logger.Info("pipeline.run.start", "run_id", runID, "messages", len(ids))

	res := &Result{}
	for _, id := range ids {
		res.Stats.Processed++

		msg, err := p.provider.Fetch(ctx, id)
		if err != nil {
			p.logger.Error("pipeline.fetch.failed", "run_id", runID, "id", id, "err", err)
			res.fail(Failure{EmailID: id, Status: constants.ItemRejected, Reason: fmt.Sprintf("fetch: %v", err)})
			continue
		}
		if msg.Body == "" {
			p.logger.Warn("pipeline.fetch.empty_body", "run_id", runID, "id", id, "subject", msg.Subject)
			res.fail(Failure{EmailID: id, Subject: msg.Subject, Date: msg.Date, Status: constants.ItemRejected, Reason: "missing body"})
			continue
		}
		if p.filter != nil && !p.filter.Matches(msg) {
			res.Stats.Skipped++
			p.logger.Debug("pipeline.filter.skipped", "run_id", runID, "id", id, "subject", msg.Subject)
			continue
		}

		rec, err := p.parser.Parse(msg.Body, msg.ID)
		if err != nil {
			p.logger.Warn("pipeline.extract.rejected", "run_id", runID, "id", id, "subject", msg.Subject, "err", err)
			res.fail(Failure{EmailID: id, Subject: msg.Subject, Date: msg.Date, Status: constants.ItemRejected, Reason: err.Error()})
			continue
		}
		res.Records = append(res.Records, *rec)
		res.Stats.Succeeded++
	}

	p.logger.Info("pipeline.run.done",
		"run_id", runID,
		"processed", res.Stats.Processed,
		"succeeded", res.Stats.Succeeded,
		"skipped", res.Stats.Skipped,
		"failed", res.Stats.Failed,
		"success_rate", res.Stats.SuccessRate(),
	)
	return res, nil
}
