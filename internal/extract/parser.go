// Package extract turns normalized email text lines into validated
// order records via a declarative table of marker-anchored scans.
package extract

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/orders-tracker/constants"
	"github.com/joseph-ayodele/orders-tracker/internal/entity"
	"github.com/joseph-ayodele/orders-tracker/internal/htmltext"
)

// Fields holds the raw per-field extraction results before validation.
// Optional values stay nil/zero; only Validate builds an OrderRecord.
type Fields struct {
	RestaurantName string
	OrderTime      *time.Time
	DeliveryTime   *time.Time
	Total          *decimal.Decimal
	Discount       decimal.Decimal
}

// Parser runs the marker-scan table over a message body. It never fails
// on malformed input: field-level misses resolve to "no value" and the
// validator rejects incomplete extractions.
type Parser struct {
	logger *slog.Logger
	rules  Rules
	deny   map[string]struct{}
}

func NewParser(logger *slog.Logger, rules Rules) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	deny := make(map[string]struct{}, len(rules.DenyList))
	for _, d := range rules.DenyList {
		deny[d] = struct{}{}
	}
	return &Parser{logger: logger, rules: rules, deny: deny}
}

// Parse normalizes body to text lines, extracts all fields, and
// validates. The returned error is always a *RejectionError.
func (p *Parser) Parse(body, emailID string) (*entity.OrderRecord, error) {
	lines := htmltext.Lines(body)
	fields := p.ExtractFields(lines)
	rec, err := Validate(fields, emailID)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("extract.record.ok",
		"email_id", emailID,
		"restaurant", rec.RestaurantName,
		"total", rec.TotalAmount,
		"duration_mins", rec.DeliveryDurationMins,
	)
	return rec, nil
}

// ExtractFields runs every field extractor over the line sequence.
func (p *Parser) ExtractFields(lines []string) Fields {
	return Fields{
		RestaurantName: p.restaurant(lines),
		OrderTime:      p.timestamp(lines, p.rules.OrderTime),
		DeliveryTime:   p.timestamp(lines, p.rules.DeliveryTime),
		Total:          p.total(lines),
		Discount:       p.discount(lines),
	}
}

func (p *Parser) restaurant(lines []string) string {
	var name string
	scanWindow(lines, p.rules.Restaurant, func(candidate string) bool {
		if _, boilerplate := p.deny[candidate]; boilerplate {
			return false
		}
		name = candidate
		return true
	})
	return name
}

func (p *Parser) timestamp(lines []string, r Rule) *time.Time {
	var out *time.Time
	scanWindow(lines, r, func(candidate string) bool {
		t, ok := ParseTimestamp(candidate)
		if !ok {
			return false
		}
		out = &t
		return true
	})
	return out
}

func (p *Parser) total(lines []string) *decimal.Decimal {
	var out *decimal.Decimal
	scanWindow(lines, p.rules.Total, func(candidate string) bool {
		if !containsCurrency(candidate) {
			return false
		}
		d := ParseAmount(candidate)
		if !d.IsPositive() {
			return false
		}
		out = &d
		return true
	})
	if out == nil {
		out = p.totalFallback(lines)
	}
	return out
}

var reAmountToken = regexp.MustCompile(
	regexp.QuoteMeta(constants.CurrencySymbol) + `\s*[0-9][0-9,]*(?:\.[0-9]{2})?`)

// totalFallback is the looser secondary pass: any line carrying one of
// the fallback labels yields its first currency-formatted token,
// regardless of window constraints. Runs only after the primary scan
// comes up empty and never overrides a primary match.
func (p *Parser) totalFallback(lines []string) *decimal.Decimal {
	for _, line := range lines {
		if !containsAny(line, p.rules.FallbackLabels) {
			continue
		}
		token := reAmountToken.FindString(line)
		if token == "" {
			continue
		}
		d := ParseAmount(token)
		return &d
	}
	return nil
}

func (p *Parser) discount(lines []string) decimal.Decimal {
	out := decimal.Zero
	scanWindow(lines, p.rules.Discount, func(candidate string) bool {
		if !containsCurrency(candidate) || !containsMinus(candidate) {
			return false
		}
		out = ParseAmount(candidate)
		return true
	})
	return out
}

func containsCurrency(line string) bool {
	return strings.Contains(line, constants.CurrencySymbol)
}

func containsMinus(line string) bool {
	return strings.Contains(line, "-")
}
