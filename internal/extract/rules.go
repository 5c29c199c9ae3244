package extract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joseph-ayodele/orders-tracker/constants"
)

// Rule anchors one field: a line matching any of Labels starts the scan,
// and the acceptance predicate sees the remainder of the label line plus
// up to Window following lines. Window < 0 means the remaining lines.
type Rule struct {
	Labels []string `json:"labels"`
	Exact  bool     `json:"exact,omitempty"` // label line must equal the label, not just contain it
	Window int      `json:"window"`
}

// Rules is the declarative marker-scan table driving the extractor.
// It can be overridden from a JSON file validated against RulesSchema.
type Rules struct {
	Restaurant     Rule     `json:"restaurant"`
	OrderTime      Rule     `json:"order_time"`
	DeliveryTime   Rule     `json:"delivery_time"`
	Total          Rule     `json:"total"`
	Discount       Rule     `json:"discount"`
	DenyList       []string `json:"deny_list"`
	FallbackLabels []string `json:"fallback_labels"`
}

// DefaultRules returns the built-in table. window bounds the forward
// scan for the timestamp and amount fields; the restaurant name scans
// the remaining lines, as the templates put it an unpredictable number
// of boilerplate lines below its label.
func DefaultRules(window int) Rules {
	if window < 0 {
		window = 2
	}
	return Rules{
		Restaurant:   Rule{Labels: []string{constants.LabelRestaurant}, Exact: true, Window: -1},
		OrderTime:    Rule{Labels: []string{constants.LabelOrderPlaced}, Window: window},
		DeliveryTime: Rule{Labels: []string{constants.LabelDelivered}, Window: window},
		Total:        Rule{Labels: []string{constants.LabelOrderTotal, constants.LabelPaidVia}, Window: window},
		Discount:     Rule{Labels: []string{constants.LabelDiscount}, Window: window},
		DenyList:     constants.RestaurantDenyList,
		FallbackLabels: []string{
			constants.LabelOrderTotal,
			constants.LabelPaidVia,
			constants.LabelTotalPayable,
		},
	}
}

// LoadRules reads a JSON rules file, validates it against the schema,
// and overlays it on the defaults: fields absent from the file keep
// their default values.
func LoadRules(path string, window int) (Rules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file: %w", err)
	}
	if err := ValidateJSONAgainstSchema(RulesSchema(), raw); err != nil {
		return Rules{}, fmt.Errorf("rules file %s: %w", path, err)
	}
	rules := DefaultRules(window)
	if err := json.Unmarshal(raw, &rules); err != nil {
		return Rules{}, fmt.Errorf("decode rules file: %w", err)
	}
	return rules, nil
}

// RulesSchema returns a JSON-Schema (draft 2020-12 subset) describing
// the rules-file shape, as a generic map.
func RulesSchema() map[string]any {
	ruleProp := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"labels": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": 1,
			},
			"exact":  map[string]any{"type": "boolean"},
			"window": map[string]any{"type": "integer", "minimum": -1},
		},
	}
	stringList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"restaurant":      ruleProp,
			"order_time":      ruleProp,
			"delivery_time":   ruleProp,
			"total":           ruleProp,
			"discount":        ruleProp,
			"deny_list":       stringList,
			"fallback_labels": stringList,
		},
	}
}
