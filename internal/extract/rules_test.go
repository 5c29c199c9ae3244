package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write rules file: %v", err)
	}
	return path
}

func TestLoadRules_OverlaysDefaults(t *testing.T) {
	path := writeRules(t, `{
		"total": {"labels": ["Grand Total:"], "window": 4},
		"deny_list": ["Order", "Promo"]
	}`)

	rules, err := LoadRules(path, 2)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if len(rules.Total.Labels) != 1 || rules.Total.Labels[0] != "Grand Total:" {
		t.Fatalf("total labels = %v", rules.Total.Labels)
	}
	if rules.Total.Window != 4 {
		t.Fatalf("total window = %d, want 4", rules.Total.Window)
	}
	if len(rules.DenyList) != 2 {
		t.Fatalf("deny list = %v", rules.DenyList)
	}
	// untouched rules keep their defaults
	if rules.OrderTime.Window != 2 || len(rules.OrderTime.Labels) != 1 {
		t.Fatalf("order_time rule should keep defaults, got %+v", rules.OrderTime)
	}
	if rules.Restaurant.Window != -1 || !rules.Restaurant.Exact {
		t.Fatalf("restaurant rule should keep defaults, got %+v", rules.Restaurant)
	}
}

func TestLoadRules_RejectsUnknownKeys(t *testing.T) {
	path := writeRules(t, `{"totals": {"labels": ["x"]}}`)
	if _, err := LoadRules(path, 2); err == nil {
		t.Fatal("expected schema rejection for unknown key")
	}
}

func TestLoadRules_RejectsWrongTypes(t *testing.T) {
	path := writeRules(t, `{"total": {"labels": "Grand Total:"}}`)
	if _, err := LoadRules(path, 2); err == nil {
		t.Fatal("expected schema rejection for non-array labels")
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "nope.json"), 2); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultRules_WindowParameter(t *testing.T) {
	rules := DefaultRules(5)
	if rules.OrderTime.Window != 5 || rules.Total.Window != 5 || rules.Discount.Window != 5 {
		t.Fatalf("window parameter not applied: %+v", rules)
	}
	if rules.Restaurant.Window != -1 {
		t.Fatal("restaurant scan should stay unbounded")
	}
}
