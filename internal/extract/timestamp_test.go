package extract

import "testing"

func TestParseTimestamp_ExactGrammar(t *testing.T) {
	ts, ok := ParseTimestamp("Monday, March 3, 2025 2:45 PM")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if ts.Year() != 2025 || ts.Month() != 3 || ts.Day() != 3 {
		t.Fatalf("unexpected date: %v", ts)
	}
	if ts.Hour() != 14 || ts.Minute() != 45 {
		t.Fatalf("expected 14:45, got %02d:%02d", ts.Hour(), ts.Minute())
	}
}

func TestParseTimestamp_TrimsWhitespace(t *testing.T) {
	if _, ok := ParseTimestamp("  Monday, March 3, 2025 1:00 PM  "); !ok {
		t.Fatal("surrounding whitespace should not matter")
	}
}

func TestParseTimestamp_NoValue(t *testing.T) {
	cases := []string{
		"March 3, 2025 2:45 PM",       // missing weekday
		"Monday, March 3, 2025 14:45", // 24-hour clock
		"Mon, March 3, 2025 2:45 PM",  // abbreviated weekday
		"Monday, Mar 3, 2025 2:45 PM", // abbreviated month
		"Order placed at:",            // label noise
		"",
	}
	for _, c := range cases {
		if _, ok := ParseTimestamp(c); ok {
			t.Fatalf("expected no value for %q", c)
		}
	}
}
