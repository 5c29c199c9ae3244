package extract

import (
	"strings"
	"time"
)

// TimestampLayout is the only timestamp grammar the extractor accepts,
// e.g. "Monday, March 3, 2025 2:45 PM". Full weekday, full month,
// 12-hour clock with AM/PM.
const TimestampLayout = "Monday, January 2, 2006 3:04 PM"

// ParseTimestamp parses the delivery-email timestamp grammar. Anything
// that does not match the exact grammar yields no value rather than an
// error; the caller moves on to the next candidate line.
func ParseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(TimestampLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
