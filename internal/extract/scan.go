package extract

import "strings"

// findLabel reports whether line anchors the rule and, for contains-style
// labels, returns the remainder of the line after the label text.
func findLabel(line string, r Rule) (rest string, ok bool) {
	for _, label := range r.Labels {
		if r.Exact {
			if line == label {
				return "", true
			}
			continue
		}
		if i := strings.Index(line, label); i >= 0 {
			return strings.TrimSpace(line[i+len(label):]), true
		}
	}
	return "", false
}

// scanWindow locates the first line anchoring the rule and feeds
// candidate lines to accept until one is taken: first the remainder of
// the label line itself (templates put the value on the same line), then
// up to Window following lines (all remaining lines when Window < 0).
// Only the first anchor is considered; a miss within its window is a
// miss for the whole rule.
func scanWindow(lines []string, r Rule, accept func(candidate string) bool) {
	for i, line := range lines {
		rest, ok := findLabel(line, r)
		if !ok {
			continue
		}
		if rest != "" && accept(rest) {
			return
		}
		end := len(lines)
		if r.Window >= 0 && i+1+r.Window < end {
			end = i + 1 + r.Window
		}
		for _, candidate := range lines[i+1 : end] {
			if accept(candidate) {
				return
			}
		}
		return
	}
}

func containsAny(line string, labels []string) bool {
	for _, label := range labels {
		if strings.Contains(line, label) {
			return true
		}
	}
	return false
}
