package mail

import (
	"strings"

	"github.com/joseph-ayodele/orders-tracker/constants"
)

// MarkerFilter is the provider-boundary validity check: the sender must
// match and at least MinMarkers of the configured content markers must
// appear in the body before a message is handed to the extraction
// engine. Non-matching messages are skipped, not failed.
type MarkerFilter struct {
	Sender     string
	Markers    []string
	MinMarkers int
}

func NewMarkerFilter(sender string, markers []string, minMarkers int) *MarkerFilter {
	if len(markers) == 0 {
		markers = constants.DefaultContentMarkers
	}
	if minMarkers <= 0 {
		minMarkers = constants.DefaultMinContentMarkers
	}
	return &MarkerFilter{Sender: sender, Markers: markers, MinMarkers: minMarkers}
}

// Matches reports whether msg looks like an order confirmation.
func (f *MarkerFilter) Matches(msg *Message) bool {
	if f.Sender != "" && !strings.Contains(msg.From, f.Sender) {
		return false
	}
	hits := 0
	for _, marker := range f.Markers {
		if strings.Contains(msg.Body, marker) {
			hits++
		}
	}
	return hits >= f.MinMarkers
}
