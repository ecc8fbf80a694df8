// Package dates provides canonical parsing and formatting for the calendar
// pseudo-links embedded in Craft note bodies.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	// dayLayout is the literal date shape inside a day:// URI.
	dayLayout = "2006.01.02"

	// shortLayout is the human form day links display after rewriting:
	// abbreviated weekday, abbreviated month, unpadded day, two-digit year.
	// Example: "Sun, Dec 3 '23".
	shortLayout = "Mon, Jan 2 '06"
)

// ParseDay parses the yyyy.mm.dd date carried by a day:// URI.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day date %q: expected yyyy.mm.dd: %w", s, err)
	}
	return t, nil
}

// FormatShort renders a date in the short human form day links display.
func FormatShort(t time.Time) string {
	return t.Format(shortLayout)
}
