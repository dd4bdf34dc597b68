// Package dates resolves the export's declared capture-date strings into
// absolute instants anchored in a single fixed reference timezone, so that
// results are reproducible regardless of the host machine's local timezone.
package dates

import (
	"strings"
	"time"
)

// Layout is the documented table format: MM/DD/YYYY HH:MM:SS.
const Layout = "01/02/2006 15:04:05"

// appleLayout parses the long form found in older exports once the weekday
// prefix and trailing zone word are stripped, e.g.
// "Saturday September 16,2023 5:27 PM GMT" -> "September 16,2023 5:27 PM".
const appleLayout = "January 2,2006 3:04 PM"

// Resolve parses raw in loc. ok is false for empty strings, all-zero
// placeholders, and anything neither layout accepts; it never panics and
// never returns an epoch instant for a placeholder.
func Resolve(raw string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || isPlaceholder(s) {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(Layout, s, loc); err == nil {
		return t, true
	}
	return resolveApple(s, loc)
}

// isPlaceholder reports whether s is an all-zero date like
// "00/00/0000 00:00:00".
func isPlaceholder(s string) bool {
	return strings.Trim(s, "0/: ") == ""
}

// resolveApple handles the verbose format: weekday first, zone word last,
// the middle parsed with appleLayout. Only GMT/UTC zone words are accepted;
// the export always writes GMT.
func resolveApple(s string, loc *time.Location) (time.Time, bool) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return time.Time{}, false
	}
	zone := fields[len(fields)-1]
	if !strings.EqualFold(zone, "GMT") && !strings.EqualFold(zone, "UTC") {
		return time.Time{}, false
	}
	middle := strings.Join(fields[1:len(fields)-1], " ")
	t, err := time.ParseInLocation(appleLayout, middle, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
