package sheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock reads a 24-hour "HH:MM" value. Single-digit hours are accepted.
func ParseClock(s string) (hours, minutes int, ok bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 || !digits(hh) || !digits(mm) {
		return 0, 0, false
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}

	return h, m, true
}

// ClockHours converts a clock value into fractional hours since midnight.
// Empty or malformed values count as zero.
func ClockHours(s string) float64 {
	h, m, ok := ParseClock(s)
	if !ok {
		return 0
	}
	return float64(h) + float64(m)/60
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func FormatClock(hours, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

var dateLayouts = []string{DateLayout, "1/2/2006", "2006-01-02", "01-02-2006"}

// ParseDate reads a date in any accepted layout and returns it in DateLayout.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format(DateLayout), true
		}
	}
	return "", false
}
