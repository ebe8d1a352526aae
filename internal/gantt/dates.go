package gantt

import (
	"fmt"
	"strings"
	"time"
)

// Date-only layouts are read as UTC; everything without an explicit zone is
// read in the local zone.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04:05.999999999-0700",
		"2006-01-02T15:04:05-0700",
		"2006-01-02 15:04:05-0700",
		"Mon Jan 02 2006 15:04:05 GMT-0700",
		time.RFC1123Z,
		time.RFC1123,
	}
	dateOnlyLayouts = []string{
		"2006-01-02",
		"2006-1-2",
		"2006-01",
		"2006",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-1-2 15:04:05",
		"2006-1-2 15:04",
		"2006/01/02 15:04:05",
		"2006/01/02 15:04",
		"2006/01/02",
		"01/02/2006 15:04:05",
		"01/02/2006",
		"Jan 2, 2006 15:04:05",
		"Jan 2, 2006",
		"2 Jan 2006 15:04:05",
		"2 Jan 2006",
	}
)

// ParseDate parses text into a time. It never fails: text that matches no
// known layout yields the zero time, which IsValid reports as invalid.
func ParseDate(text string) time.Time {
	text = strings.TrimSpace(text)
	// Browser-style strings carry a trailing "(Zone Name)".
	if i := strings.Index(text, " ("); i > 0 && strings.HasSuffix(text, ")") {
		text = text[:i]
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}
	for _, layout := range dateOnlyLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// IsValid reports whether t is a real parse result rather than the invalid
// sentinel. The sentinel is the zero time, so "0001-01-01" in UTC also reads
// as invalid; no schedule carries dates that early.
func IsValid(t time.Time) bool {
	return !t.IsZero()
}

// FormatDate renders text as "YYYY-MM-DD HH:mm" in the local zone. Empty or
// unparseable input yields "".
func FormatDate(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	t := ParseDate(text)
	if !IsValid(t) {
		return ""
	}
	return FormatTime(t)
}

// FormatTime renders t as "YYYY-MM-DD HH:mm" in the local zone.
func FormatTime(t time.Time) string {
	t = t.Local()
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
