package temporal

import (
	"fmt"
	"time"
)

var looseISO8601Layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999Z07",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02",
}

// ISO8601QuickCheck validates character positions of an ISO-8601 date (YYYY-MM-DD)
// optionally followed by T or space and hh:mm; it does not validate ranges
func ISO8601QuickCheck(text string) bool {
	if len(text) < 10 {
		return false
	}
	if !digitsAt(text, 0, 4) || text[4] != '-' || !digitsAt(text, 5, 2) || text[7] != '-' || !digitsAt(text, 8, 2) {
		return false
	}
	if len(text) == 10 {
		return true
	}
	if text[10] != 'T' && text[10] != ' ' {
		return false
	}
	if len(text) < 13 || !digitsAt(text, 11, 2) {
		return false
	}
	if len(text) == 13 {
		return true
	}
	return text[13] == ':' && len(text) >= 16 && digitsAt(text, 14, 2)
}

// ParseISO8601Loose parses ISO-8601 text tolerating missing seconds, fraction and zone,
// zone-less values are placed in location
func ParseISO8601Loose(text string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	if len(text) > 10 && text[10] == ' ' {
		text = text[:10] + "T" + text[11:]
	}
	for _, layout := range looseISO8601Layouts {
		if t, err := time.ParseInLocation(layout, text, location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not an ISO-8601 date", ErrDate, text)
}

func digitsAt(text string, offset, count int) bool {
	if offset+count > len(text) {
		return false
	}
	for i := offset; i < offset+count; i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}
