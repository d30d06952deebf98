package temporal

import (
	"strings"
	"time"
)

var dateFormatToLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSS", ".999",
	".SS", ".99",
	".S", ".9",
	"-hh", "Z07",
	"Z", "Z07:00",
)

// DateFormatToTimeLayout converts ISO date format (i.e. YYYY-MM-DD hh:mm:ss) to go time layout
func DateFormatToTimeLayout(dateFormat string) string {
	if !strings.Contains(dateFormat, "YY") && !strings.Contains(dateFormat, "DD") {
		return dateFormat
	}
	return dateFormatToLayoutReplacer.Replace(dateFormat)
}

// ParseLayout parses value with layout leniently: T/space separator mismatch is ignored
// and value is truncated to the layout length (or layout to value length) on mismatch
func ParseLayout(layout, value string, location *time.Location) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	if location == nil {
		location = time.UTC
	}
	layout = DateFormatToTimeLayout(layout)
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	t, err := time.ParseInLocation(layout, value, location)
	if err == nil {
		return t, nil
	}
	if len(value) > len(layout) {
		return time.ParseInLocation(layout, value[:len(layout)], location)
	}
	return time.ParseInLocation(layout[:len(value)], value, location)
}
