package temporal

import (
	"fmt"
	"strings"
	"time"

	"github.com/viant/coercion/scalar"
)

type fieldOrder int

const (
	monthDayYear fieldOrder = iota
	dayMonthYear
)

func (o fieldOrder) String() string {
	if o == dayMonthYear {
		return "Euro"
	}
	return "US"
}

// USDate parses text split on any of . \ / : as month, day, year[, hour, minute, second]
func USDate(text string, opts ...Option) (time.Time, error) {
	return delimitedDate(text, monthDayYear, newOptions(opts))
}

// EuroDate parses text split on any of . \ / : as day, month, year[, hour, minute, second]
func EuroDate(text string, opts ...Option) (time.Time, error) {
	return delimitedDate(text, dayMonthYear, newOptions(opts))
}

// SplitDateFields splits text on date delimiters, empty fields are dropped
func SplitDateFields(text string) []string {
	return strings.FieldsFunc(text, isDateDelimiter)
}

func isDateDelimiter(r rune) bool {
	switch r {
	case '.', '\\', '/', ':':
		return true
	}
	return false
}

func delimitedDate(text string, order fieldOrder, options *Options) (time.Time, error) {
	fields := SplitDateFields(text)
	if len(fields) != 3 && len(fields) < 6 {
		return time.Time{}, fmt.Errorf("%w: not able to parse %q into a %v date", ErrDate, text, order)
	}
	values := make([]int, 6)
	for i := 0; i < len(values) && i < len(fields); i++ {
		value, err := scalar.Int(fields[i]).Value()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: not able to parse %q into a %v date: %w", ErrDate, text, order, err)
		}
		values[i] = value
	}
	month, day := values[0], values[1]
	if order == dayMonthYear {
		day, month = values[0], values[1]
	}
	return time.Date(values[2], time.Month(month), day, values[3], values[4], values[5], 0, options.Location), nil
}
