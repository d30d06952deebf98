package temporal

import (
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/viant/coercion/lazy"
	"github.com/viant/coercion/scalar"
	"go.uber.org/zap"
)

// Date converts value to time.Time.
// Integral numbers are milliseconds since epoch, text goes through ISO-8601, US and locale parsers.
func Date(value interface{}, opts ...Option) (time.Time, error) {
	return date(value, newOptions(opts))
}

// Calendar projects date into options location (time.Local by default)
func Calendar(date time.Time, opts ...Option) time.Time {
	return date.In(newOptions(opts).Location)
}

func date(value interface{}, options *Options) (time.Time, error) {
	switch actual := value.(type) {
	case time.Time:
		return actual, nil
	case *time.Time:
		if actual != nil {
			return *actual, nil
		}
	case string:
		return parseText(actual, options)
	case []byte:
		return parseText(string(actual), options)
	case *apd.Decimal, *big.Int:
		millis, err := scalar.Int64(actual).Value()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %w", ErrDate, err)
		}
		return time.UnixMilli(millis).In(options.Location), nil
	case Projector:
		t, err := actual.Date(options.list()...)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v: %w", ErrDate, value, err)
		}
		return t, nil
	case lazy.Timer:
		t, err := actual.Time()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v: %w", ErrDate, value, err)
		}
		return t, nil
	case lazy.Valuer:
		return date(actual.Value(), options)
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return time.UnixMilli(scalar.Int64Or(value, 0)).In(options.Location), nil
	case reflect.String:
		return parseText(rValue.String(), options)
	case reflect.Ptr:
		if !rValue.IsNil() {
			return date(rValue.Elem().Interface(), options)
		}
	}
	return time.Time{}, fmt.Errorf("%w: unsupported value %v (%T)", ErrDate, value, value)
}

// ParseText parses text with preferred layout (if any), loose ISO-8601, US delimiter and locale parsers
func ParseText(text string, opts ...Option) (time.Time, error) {
	return parseText(text, newOptions(opts))
}

func parseText(text string, options *Options) (time.Time, error) {
	if options.Layout != "" {
		if t, err := ParseLayout(options.Layout, text, options.Location); err == nil {
			return t, nil
		}
	}
	if ISO8601QuickCheck(text) {
		if t, err := ParseISO8601Loose(text, options.Location); err == nil {
			return t, nil
		}
	}
	t, err := delimitedDate(text, monthDayYear, options)
	if err == nil {
		return t, nil
	}
	zap.L().Debug("falling back to locale date parser", zap.String("text", text), zap.Error(err))
	if t, err = LocaleDate(text, WithLocation(options.Location), WithLocale(options.Locale)); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: unable to parse %q: %w", ErrDate, text, err)
}
