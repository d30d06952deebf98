package raw

import (
	"bytes"
	"fmt"
	"math/big"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/francoispqt/gojay"
	"github.com/viant/coercion/lazy"
	"github.com/viant/coercion/scalar"
	"github.com/viant/coercion/temporal"
)

var null = []byte("null")

// JSON represents a JSON fragment captured by a parser, it is decoded on projection
type JSON gojay.EmbeddedJSON

func (j JSON) trimmed() []byte {
	return bytes.TrimSpace(j)
}

func (j JSON) isString() bool {
	text := j.trimmed()
	return len(text) >= 2 && text[0] == '"'
}

func (j JSON) isNumber() bool {
	text := j.trimmed()
	return len(text) > 0 && (text[0] == '-' || (text[0] >= '0' && text[0] <= '9'))
}

func (j JSON) isNull() bool {
	text := j.trimmed()
	return len(text) == 0 || bytes.Equal(text, null)
}

func (j JSON) nullError(target string) error {
	return fmt.Errorf("%w: null JSON can not be projected to %s", lazy.ErrUnsupportedShape, target)
}

// Value decodes fragment into a generic Go value (string, float64, bool, []interface{}, map[string]interface{} or nil)
func (j JSON) Value() interface{} {
	if j.isNull() {
		return nil
	}
	var value interface{}
	if err := gojay.Unmarshal(j.trimmed(), &value); err != nil {
		return j.Text()
	}
	return value
}

// Text returns unquoted string content or raw fragment text
func (j JSON) Text() string {
	if !j.isString() {
		return string(j.trimmed())
	}
	var text string
	if err := gojay.Unmarshal(j.trimmed(), &text); err != nil {
		return string(j.trimmed())
	}
	return text
}

// Int64 projects fragment into int64, quoted text is parsed with digit salvage
func (j JSON) Int64() (int64, error) {
	switch {
	case j.isNull():
		return 0, j.nullError("int64")
	case j.isString():
		return scalar.Int64(j.Text()).Value()
	}
	if j.isNumber() {
		var value int64
		if err := gojay.Unmarshal(j.trimmed(), &value); err == nil {
			return value, nil
		}
	}
	return scalar.Int64(j.Value()).Value()
}

// Float64 projects fragment into float64
func (j JSON) Float64() (float64, error) {
	switch {
	case j.isNull():
		return 0, j.nullError("float64")
	case j.isString():
		return scalar.Float64(j.Text()).Value()
	}
	if j.isNumber() {
		var value float64
		if err := gojay.Unmarshal(j.trimmed(), &value); err == nil {
			return value, nil
		}
	}
	return scalar.Float64(j.Value()).Value()
}

// Bool projects fragment into bool, quoted text is matched against truth tokens
func (j JSON) Bool() (bool, error) {
	switch {
	case j.isNull():
		return false, j.nullError("bool")
	case j.isString():
		return scalar.Bool(j.Text()).Value()
	}
	if text := j.trimmed(); text[0] == 't' || text[0] == 'f' {
		var value bool
		if err := gojay.Unmarshal(text, &value); err == nil {
			return value, nil
		}
	}
	return scalar.Bool(j.Value()).Value()
}

// Time projects fragment into time, numbers are milliseconds since epoch
func (j JSON) Time() (time.Time, error) {
	return j.Date()
}

// Date projects fragment into time with date options, zone-less text and epoch numbers use the options location
func (j JSON) Date(opts ...temporal.Option) (time.Time, error) {
	switch {
	case j.isNull():
		return time.Time{}, j.nullError("time")
	case j.isString():
		return temporal.ParseText(j.Text(), opts...)
	}
	millis, err := j.Int64()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", temporal.ErrDate, err)
	}
	return temporal.Date(millis, opts...)
}

// Decimal projects fragment into exact decimal, numbers keep their textual precision
func (j JSON) Decimal() (*apd.Decimal, error) {
	if j.isNull() {
		return nil, j.nullError("decimal")
	}
	return scalar.Decimal(j.Text()).Value()
}

// BigInt projects fragment into big integer
func (j JSON) BigInt() (*big.Int, error) {
	if j.isNull() {
		return nil, j.nullError("big integer")
	}
	return scalar.BigInt(j.Text()).Value()
}

// Enum resolves quoted text by member name and numbers by ordinal
func (j JSON) Enum(enumType lazy.EnumType) (interface{}, error) {
	switch {
	case j.isNull():
		return nil, j.nullError("enum")
	case j.isString():
		return enumType.ByName(j.Text())
	}
	if j.isNumber() {
		ordinal, err := j.Int64()
		if err != nil {
			return nil, err
		}
		return enumType.ByOrdinal(int(ordinal))
	}
	return nil, fmt.Errorf("%w: JSON %s can not be projected to enum", lazy.ErrUnsupportedShape, j.trimmed())
}
