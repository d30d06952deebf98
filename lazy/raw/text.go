package raw

import (
	"math/big"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/viant/coercion/lazy"
	"github.com/viant/coercion/scalar"
	"github.com/viant/coercion/temporal"
)

// Text represents an unquoted token, i.e. a CSV cell or a query parameter
type Text string

func (t Text) Value() interface{} {
	return string(t)
}

func (t Text) Text() string {
	return string(t)
}

func (t Text) Int64() (int64, error) {
	return scalar.Int64(string(t)).Value()
}

func (t Text) Float64() (float64, error) {
	return scalar.Float64(string(t)).Value()
}

func (t Text) Bool() (bool, error) {
	return scalar.Bool(string(t)).Value()
}

func (t Text) Time() (time.Time, error) {
	return t.Date()
}

// Date parses token with date options
func (t Text) Date(opts ...temporal.Option) (time.Time, error) {
	return temporal.ParseText(string(t), opts...)
}

func (t Text) Decimal() (*apd.Decimal, error) {
	return scalar.Decimal(string(t)).Value()
}

func (t Text) BigInt() (*big.Int, error) {
	return scalar.BigInt(string(t)).Value()
}

// Enum resolves integral token by ordinal, any other token by member name
func (t Text) Enum(enumType lazy.EnumType) (interface{}, error) {
	if ordinal, err := strconv.Atoi(string(t)); err == nil {
		return enumType.ByOrdinal(ordinal)
	}
	return enumType.ByName(string(t))
}
