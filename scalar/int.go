package scalar

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/viant/coercion/lazy"
	"go.uber.org/zap"
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Int converts value to int
func Int(value interface{}) Result[int] {
	return integer[int](value, "int", strconv.IntSize)
}

// IntOr converts value to int or returns defaultValue
func IntOr(value interface{}, defaultValue int) int {
	return Int(value).Or(defaultValue)
}

// ToInt converts value to int, math.MinInt is returned if conversion failed
func ToInt(value interface{}) int {
	return IntOr(value, math.MinInt)
}

// Int16 converts value to int16, text is parsed as int and then narrowed
func Int16(value interface{}) Result[int16] {
	return integer[int16](value, "int16", strconv.IntSize)
}

// Int16Or converts value to int16 or returns defaultValue
func Int16Or(value interface{}, defaultValue int16) int16 {
	return Int16(value).Or(defaultValue)
}

// ToInt16 converts value to int16, math.MinInt16 is returned if conversion failed
func ToInt16(value interface{}) int16 {
	return Int16Or(value, math.MinInt16)
}

// Int8 converts value to int8, text is parsed as int and then narrowed
func Int8(value interface{}) Result[int8] {
	return integer[int8](value, "int8", strconv.IntSize)
}

// Int8Or converts value to int8 or returns defaultValue
func Int8Or(value interface{}, defaultValue int8) int8 {
	return Int8(value).Or(defaultValue)
}

// ToInt8 converts value to int8, math.MinInt8 is returned if conversion failed
func ToInt8(value interface{}) int8 {
	return Int8Or(value, math.MinInt8)
}

// Int64 converts value to int64, time.Time is converted to milliseconds since epoch
func Int64(value interface{}) Result[int64] {
	switch actual := value.(type) {
	case time.Time:
		return Ok(actual.UnixMilli())
	case *time.Time:
		if actual != nil {
			return Ok(actual.UnixMilli())
		}
	}
	return integer[int64](value, "int64", 64)
}

// Int64Or converts value to int64 or returns defaultValue
func Int64Or(value interface{}, defaultValue int64) int64 {
	return Int64(value).Or(defaultValue)
}

// ToInt64 converts value to int64, math.MinInt64 is returned if conversion failed
func ToInt64(value interface{}) int64 {
	return Int64Or(value, math.MinInt64)
}

func integer[T signed](value interface{}, target string, bitSize int) Result[T] {
	switch actual := value.(type) {
	case T:
		return Ok(actual)
	case nil:
		return Fail[T](conversionError(value, target, nil))
	case bool:
		if actual {
			return Ok(T(1))
		}
		return Ok(T(0))
	case string:
		return parseInteger[T](actual, target, bitSize)
	case []byte:
		return parseInteger[T](string(actual), target, bitSize)
	case *apd.Decimal:
		if actual == nil {
			return Fail[T](conversionError(value, target, nil))
		}
		var integral, fractional apd.Decimal
		actual.Modf(&integral, &fractional)
		v, err := integral.Int64()
		if err != nil {
			return Fail[T](conversionError(value, target, err))
		}
		return Ok(T(v))
	case *big.Int:
		if actual == nil {
			return Fail[T](conversionError(value, target, nil))
		}
		return Ok(T(actual.Int64()))
	case lazy.Inter:
		v, err := actual.Int64()
		if err != nil {
			return Fail[T](conversionError(value, target, err))
		}
		return Ok(T(v))
	case lazy.Valuer:
		return integer[T](actual.Value(), target, bitSize)
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Ok(T(rValue.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Ok(T(rValue.Uint()))
	case reflect.Float32, reflect.Float64:
		return Ok(T(rValue.Float()))
	case reflect.Bool:
		return integer[T](rValue.Bool(), target, bitSize)
	case reflect.String:
		return parseInteger[T](rValue.String(), target, bitSize)
	case reflect.Ptr:
		if !rValue.IsNil() {
			return integer[T](rValue.Elem().Interface(), target, bitSize)
		}
	}
	return Fail[T](conversionError(value, target, nil))
}

func parseInteger[T signed](text string, target string, bitSize int) Result[T] {
	v, err := strconv.ParseInt(text, 10, bitSize)
	if err == nil {
		return Ok(T(v))
	}
	digits, ok := DigitRun(text)
	if !ok {
		zap.L().Warn("unable to convert to "+target, zap.String("text", text), zap.Error(err))
		return Fail[T](conversionError(text, target, err))
	}
	if v, err = strconv.ParseInt(digits, 10, bitSize); err != nil {
		zap.L().Warn("unable to convert to "+target, zap.String("text", text), zap.String("digits", digits), zap.Error(err))
		return Fail[T](conversionError(text, target, err))
	}
	return Ok(T(v))
}
