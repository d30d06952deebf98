package scalar

import (
	"math/big"
	"reflect"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/viant/coercion/lazy"
	"go.uber.org/zap"
)

// LegacyFloatSentinel is the value historically returned after a failed floating point conversion,
// fail-loud coercion still rejects it.
const LegacyFloatSentinel = -666

// Float64 converts value to float64, unparsable text is a failure (there is no digit salvage for floats)
func Float64(value interface{}) Result[float64] {
	return float[float64](value, "float64", 64)
}

// Float32 converts value to float32
func Float32(value interface{}) Result[float32] {
	return float[float32](value, "float32", 32)
}

func float[T ~float32 | ~float64](value interface{}, target string, bitSize int) Result[T] {
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
		return parseFloat[T](actual, target, bitSize)
	case []byte:
		return parseFloat[T](string(actual), target, bitSize)
	case *apd.Decimal:
		if actual == nil {
			return Fail[T](conversionError(value, target, nil))
		}
		f, err := actual.Float64()
		if err != nil {
			return Fail[T](conversionError(value, target, err))
		}
		return Ok(T(f))
	case *big.Int:
		if actual == nil {
			return Fail[T](conversionError(value, target, nil))
		}
		f, _ := new(big.Float).SetInt(actual).Float64()
		return Ok(T(f))
	case lazy.Floater:
		f, err := actual.Float64()
		if err != nil {
			return Fail[T](conversionError(value, target, err))
		}
		return Ok(T(f))
	case lazy.Valuer:
		return float[T](actual.Value(), target, bitSize)
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
		return float[T](rValue.Bool(), target, bitSize)
	case reflect.String:
		return parseFloat[T](rValue.String(), target, bitSize)
	case reflect.Ptr:
		if !rValue.IsNil() {
			return float[T](rValue.Elem().Interface(), target, bitSize)
		}
	}
	return Fail[T](conversionError(value, target, nil))
}

func parseFloat[T ~float32 | ~float64](text string, target string, bitSize int) Result[T] {
	f, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		zap.L().Warn("unable to convert to "+target, zap.String("text", text), zap.Error(err))
		return Fail[T](conversionError(text, target, err))
	}
	return Ok(T(f))
}
