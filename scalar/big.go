package scalar

import (
	"math"
	"math/big"
	"reflect"

	"github.com/cockroachdb/apd/v3"
	"github.com/viant/coercion/lazy"
)

// Decimal converts value to a big decimal
func Decimal(value interface{}) Result[*apd.Decimal] {
	switch actual := value.(type) {
	case *apd.Decimal:
		if actual == nil {
			return Fail[*apd.Decimal](conversionError(value, "decimal", nil))
		}
		return Ok(actual)
	case apd.Decimal:
		return Ok(&actual)
	case nil:
		return Fail[*apd.Decimal](conversionError(value, "decimal", nil))
	case string:
		return parseDecimal(value, actual)
	case []byte:
		return parseDecimal(value, string(actual))
	case *big.Int:
		if actual == nil {
			return Fail[*apd.Decimal](conversionError(value, "decimal", nil))
		}
		return Ok(apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(actual), 0))
	case lazy.Decimaler:
		d, err := actual.Decimal()
		if err != nil {
			return Fail[*apd.Decimal](conversionError(value, "decimal", err))
		}
		return Ok(d)
	case lazy.Valuer:
		return Decimal(actual.Value())
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Ok(apd.New(rValue.Int(), 0))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Ok(apd.NewWithBigInt(new(apd.BigInt).SetUint64(rValue.Uint()), 0))
	case reflect.Float32, reflect.Float64:
		d, err := new(apd.Decimal).SetFloat64(rValue.Float())
		if err != nil {
			return Fail[*apd.Decimal](conversionError(value, "decimal", err))
		}
		return Ok(d)
	case reflect.String:
		return parseDecimal(value, rValue.String())
	case reflect.Ptr:
		if !rValue.IsNil() {
			return Decimal(rValue.Elem().Interface())
		}
	}
	return Fail[*apd.Decimal](conversionError(value, "decimal", nil))
}

func parseDecimal(value interface{}, text string) Result[*apd.Decimal] {
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return Fail[*apd.Decimal](conversionError(value, "decimal", err))
	}
	return Ok(d)
}

// BigInt converts value to a big integer, fractional parts are truncated
func BigInt(value interface{}) Result[*big.Int] {
	switch actual := value.(type) {
	case *big.Int:
		if actual == nil {
			return Fail[*big.Int](conversionError(value, "bigint", nil))
		}
		return Ok(actual)
	case big.Int:
		return Ok(&actual)
	case nil:
		return Fail[*big.Int](conversionError(value, "bigint", nil))
	case string:
		return parseBigInt(value, actual)
	case []byte:
		return parseBigInt(value, string(actual))
	case *apd.Decimal:
		if actual == nil {
			return Fail[*big.Int](conversionError(value, "bigint", nil))
		}
		var integral, fractional apd.Decimal
		actual.Modf(&integral, &fractional)
		return parseBigInt(value, integral.Text('f'))
	case lazy.BigInter:
		v, err := actual.BigInt()
		if err != nil {
			return Fail[*big.Int](conversionError(value, "bigint", err))
		}
		return Ok(v)
	case lazy.Valuer:
		return BigInt(actual.Value())
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Ok(big.NewInt(rValue.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Ok(new(big.Int).SetUint64(rValue.Uint()))
	case reflect.Float32, reflect.Float64:
		f := rValue.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Fail[*big.Int](conversionError(value, "bigint", nil))
		}
		ret, _ := big.NewFloat(f).Int(nil)
		return Ok(ret)
	case reflect.String:
		return parseBigInt(value, rValue.String())
	case reflect.Ptr:
		if !rValue.IsNil() {
			return BigInt(rValue.Elem().Interface())
		}
	}
	return Fail[*big.Int](conversionError(value, "bigint", nil))
}

func parseBigInt(value interface{}, text string) Result[*big.Int] {
	if ret, ok := new(big.Int).SetString(text, 10); ok {
		return Ok(ret)
	}
	digits, ok := DigitRun(text)
	if !ok {
		return Fail[*big.Int](conversionError(value, "bigint", nil))
	}
	ret, _ := new(big.Int).SetString(digits, 10)
	return Ok(ret)
}
