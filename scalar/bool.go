package scalar

import (
	"math/big"
	"reflect"

	"github.com/cockroachdb/apd/v3"
	"github.com/viant/coercion/lazy"
)

type lener interface {
	Len() int
}

// Bool converts value to bool.
// Text is true only when it is one of the truth tokens, collections are true when not empty,
// numbers are true when their integer part is not zero, other values use their string form.
func Bool(value interface{}) Result[bool] {
	switch actual := value.(type) {
	case bool:
		return Ok(actual)
	case nil:
		return Fail[bool](conversionError(value, "bool", nil))
	case string:
		return Ok(IsTruthToken(actual))
	case []byte:
		return Ok(IsTruthToken(string(actual)))
	case *apd.Decimal, *big.Int:
		return Ok(Int64Or(actual, 0) != 0)
	case lazy.Booler:
		v, err := actual.Bool()
		if err != nil {
			return Fail[bool](conversionError(value, "bool", err))
		}
		return Ok(v)
	case lazy.Valuer:
		return Bool(actual.Value())
	case lener:
		return Ok(actual.Len() > 0)
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Bool:
		return Ok(rValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Ok(Int64Or(value, 0) != 0)
	case reflect.String:
		return Ok(IsTruthToken(rValue.String()))
	case reflect.Slice, reflect.Array, reflect.Map:
		return Ok(rValue.Len() > 0)
	case reflect.Ptr:
		if rValue.IsNil() {
			return Fail[bool](conversionError(value, "bool", nil))
		}
		return Bool(rValue.Elem().Interface())
	}
	return Ok(IsTruthToken(String(value)))
}

// BoolOr converts value to bool or returns defaultValue
func BoolOr(value interface{}, defaultValue bool) bool {
	return Bool(value).Or(defaultValue)
}

// ToBool converts value to bool, false is returned if conversion failed
func ToBool(value interface{}) bool {
	return BoolOr(value, false)
}
