package scalar

import (
	"fmt"
	"math"
	"reflect"
)

// Narrowest returns value boxed in the smallest signed integer type that can hold it
func Narrowest(value int64) interface{} {
	switch {
	case value >= math.MinInt8 && value <= math.MaxInt8:
		return int8(value)
	case value >= math.MinInt16 && value <= math.MaxInt16:
		return int16(value)
	case value >= math.MinInt32 && value <= math.MaxInt32:
		return int32(value)
	}
	return value
}

// Number re-types numeric value into numeric target type, with truncation
func Number(value interface{}, target reflect.Type) (interface{}, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: target type was nil", ErrConversion)
	}
	if !isNumericKind(target.Kind()) {
		return nil, fmt.Errorf("%w: %v is not a numeric type", ErrConversion, target)
	}
	rValue := reflect.ValueOf(value)
	if !rValue.IsValid() || !isNumericKind(rValue.Kind()) {
		return nil, conversionError(value, target.String(), nil)
	}
	return rValue.Convert(target).Interface(), nil
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
