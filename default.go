package coercion

import (
	"fmt"
	"reflect"

	"github.com/viant/coercion/enum"
)

var defaultCoercer = New()

// Default returns package level coercer
func Default() *Coercer {
	return defaultCoercer
}

// Register registers enumerations with package level coercer
func Register(types ...*enum.Type) {
	defaultCoercer.Register(types...)
}

// Coerce converts value to tag with package level coercer, see Coercer.Coerce
func Coerce(tag Tag, rType reflect.Type, value interface{}) (interface{}, error) {
	return defaultCoercer.Coerce(tag, rType, value)
}

// CoerceOrFail converts value to tag with package level coercer, see Coercer.CoerceOrFail
func CoerceOrFail(tag Tag, rType reflect.Type, value interface{}) (interface{}, error) {
	return defaultCoercer.CoerceOrFail(tag, rType, value)
}

// CoerceClassic converts value to rType with package level coercer, see Coercer.CoerceClassic
func CoerceClassic(rType reflect.Type, value interface{}) (interface{}, error) {
	return defaultCoercer.CoerceClassic(rType, value)
}

// CoerceTo converts value to rType with package level coercer
func CoerceTo(rType reflect.Type, value interface{}) (interface{}, error) {
	return defaultCoercer.CoerceTo(rType, value)
}

// As converts value to T, missed conversions return zero value of T
func As[T any](c *Coercer, value interface{}) (T, error) {
	return as[T](c, PolicyDefault, value)
}

// AsOrFail converts value to T or returns an error
func AsOrFail[T any](c *Coercer, value interface{}) (T, error) {
	return as[T](c, PolicyFail, value)
}

func as[T any](c *Coercer, policy Policy, value interface{}) (T, error) {
	var ret T
	if c == nil {
		c = defaultCoercer
	}
	rType := reflect.TypeOf((*T)(nil)).Elem()
	result, err := c.Apply(policy, c.TagOf(rType), rType, value)
	if err != nil || result == nil {
		return ret, err
	}
	actual, ok := result.(T)
	if !ok {
		return ret, fmt.Errorf("%w: %T is not %v", ErrCoercion, result, rType)
	}
	return actual, nil
}
