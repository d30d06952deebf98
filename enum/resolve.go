package enum

import (
	"fmt"
	"reflect"

	"github.com/viant/coercion/lazy"
	"github.com/viant/coercion/scalar"
)

// Resolve returns member addressed by the runtime shape of value:
// lazy values use their enum projection, text resolves by name, numbers and booleans by ordinal.
// Any other shape fails with ErrUnsupportedShape.
func (t *Type) Resolve(value interface{}) (interface{}, error) {
	if value != nil && reflect.TypeOf(value) == t.rType {
		if _, ok := t.Member(value); ok {
			return value, nil
		}
		return nil, fmt.Errorf("%w: %v is not a member of %s", ErrNoMember, value, t.Name())
	}
	switch actual := value.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil can not address %s member", ErrUnsupportedShape, t.Name())
	case lazy.Enumer:
		return actual.Enum(t)
	case string:
		return t.ByName(actual)
	case []byte:
		return t.ByName(string(actual))
	case lazy.Valuer:
		return t.Resolve(actual.Value())
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Bool:
		ordinal, err := scalar.Int(value).Value()
		if err != nil {
			return nil, err
		}
		return t.ByOrdinal(ordinal)
	case reflect.String:
		return t.ByName(rValue.String())
	case reflect.Ptr:
		if !rValue.IsNil() {
			return t.Resolve(rValue.Elem().Interface())
		}
	}
	return nil, fmt.Errorf("%w: %v (%T) can not address %s member", ErrUnsupportedShape, value, value, t.Name())
}
