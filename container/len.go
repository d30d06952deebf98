package container

import (
	"reflect"

	"github.com/viant/coercion/lazy"
)

type lener interface {
	Len() int
}

// Len returns number of elements Iterate visits for value
func Len(value interface{}) int {
	switch actual := value.(type) {
	case nil:
		return 0
	case []interface{}:
		return len(actual)
	case map[string]interface{}:
		return len(actual)
	case lener:
		return actual.Len()
	case Visitor[int, interface{}]:
		count := 0
		_ = actual(func(int, interface{}) (bool, error) {
			count++
			return true, nil
		})
		return count
	case lazy.Valuer:
		return Len(actual.Value())
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rValue.Len()
	case reflect.Ptr:
		if rValue.IsNil() {
			return 0
		}
		if elem := rValue.Elem(); elem.Kind() == reflect.Slice || elem.Kind() == reflect.Array || elem.Kind() == reflect.Map {
			return elem.Len()
		}
	}
	return 1
}
