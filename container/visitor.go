package container

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/viant/coercion/lazy"
	"github.com/viant/xunsafe"
)

// Visitor is an interface that Visits over pairs of (key, element).
// The Visit method calls the provided callback for each pair.
// If the callback returns (false, nil), the Visit stops.
// If the callback returns an error, the Visit stops and returns that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// Sequence represents a value with native iteration
type Sequence interface {
	Visit(f func(index int, element interface{}) (bool, error)) error
}

// Iterate returns element visitor of value, each call of the returned visitor starts from the first element.
// Maps are visited by their values in key order; nil is an empty sequence; any other scalar is a one element sequence.
func Iterate(value interface{}) Visitor[int, interface{}] {
	switch actual := value.(type) {
	case nil:
		return emptyVisitor
	case Visitor[int, interface{}]:
		return actual
	case Sequence:
		return actual.Visit
	case []interface{}:
		return typedSliceVisitor(actual)
	case []string:
		return typedSliceVisitor(actual)
	case []int:
		return typedSliceVisitor(actual)
	case []int64:
		return typedSliceVisitor(actual)
	case []float64:
		return typedSliceVisitor(actual)
	case []bool:
		return typedSliceVisitor(actual)
	case []byte:
		return typedSliceVisitor(actual)
	case map[string]interface{}:
		return mapValuesVisitor(reflect.ValueOf(actual))
	case lazy.Valuer:
		return Iterate(actual.Value())
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice:
		return sliceVisitor(value, rValue.Type())
	case reflect.Array:
		return arrayVisitor(rValue)
	case reflect.Map:
		return mapValuesVisitor(rValue)
	case reflect.Ptr:
		if rValue.IsNil() {
			return emptyVisitor
		}
		if elem := rValue.Elem(); elem.Kind() == reflect.Slice || elem.Kind() == reflect.Array || elem.Kind() == reflect.Map {
			return Iterate(elem.Interface())
		}
	}
	return singleVisitor(value)
}

// Values returns all elements visited by Iterate
func Values(value interface{}) []interface{} {
	ret := make([]interface{}, 0, Len(value))
	_ = Iterate(value)(func(_ int, element interface{}) (bool, error) {
		ret = append(ret, element)
		return true, nil
	})
	return ret
}

func emptyVisitor(func(key int, element interface{}) (bool, error)) error {
	return nil
}

func singleVisitor(value interface{}) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		_, err := f(0, value)
		return err
	}
}

func typedSliceVisitor[E any](slice []E) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

func sliceVisitor(value interface{}, sliceType reflect.Type) Visitor[int, interface{}] {
	xSlice := xunsafe.NewSlice(sliceType)
	return func(f func(key int, element interface{}) (bool, error)) error {
		valuePtr := xunsafe.AsPointer(value)
		sliceLen := xSlice.Len(valuePtr)
		for i := 0; i < sliceLen; i++ {
			continueVisit, err := f(i, xSlice.ValueAt(valuePtr, i))
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

func arrayVisitor(rValue reflect.Value) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i := 0; i < rValue.Len(); i++ {
			continueVisit, err := f(i, rValue.Index(i).Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

func mapValuesVisitor(rValue reflect.Value) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		keys := rValue.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return Compare(keys[i].Interface(), keys[j].Interface()) < 0
		})
		for i, key := range keys {
			continueVisit, err := f(i, rValue.MapIndex(key).Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// Entries returns map entries visitor, keys are visited in order
func Entries(value interface{}) (Visitor[interface{}, interface{}], error) {
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr && !rValue.IsNil() {
		rValue = rValue.Elem()
	}
	if rValue.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	return func(f func(key interface{}, element interface{}) (bool, error)) error {
		keys := rValue.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return Compare(keys[i].Interface(), keys[j].Interface()) < 0
		})
		for _, key := range keys {
			continueVisit, err := f(key.Interface(), rValue.MapIndex(key).Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}
