package container

import (
	"fmt"
	"reflect"

	"github.com/viant/coercion/lazy"
	"github.com/viant/coercion/scalar"
)

// StructMapper converts struct into a map
type StructMapper interface {
	ToMap(value interface{}) (map[string]interface{}, error)
}

// Map converts value to map[string]interface{}: the map itself is returned as is, other maps are re-keyed
// with the key text form, structs are converted by mapper (or by their exported fields when mapper is nil)
func Map(value interface{}, mapper StructMapper) (map[string]interface{}, error) {
	switch actual := value.(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
		return actual, nil
	case lazy.Valuer:
		return Map(actual.Value(), mapper)
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return nil, nil
		}
		if rValue.Elem().Kind() == reflect.Map {
			return Map(rValue.Elem().Interface(), mapper)
		}
	}
	if rValue.Kind() == reflect.Map {
		ret := make(map[string]interface{}, rValue.Len())
		iter := rValue.MapRange()
		for iter.Next() {
			ret[scalar.String(iter.Key().Interface())] = iter.Value().Interface()
		}
		return ret, nil
	}
	if isStruct(rValue) {
		if mapper != nil {
			return mapper.ToMap(value)
		}
		visit, err := Fields(value)
		if err != nil {
			return nil, err
		}
		ret := map[string]interface{}{}
		err = visit(func(key string, element interface{}) (bool, error) {
			ret[key] = element
			return true, nil
		})
		return ret, err
	}
	return nil, fmt.Errorf("%w: %v (%T) can not be converted to map", ErrUnsupportedTarget, value, value)
}

// TypedMap converts value to map of rType, keys and values are converted by elem
func TypedMap(rType reflect.Type, value interface{}, elem ElementFunc, mapper StructMapper) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	if reflect.TypeOf(value) == rType {
		return value, nil
	}
	if rType.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: %v is not a map type", ErrUnsupportedTarget, rType)
	}
	var source interface{} = value
	if rValue := reflect.ValueOf(value); rValue.Kind() != reflect.Map {
		aMap, err := Map(value, mapper)
		if err != nil {
			return nil, err
		}
		if rType == reflect.TypeOf(aMap) {
			return aMap, nil
		}
		source = aMap
	}
	entries, err := Entries(source)
	if err != nil {
		return nil, err
	}
	ret := reflect.MakeMap(rType)
	err = entries(func(key interface{}, element interface{}) (bool, error) {
		convertedKey, err := convertElement(key, rType.Key(), elem)
		if err != nil {
			return false, fmt.Errorf("key %v: %w", key, err)
		}
		if !convertedKey.IsValid() {
			return true, nil
		}
		convertedValue, err := convertElement(element, rType.Elem(), elem)
		if err != nil {
			return false, fmt.Errorf("value of %v: %w", key, err)
		}
		if !convertedValue.IsValid() {
			convertedValue = reflect.Zero(rType.Elem())
		}
		ret.SetMapIndex(convertedKey, convertedValue)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ret.Interface(), nil
}

func isStruct(rValue reflect.Value) bool {
	switch rValue.Kind() {
	case reflect.Struct:
		return true
	case reflect.Ptr:
		return !rValue.IsNil() && rValue.Elem().Kind() == reflect.Struct
	}
	return false
}
