package container

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/coercion/scalar"
	"github.com/viant/xunsafe"
)

var bytesType = reflect.TypeOf([]byte{})

// ElementFunc converts element to elemType
type ElementFunc func(element interface{}, elemType reflect.Type) (interface{}, error)

// Indexer assigns slice elements by index
type Indexer struct {
	xSlice   *xunsafe.Slice
	elemType reflect.Type
}

var indexers = newSyncMap[reflect.Type, *Indexer]()

// NewIndexer returns (cached) indexer for sliceType
func NewIndexer(sliceType reflect.Type) *Indexer {
	return indexers.getOrCreate(sliceType, func() *Indexer {
		return &Indexer{xSlice: xunsafe.NewSlice(sliceType), elemType: sliceType.Elem()}
	})
}

// Set assigns value of the slice element type at index of slice referenced by slicePtr
func (i *Indexer) Set(slicePtr unsafe.Pointer, index int, value interface{}) error {
	if length := i.xSlice.Len(slicePtr); index < 0 || index >= length {
		return fmt.Errorf("index out of range: %v, len: %v", index, length)
	}
	if actual := reflect.TypeOf(value); actual != i.elemType {
		return fmt.Errorf("expected %v element, got %v", i.elemType, actual)
	}
	i.xSlice.SetValueAt(slicePtr, index, value)
	return nil
}

// Ints converts value to []int
func Ints(value interface{}) ([]int, error) {
	return convertSlice(value, scalar.Int)
}

// Int8s converts value to []int8
func Int8s(value interface{}) ([]int8, error) {
	return convertSlice(value, scalar.Int8)
}

// Int16s converts value to []int16
func Int16s(value interface{}) ([]int16, error) {
	return convertSlice(value, scalar.Int16)
}

// Int64s converts value to []int64
func Int64s(value interface{}) ([]int64, error) {
	return convertSlice(value, scalar.Int64)
}

// Float32s converts value to []float32
func Float32s(value interface{}) ([]float32, error) {
	return convertSlice(value, scalar.Float32)
}

// Float64s converts value to []float64
func Float64s(value interface{}) ([]float64, error) {
	return convertSlice(value, scalar.Float64)
}

// Bytes converts value to []byte, text is taken as is, elements are narrowed ints
func Bytes(value interface{}) ([]byte, error) {
	if text, ok := value.(string); ok {
		return []byte(text), nil
	}
	return convertSlice(value, func(element interface{}) scalar.Result[byte] {
		v, err := scalar.Int(element).Value()
		if err != nil {
			return scalar.Fail[byte](err)
		}
		return scalar.Ok(byte(v))
	})
}

func convertSlice[T any](value interface{}, convert func(interface{}) scalar.Result[T]) ([]T, error) {
	if actual, ok := value.([]T); ok {
		return actual, nil
	}
	ret := make([]T, 0, Len(value))
	err := Iterate(value)(func(i int, element interface{}) (bool, error) {
		v, err := convert(element).Value()
		if err != nil {
			return false, fmt.Errorf("element %d: %w", i, err)
		}
		ret = append(ret, v)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// typedArray converts value to []T with strict when elem is nil, otherwise every element goes through elem
func typedArray[T any](strict func(interface{}) scalar.Result[T]) func(interface{}, ElementFunc) (interface{}, error) {
	elemType := reflect.TypeOf((*T)(nil)).Elem()
	return func(value interface{}, elem ElementFunc) (interface{}, error) {
		if elem == nil {
			return convertSlice(value, strict)
		}
		return convertSlice(value, func(element interface{}) scalar.Result[T] {
			converted, err := elem(element, elemType)
			if err != nil {
				return scalar.Fail[T](err)
			}
			if converted == nil {
				var zero T
				return scalar.Ok(zero)
			}
			actual, ok := converted.(T)
			if !ok {
				return scalar.Fail[T](fmt.Errorf("%w: %v (%T) is not %v", ErrUnsupportedTarget, converted, converted, elemType))
			}
			return scalar.Ok(actual)
		})
	}
}

// int32 elements are integers, not characters: []int32 takes the generic path
var typedArrays = map[reflect.Type]func(interface{}, ElementFunc) (interface{}, error){
	reflect.TypeOf([]int{}):     typedArray(scalar.Int),
	reflect.TypeOf([]int8{}):    typedArray(scalar.Int8),
	reflect.TypeOf([]int16{}):   typedArray(scalar.Int16),
	reflect.TypeOf([]int64{}):   typedArray(scalar.Int64),
	reflect.TypeOf([]float32{}): typedArray(scalar.Float32),
	reflect.TypeOf([]float64{}): typedArray(scalar.Float64),
}

// Array converts value to rType slice or array; a value of rType is returned as is.
// Primitive element types use typed fast paths, text becomes []byte as is.
// Elements are converted with elem when supplied, typed fast paths fall back to strict scalar conversion otherwise.
func Array(rType reflect.Type, value interface{}, elem ElementFunc) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	if reflect.TypeOf(value) == rType {
		return value, nil
	}
	if text, ok := value.(string); ok && rType == bytesType {
		return []byte(text), nil
	}
	if fastPath, ok := typedArrays[rType]; ok {
		return fastPath(value, elem)
	}
	if rType == bytesType && elem == nil {
		return Bytes(value)
	}
	switch rType.Kind() {
	case reflect.Slice:
		elemType := rType.Elem()
		length := Len(value)
		slicePtr := reflect.New(rType)
		slicePtr.Elem().Set(reflect.MakeSlice(rType, length, length))
		indexer := NewIndexer(rType)
		ptr := unsafe.Pointer(slicePtr.Pointer())
		index := 0
		err := Iterate(value)(func(_ int, element interface{}) (bool, error) {
			if index >= length {
				return false, nil
			}
			converted, err := convertElement(element, elemType, elem)
			if err != nil {
				return false, fmt.Errorf("element %d: %w", index, err)
			}
			if converted.IsValid() {
				if elemType.Kind() == reflect.Interface {
					slicePtr.Elem().Index(index).Set(converted)
				} else if err = indexer.Set(ptr, index, converted.Interface()); err != nil {
					return false, err
				}
			}
			index++
			return true, nil
		})
		if err != nil {
			return nil, err
		}
		return slicePtr.Elem().Interface(), nil
	case reflect.Array:
		elemType := rType.Elem()
		array := reflect.New(rType).Elem()
		index := 0
		err := Iterate(value)(func(_ int, element interface{}) (bool, error) {
			if index >= array.Len() {
				return false, nil
			}
			converted, err := convertElement(element, elemType, elem)
			if err != nil {
				return false, fmt.Errorf("element %d: %w", index, err)
			}
			if converted.IsValid() {
				array.Index(index).Set(converted)
			}
			index++
			return true, nil
		})
		if err != nil {
			return nil, err
		}
		return array.Interface(), nil
	}
	return nil, fmt.Errorf("%w: %v is not an array type", ErrUnsupportedTarget, rType)
}

func convertElement(element interface{}, elemType reflect.Type, elem ElementFunc) (reflect.Value, error) {
	converted := element
	if elem != nil {
		var err error
		if converted, err = elem(element, elemType); err != nil {
			return reflect.Value{}, err
		}
	}
	if converted == nil {
		return reflect.Value{}, nil
	}
	rValue := reflect.ValueOf(converted)
	if rValue.Type() == elemType {
		return rValue, nil
	}
	if elemType.Kind() == reflect.Interface && rValue.Type().Implements(elemType) {
		return rValue.Convert(elemType), nil
	}
	if rValue.Kind() == elemType.Kind() && rValue.Type().ConvertibleTo(elemType) {
		return rValue.Convert(elemType), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %v (%T) is not assignable to %v", ErrUnsupportedTarget, converted, converted, elemType)
}
