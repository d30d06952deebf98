package container

import (
	"fmt"
	"reflect"
)

var (
	listType      = reflect.TypeOf([]interface{}{})
	setType       = reflect.TypeOf(&Set{})
	sortedSetType = reflect.TypeOf(&SortedSet{})
)

// IsCollectionType returns true for []interface{}, *Set and *SortedSet
func IsCollectionType(rType reflect.Type) bool {
	return rType == listType || rType == setType || rType == sortedSetType
}

// Collection converts value to []interface{}, *Set or *SortedSet
func Collection(rType reflect.Type, value interface{}) (interface{}, error) {
	switch rType {
	case listType:
		return List(value), nil
	case setType:
		return ToSet(value), nil
	case sortedSetType:
		return ToSortedSet(value), nil
	}
	return nil, fmt.Errorf("%w: %v is not a collection type", ErrUnsupportedTarget, rType)
}
