package container

import (
	"math"
	"reflect"
	"sort"
)

// Set represents insertion ordered set, comparable values are matched with ==, others with reflect.DeepEqual
type Set struct {
	items    []interface{}
	index    map[interface{}]int
	deepOnly []int
}

// NewSet creates a set
func NewSet(values ...interface{}) *Set {
	ret := &Set{index: make(map[interface{}]int, len(values))}
	for _, value := range values {
		ret.Add(value)
	}
	return ret
}

// Add adds value, returns false if set already contains value
func (s *Set) Add(value interface{}) bool {
	if s.Contains(value) {
		return false
	}
	if isHashable(value) && !isNaN(value) {
		s.index[value] = len(s.items)
	} else {
		s.deepOnly = append(s.deepOnly, len(s.items))
	}
	s.items = append(s.items, value)
	return true
}

// Contains returns true if set contains value
func (s *Set) Contains(value interface{}) bool {
	if isHashable(value) && !isNaN(value) {
		_, ok := s.index[value]
		return ok
	}
	for _, i := range s.deepOnly {
		if reflect.DeepEqual(s.items[i], value) || sameNaN(s.items[i], value) {
			return true
		}
	}
	return false
}

// NaN never equals itself, so it can not be a map key; NaNs of the same type collapse
func isNaN(value interface{}) bool {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rValue.Float())
	}
	return false
}

func sameNaN(a, b interface{}) bool {
	return isNaN(a) && isNaN(b) && reflect.TypeOf(a) == reflect.TypeOf(b)
}

// Len returns set size
func (s *Set) Len() int {
	return len(s.items)
}

// Values returns set elements in insertion order
func (s *Set) Values() []interface{} {
	return s.items
}

// Visit visits elements in insertion order
func (s *Set) Visit(f func(index int, element interface{}) (bool, error)) error {
	return typedSliceVisitor(s.items)(f)
}

// SortedSet represents a set ordered by comparator, elements comparing equal collapse
type SortedSet struct {
	items   []interface{}
	compare Comparator
}

// NewSortedSet creates sorted set, nil comparator uses Compare
func NewSortedSet(compare Comparator, values ...interface{}) *SortedSet {
	if compare == nil {
		compare = Compare
	}
	ret := &SortedSet{compare: compare}
	for _, value := range values {
		ret.Add(value)
	}
	return ret
}

// Add inserts value in order, returns false if an equal element exists
func (s *SortedSet) Add(value interface{}) bool {
	i := sort.Search(len(s.items), func(i int) bool {
		return s.compare(s.items[i], value) >= 0
	})
	if i < len(s.items) && s.compare(s.items[i], value) == 0 {
		return false
	}
	s.items = append(s.items, nil)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = value
	return true
}

// Contains returns true if an equal element exists
func (s *SortedSet) Contains(value interface{}) bool {
	i := sort.Search(len(s.items), func(i int) bool {
		return s.compare(s.items[i], value) >= 0
	})
	return i < len(s.items) && s.compare(s.items[i], value) == 0
}

// Len returns set size
func (s *SortedSet) Len() int {
	return len(s.items)
}

// Values returns elements in order
func (s *SortedSet) Values() []interface{} {
	return s.items
}

// Visit visits elements in order
func (s *SortedSet) Visit(f func(index int, element interface{}) (bool, error)) error {
	return typedSliceVisitor(s.items)(f)
}

// First returns the smallest element
func (s *SortedSet) First() (interface{}, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[0], true
}

// Last returns the greatest element
func (s *SortedSet) Last() (interface{}, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

// ToSet returns *Set as is, otherwise a fresh set of visited elements
func ToSet(value interface{}) *Set {
	if actual, ok := value.(*Set); ok && actual != nil {
		return actual
	}
	ret := NewSet()
	_ = Iterate(value)(func(_ int, element interface{}) (bool, error) {
		ret.Add(element)
		return true, nil
	})
	return ret
}

// ToSortedSet returns *SortedSet as is, otherwise a fresh naturally ordered set of visited elements
func ToSortedSet(value interface{}) *SortedSet {
	if actual, ok := value.(*SortedSet); ok && actual != nil {
		return actual
	}
	ret := NewSortedSet(nil)
	_ = Iterate(value)(func(_ int, element interface{}) (bool, error) {
		ret.Add(element)
		return true, nil
	})
	return ret
}

func isHashable(value interface{}) bool {
	if value == nil {
		return true
	}
	rType := reflect.TypeOf(value)
	if !rType.Comparable() {
		return false
	}
	switch rType.Kind() {
	case reflect.Interface, reflect.Array, reflect.Struct:
		return isDeepHashable(reflect.ValueOf(value))
	}
	return true
}

func isDeepHashable(rValue reflect.Value) bool {
	switch rValue.Kind() {
	case reflect.Interface:
		if rValue.IsNil() {
			return true
		}
		return rValue.Elem().Type().Comparable() && isDeepHashable(rValue.Elem())
	case reflect.Array:
		for i := 0; i < rValue.Len(); i++ {
			if !isDeepHashable(rValue.Index(i)) {
				return false
			}
		}
	case reflect.Struct:
		for i := 0; i < rValue.NumField(); i++ {
			if !isDeepHashable(rValue.Field(i)) {
				return false
			}
		}
	}
	return true
}

func isSequence(value interface{}) bool {
	switch value.(type) {
	case nil, string, []byte:
		return false
	case *Set, *SortedSet, Sequence:
		return true
	}
	kind := reflect.ValueOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}
