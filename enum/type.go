package enum

import (
	"fmt"
	"reflect"
	"strings"
)

type (
	// Member represents enumeration member
	Member struct {
		Name    string
		Ordinal int
		Value   interface{}
	}

	// Type represents ordered enumeration members of a Go type
	Type struct {
		rType   reflect.Type
		members []*Member
		byName  map[string]*Member
	}
)

// Of creates enumeration from values sharing one type, member names are taken from fmt.Stringer
// (or fmt.Sprint), ordinals follow argument order
func Of(values ...interface{}) (*Type, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("enum: no values")
	}
	rType := reflect.TypeOf(values[0])
	ret := &Type{rType: rType, byName: make(map[string]*Member, len(values))}
	for i, value := range values {
		if actual := reflect.TypeOf(value); actual != rType {
			return nil, fmt.Errorf("enum: inconsistent member type %v, expected %v", actual, rType)
		}
		if err := ret.add(fmt.Sprint(value), i, value); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// MustOf creates enumeration or panics
func MustOf(values ...interface{}) *Type {
	ret, err := Of(values...)
	if err != nil {
		panic(err)
	}
	return ret
}

// New creates enumeration of an integer based rType, member i is named names[i] and has value i
func New(rType reflect.Type, names ...string) (*Type, error) {
	switch rType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return nil, fmt.Errorf("enum: unsupported underlying kind %v of %v", rType.Kind(), rType)
	}
	ret := &Type{rType: rType, byName: make(map[string]*Member, len(names))}
	for i, name := range names {
		value := reflect.ValueOf(i).Convert(rType).Interface()
		if err := ret.add(name, i, value); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (t *Type) add(name string, ordinal int, value interface{}) error {
	if _, ok := t.byName[name]; ok {
		return fmt.Errorf("enum: duplicate member %v of %v", name, t.rType)
	}
	member := &Member{Name: name, Ordinal: ordinal, Value: value}
	t.members = append(t.members, member)
	t.byName[name] = member
	return nil
}

// Type returns enumeration go type
func (t *Type) Type() reflect.Type {
	return t.rType
}

// Name returns enumeration type name
func (t *Type) Name() string {
	return t.rType.String()
}

// Members returns members in ordinal order
func (t *Type) Members() []*Member {
	return t.members
}

// Len returns members count
func (t *Type) Len() int {
	return len(t.members)
}

// ByName returns member value for name; on miss name is upper-cased with hyphens replaced by underscores
func (t *Type) ByName(name string) (interface{}, error) {
	if member, ok := t.byName[name]; ok {
		return member.Value, nil
	}
	normalized := strings.ReplaceAll(strings.ToUpper(name), "-", "_")
	if member, ok := t.byName[normalized]; ok {
		return member.Value, nil
	}
	return nil, fmt.Errorf("%w: no %v member named %q (nor %q)", ErrNoMember, t.Name(), name, normalized)
}

// ByOrdinal returns member value for ordinal position
func (t *Type) ByOrdinal(ordinal int) (interface{}, error) {
	for _, member := range t.members {
		if member.Ordinal == ordinal {
			return member.Value, nil
		}
	}
	return nil, fmt.Errorf("%w: can't convert ordinal value %d into enum of type %s", ErrNoMember, ordinal, t.Name())
}

// Member returns member for value of the enumeration type
func (t *Type) Member(value interface{}) (*Member, bool) {
	for _, member := range t.members {
		if member.Value == value {
			return member, true
		}
	}
	return nil, false
}
