package coercion

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/viant/coercion/container"
	"github.com/viant/coercion/enum"
	"github.com/viant/coercion/scalar"
)

type (
	// Calendar represents a date projected into a location
	Calendar struct {
		time.Time
	}

	// CharSequence represents text target that is not a plain string
	CharSequence string
)

func (s CharSequence) String() string {
	return string(s)
}

var (
	timeType         = reflect.TypeOf(time.Time{})
	calendarType     = reflect.TypeOf(Calendar{})
	charSequenceType = reflect.TypeOf(CharSequence(""))
	stringerType     = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	decimalType      = reflect.TypeOf(&apd.Decimal{})
	bigIntType       = reflect.TypeOf(&big.Int{})
	listType         = reflect.TypeOf([]interface{}{})
	mapType          = reflect.TypeOf(map[string]interface{}{})
)

// TagOf returns tag for requested static type, types registered in registry are enums.
// int32 is treated as a number (it is indistinguishable from rune), CHAR has to be requested explicitly.
func TagOf(rType reflect.Type, registry *enum.Registry) Tag {
	if rType == nil {
		return TagDefault
	}
	if _, ok := registry.Lookup(rType); ok {
		return TagEnum
	}
	switch rType {
	case timeType:
		return TagDate
	case calendarType:
		return TagCalendar
	case charSequenceType, stringerType:
		return TagCharSequence
	case decimalType:
		return TagBigDecimal
	case bigIntType:
		return TagBigInt
	}
	if container.IsCollectionType(rType) {
		return TagCollection
	}
	switch rType.Kind() {
	case reflect.String:
		return TagString
	case reflect.Bool:
		return TagBoolean
	case reflect.Int, reflect.Int32, reflect.Uint, reflect.Uint32, reflect.Uintptr:
		return TagInt
	case reflect.Int64, reflect.Uint64:
		return TagLong
	case reflect.Int16, reflect.Uint16:
		return TagShort
	case reflect.Int8, reflect.Uint8:
		return TagByte
	case reflect.Float64:
		return TagDouble
	case reflect.Float32:
		return TagFloat
	case reflect.Map:
		return TagMap
	case reflect.Slice, reflect.Array:
		return TagArray
	case reflect.Struct:
		return TagInstance
	case reflect.Ptr:
		return TagOf(rType.Elem(), registry)
	}
	return TagDefault
}

// isStandardType returns true for unnamed types and types declared in the standard library
func isStandardType(rType reflect.Type) bool {
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	pkgPath := rType.PkgPath()
	if pkgPath == "" {
		return true
	}
	first := pkgPath
	if index := strings.Index(pkgPath, "/"); index != -1 {
		first = pkgPath[:index]
	}
	return !strings.Contains(first, ".")
}

func isNull(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rValue.IsNil()
	}
	return false
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

// fit re-types coerced value to rType: numbers are narrowed or widened, named types converted,
// pointer targets allocated
func fit(value interface{}, rType reflect.Type) (interface{}, error) {
	if rType == nil || value == nil {
		return value, nil
	}
	vType := reflect.TypeOf(value)
	if vType == rType {
		return value, nil
	}
	switch rType.Kind() {
	case reflect.Interface:
		if vType.Implements(rType) {
			return value, nil
		}
		return nil, fmt.Errorf("%w: %T does not implement %v", ErrCoercion, value, rType)
	case reflect.Ptr:
		if vType.Kind() == reflect.Ptr && vType.Elem() == rType.Elem() {
			return value, nil
		}
		inner, err := fit(value, rType.Elem())
		if err != nil {
			return nil, err
		}
		ptr := reflect.New(rType.Elem())
		ptr.Elem().Set(reflect.ValueOf(inner))
		return ptr.Interface(), nil
	}
	if isNumericKind(vType.Kind()) && isNumericKind(rType.Kind()) {
		return scalar.Number(value, rType)
	}
	if vType.Kind() == rType.Kind() && vType.ConvertibleTo(rType) {
		return reflect.ValueOf(value).Convert(rType).Interface(), nil
	}
	return nil, fmt.Errorf("%w: %v (%T) does not fit %v", ErrCoercion, value, value, rType)
}

var canonicalTypes = map[Tag]reflect.Type{
	TagString:       reflect.TypeOf(""),
	TagCharSequence: charSequenceType,
	TagInt:          reflect.TypeOf(0),
	TagShort:        reflect.TypeOf(int16(0)),
	TagByte:         reflect.TypeOf(int8(0)),
	TagChar:         reflect.TypeOf(rune(0)),
	TagLong:         reflect.TypeOf(int64(0)),
	TagDouble:       reflect.TypeOf(0.0),
	TagFloat:        reflect.TypeOf(float32(0)),
	TagBoolean:      reflect.TypeOf(false),
	TagDate:         timeType,
	TagCalendar:     calendarType,
	TagBigDecimal:   decimalType,
	TagBigInt:       bigIntType,
	TagMap:          mapType,
	TagArray:        listType,
	TagCollection:   listType,
}

// CanonicalType returns type produced by tag, nil for INSTANCE, ENUM and DEFAULT
func CanonicalType(tag Tag) reflect.Type {
	return canonicalTypes[tag]
}
