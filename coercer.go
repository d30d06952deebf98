package coercion

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/viant/coercion/container"
	"github.com/viant/coercion/conv"
	"github.com/viant/coercion/enum"
	"github.com/viant/coercion/lazy"
	"github.com/viant/coercion/scalar"
	"github.com/viant/coercion/temporal"
	"go.uber.org/zap"
)

// ErrCoercion is returned (wrapped) by failed coercions
var ErrCoercion = errors.New("unable to coerce")

// Coercer converts dynamic values into requested tags and types
type Coercer struct {
	options     *Options
	dateOptions []temporal.Option
}

// New creates a coercer
func New(opts ...Option) *Coercer {
	options := DefaultOptions()
	options.Apply(opts...)
	if options.Registry == nil {
		options.Registry = enum.NewRegistry()
	}
	if options.Populator == nil {
		options.Populator = conv.NewConverter(conv.Options{
			TagName:          options.TagName,
			Location:         options.Location,
			DateLayout:       options.DateLayout,
			KeyCaseFormat:    options.KeyCaseFormat,
			ClonePointerData: options.ClonePointers,
			AccessUnexported: options.UnexportedFields,
		})
	}
	ret := &Coercer{options: options}
	if options.Location != nil {
		ret.dateOptions = append(ret.dateOptions, temporal.WithLocation(options.Location))
	}
	if options.Locale != "" {
		ret.dateOptions = append(ret.dateOptions, temporal.WithLocale(options.Locale))
	}
	if options.DateLayout != "" {
		ret.dateOptions = append(ret.dateOptions, temporal.WithLayout(options.DateLayout))
	}
	return ret
}

// Register registers enumerations
func (c *Coercer) Register(types ...*enum.Type) {
	c.options.Registry.Register(types...)
}

// Registry returns enum registry
func (c *Coercer) Registry() *enum.Registry {
	return c.options.Registry
}

// TagOf returns tag for rType
func (c *Coercer) TagOf(rType reflect.Type) Tag {
	return TagOf(rType, c.options.Registry)
}

// Coerce converts value to tag, the result is re-typed to rType when rType is not nil.
// Scalar misses return the type sentinel, structural misses return nil; floating point, date,
// big number and enum failures are returned as errors.
func (c *Coercer) Coerce(tag Tag, rType reflect.Type, value interface{}) (interface{}, error) {
	return c.coerce(tag, rType, value, PolicyDefault)
}

// CoerceOrFail converts value to tag, any miss is returned as an error
func (c *Coercer) CoerceOrFail(tag Tag, rType reflect.Type, value interface{}) (interface{}, error) {
	return c.coerce(tag, rType, value, PolicyFail)
}

// CoerceTo converts value to rType with tag derived from rType
func (c *Coercer) CoerceTo(rType reflect.Type, value interface{}) (interface{}, error) {
	return c.Coerce(c.TagOf(rType), rType, value)
}

// Apply converts value with policy, tag is ignored by PolicyClassic
func (c *Coercer) Apply(policy Policy, tag Tag, rType reflect.Type, value interface{}) (interface{}, error) {
	if policy == PolicyClassic {
		return c.CoerceClassic(rType, value)
	}
	return c.coerce(tag, rType, value, policy)
}

func (c *Coercer) coerce(tag Tag, rType reflect.Type, value interface{}, policy Policy) (interface{}, error) {
	if isNull(value) {
		return nil, nil
	}
	loud := policy == PolicyFail
	switch tag {
	case TagString:
		return fit(scalar.String(value), rType)
	case TagCharSequence:
		return fit(CharSequence(scalar.String(value)), rType)
	case TagInt:
		return orSentinel(scalar.Int(value), math.MinInt, tag, rType, value, loud)
	case TagShort:
		return orSentinel(scalar.Int16(value), math.MinInt16, tag, rType, value, loud)
	case TagByte:
		return orSentinel(scalar.Int8(value), math.MinInt8, tag, rType, value, loud)
	case TagChar:
		return orSentinel(scalar.Char(value), scalar.NoChar, tag, rType, value, loud)
	case TagLong:
		return orSentinel(scalar.Int64(value), math.MinInt64, tag, rType, value, loud)
	case TagDouble:
		if loud {
			return orSentinel(scalar.Float64(value), scalar.LegacyFloatSentinel, tag, rType, value, loud)
		}
		return required(scalar.Float64(value), tag, rType, value)
	case TagFloat:
		if loud {
			return orSentinel(scalar.Float32(value), scalar.LegacyFloatSentinel, tag, rType, value, loud)
		}
		return required(scalar.Float32(value), tag, rType, value)
	case TagBoolean:
		if !loud {
			return fit(scalar.ToBool(value), rType)
		}
		return required(scalar.Bool(value), tag, rType, value)
	case TagDate:
		date, err := c.date(value)
		if err != nil {
			return nil, failure(tag, value, err)
		}
		return fit(date, rType)
	case TagCalendar:
		date, err := c.date(value)
		if err != nil {
			return nil, failure(tag, value, err)
		}
		return fit(Calendar{Time: temporal.Calendar(date, c.dateOptions...)}, rType)
	case TagBigDecimal:
		return required(scalar.Decimal(value), tag, rType, value)
	case TagBigInt:
		return required(scalar.BigInt(value), tag, rType, value)
	case TagMap, TagArray, TagCollection, TagInstance:
		result, err := c.structural(tag, rType, value, policy)
		if err != nil {
			if loud {
				return nil, failure(tag, value, err)
			}
			c.logger().Debug("coercion miss", zap.Stringer("tag", tag), zap.Any("value", value), zap.Error(err))
			return nil, nil
		}
		return result, nil
	case TagEnum:
		return c.enum(rType, value)
	case TagDefault:
		if loud {
			return nil, failure(tag, value, nil)
		}
		return value, nil
	}
	return nil, fmt.Errorf("%w: unknown tag %v", ErrCoercion, tag)
}

// CoerceClassic returns value as is when its type is rType, otherwise converts it by the category of rType.
// Maps with string keys populate instances of types declared outside the standard library.
func (c *Coercer) CoerceClassic(rType reflect.Type, value interface{}) (interface{}, error) {
	if isNull(value) {
		return nil, nil
	}
	if rType == nil || reflect.TypeOf(value) == rType {
		return value, nil
	}
	target := baseType(rType)
	enumType, isEnum := c.options.Registry.Lookup(target)
	switch {
	case isEnum:
		member, err := enumType.Resolve(value)
		if err != nil {
			return nil, failure(rType, value, err)
		}
		return fit(member, rType)
	case target == charSequenceType || target == stringerType:
		return fit(CharSequence(scalar.String(value)), rType)
	case target.Kind() == reflect.String:
		return fit(scalar.String(value), rType)
	case isKind(target, reflect.Int, reflect.Int32, reflect.Uint, reflect.Uint32, reflect.Uintptr):
		return fit(scalar.ToInt(value), rType)
	case isKind(target, reflect.Int64, reflect.Uint64):
		return fit(scalar.ToInt64(value), rType)
	case isKind(target, reflect.Int16, reflect.Uint16):
		return fit(scalar.ToInt16(value), rType)
	case isKind(target, reflect.Int8, reflect.Uint8):
		return fit(scalar.ToInt8(value), rType)
	case target.Kind() == reflect.Float64:
		return required(scalar.Float64(value), rType, rType, value)
	case target == timeType:
		date, err := c.date(value)
		if err != nil {
			return nil, failure(rType, value, err)
		}
		return fit(date, rType)
	case target == bigIntType:
		return required(scalar.BigInt(value), rType, rType, value)
	case target == decimalType:
		return required(scalar.Decimal(value), rType, rType, value)
	case target == calendarType:
		date, err := c.date(value)
		if err != nil {
			return nil, failure(rType, value, err)
		}
		return fit(Calendar{Time: temporal.Calendar(date, c.dateOptions...)}, rType)
	case target.Kind() == reflect.Float32:
		return required(scalar.Float32(value), rType, rType, value)
	case target.Kind() == reflect.Bool:
		return fit(scalar.ToBool(value), rType)
	case target.Kind() == reflect.Map:
		return c.classicStructural(TagMap, rType, value)
	case container.IsCollectionType(target):
		return c.classicStructural(TagCollection, rType, value)
	case isKind(target, reflect.Slice, reflect.Array):
		return c.classicStructural(TagArray, rType, value)
	case !isStandardType(target) && isStringKeyedMap(value):
		return c.classicStructural(TagInstance, rType, value)
	}
	return nil, failure(rType, value, nil)
}

func (c *Coercer) classicStructural(tag Tag, rType reflect.Type, value interface{}) (interface{}, error) {
	result, err := c.structural(tag, rType, value, PolicyClassic)
	if err != nil {
		return nil, failure(rType, value, err)
	}
	return result, nil
}

func (c *Coercer) structural(tag Tag, rType reflect.Type, value interface{}, policy Policy) (interface{}, error) {
	switch tag {
	case TagMap:
		return c.toMap(rType, value, policy)
	case TagArray:
		target := baseType(rType)
		if target == nil || target == listType {
			return fit(container.List(value), rType)
		}
		result, err := container.Array(target, value, c.element(policy))
		if err != nil {
			return nil, err
		}
		return fit(result, rType)
	case TagCollection:
		if rType == nil {
			return container.List(value), nil
		}
		return container.Collection(rType, value)
	case TagInstance:
		return c.instance(rType, value)
	}
	return nil, fmt.Errorf("%v is not a structural tag", tag)
}

func (c *Coercer) toMap(rType reflect.Type, value interface{}, policy Policy) (interface{}, error) {
	target := baseType(rType)
	if target == nil || target == mapType || target.Kind() == reflect.Interface {
		aMap, err := container.Map(value, c.options.Populator)
		if err != nil {
			return nil, err
		}
		return fit(aMap, rType)
	}
	result, err := container.TypedMap(target, value, c.element(policy), c.options.Populator)
	if err != nil {
		return nil, err
	}
	return fit(result, rType)
}

func (c *Coercer) instance(rType reflect.Type, value interface{}) (interface{}, error) {
	if rType == nil || reflect.TypeOf(value).AssignableTo(rType) {
		return value, nil
	}
	materialized := lazy.Materialize(value)
	switch reflect.ValueOf(materialized).Kind() {
	case reflect.Map:
		aMap, err := container.Map(materialized, nil)
		if err != nil {
			return nil, err
		}
		return c.options.Populator.FromMap(aMap, rType)
	case reflect.Slice, reflect.Array:
		return c.options.Populator.FromSlice(container.List(materialized), rType)
	}
	return nil, fmt.Errorf("%v (%T) is neither a map nor a list", value, value)
}

func (c *Coercer) enum(rType reflect.Type, value interface{}) (interface{}, error) {
	enumType, ok := c.options.Registry.Lookup(baseType(rType))
	if !ok {
		return nil, failure(TagEnum, value, fmt.Errorf("no enum registered for %v", rType))
	}
	member, err := enumType.Resolve(value)
	if err != nil {
		return nil, failure(TagEnum, value, err)
	}
	return fit(member, rType)
}

func (c *Coercer) element(policy Policy) container.ElementFunc {
	return func(element interface{}, elemType reflect.Type) (interface{}, error) {
		if elemType.Kind() == reflect.Interface {
			return element, nil
		}
		if policy == PolicyClassic {
			return c.CoerceClassic(elemType, element)
		}
		return c.coerce(c.TagOf(elemType), elemType, element, policy)
	}
}

func (c *Coercer) date(value interface{}) (time.Time, error) {
	switch actual := value.(type) {
	case Calendar:
		return actual.Time, nil
	case *Calendar:
		if actual != nil {
			return actual.Time, nil
		}
	}
	return temporal.Date(value, c.dateOptions...)
}

func (c *Coercer) logger() *zap.Logger {
	if c.options.Logger != nil {
		return c.options.Logger
	}
	return zap.L()
}

func orSentinel[T comparable](result scalar.Result[T], sentinel T, tag Tag, rType reflect.Type, value interface{}, loud bool) (interface{}, error) {
	if !loud {
		return fit(result.Or(sentinel), rType)
	}
	actual, err := result.Value()
	if err == nil && actual == sentinel {
		err = fmt.Errorf("converter returned sentinel %v", actual)
	}
	if err != nil {
		return nil, failure(tag, value, err)
	}
	return fit(actual, rType)
}

func required[T any](result scalar.Result[T], target interface{}, rType reflect.Type, value interface{}) (interface{}, error) {
	actual, err := result.Value()
	if err != nil {
		return nil, failure(target, value, err)
	}
	return fit(actual, rType)
}

func failure(target interface{}, value interface{}, err error) error {
	if err == nil {
		return fmt.Errorf("%w to %v from %v (%T)", ErrCoercion, target, value, value)
	}
	return fmt.Errorf("%w to %v from %v (%T): %w", ErrCoercion, target, value, value, err)
}

func baseType(rType reflect.Type) reflect.Type {
	for rType != nil && rType.Kind() == reflect.Ptr {
		if rType == decimalType || rType == bigIntType || container.IsCollectionType(rType) {
			return rType
		}
		rType = rType.Elem()
	}
	return rType
}

func isKind(rType reflect.Type, kinds ...reflect.Kind) bool {
	for _, kind := range kinds {
		if rType.Kind() == kind {
			return true
		}
	}
	return false
}

func isStringKeyedMap(value interface{}) bool {
	rType := reflect.TypeOf(lazy.Materialize(value))
	return rType != nil && rType.Kind() == reflect.Map && rType.Key().Kind() == reflect.String
}
