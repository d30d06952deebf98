package conv

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"sync"
	"time"
	"unsafe"

	"github.com/cockroachdb/apd/v3"
	"github.com/viant/coercion/lazy"
	"github.com/viant/coercion/scalar"
	"github.com/viant/coercion/temporal"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
)

// Options contains configuration for the converter
type Options struct {
	// DateLayout, if set, is tried before the date heuristics
	DateLayout string
	// Location is used for zone-less dates and epoch values
	Location *time.Location
	// TagName is the struct tag name to look for mapping information
	TagName string
	// CaseSensitive controls whether field/key matching is case sensitive
	CaseSensitive bool
	// KeyCaseFormat, if defined, re-cases untagged field names produced by ToMap
	KeyCaseFormat text.CaseFormat
	// ClonePointerData copies pointed data when a pointer is assigned to an interface destination
	ClonePointerData bool
	// AccessUnexported reads and populates unexported struct fields
	AccessUnexported bool
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		TagName:       "json",
		CaseSensitive: false,
		Location:      time.UTC,
	}
}

// Converter populates values of arbitrary types from maps, slices, structs and scalars.
// Scalar and date leaves are converted with the scalar and temporal packages.
type Converter struct {
	options       Options
	structCache   sync.Map // map[reflect.Type]*structInfo
	customConvMap sync.Map // map[typeKey]ConversionFunc
	structTypeMap sync.Map // map[string]bool
}

// ConversionFunc defines a custom conversion function
type ConversionFunc func(src interface{}, dest interface{}, opts Options) error

type typeKey struct {
	srcType  reflect.Type
	destType reflect.Type
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(&apd.Decimal{})
	bigIntType  = reflect.TypeOf(&big.Int{})
)

// NewConverter creates a new type converter with the provided options
func NewConverter(options Options) *Converter {
	if options.TagName == "" {
		options.TagName = "json"
	}
	return &Converter{
		options: options,
	}
}

// RegisterConversion registers a custom conversion function between source and destination types
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(typeKey{srcType, destType}, fn)
}

// FromMap creates a value of rType populated from aMap, rType can be a struct, a pointer to struct or a map
func (c *Converter) FromMap(aMap map[string]interface{}, rType reflect.Type) (interface{}, error) {
	return c.newValue(aMap, rType)
}

// FromSlice creates a value of rType with exported fields populated positionally from values
func (c *Converter) FromSlice(values []interface{}, rType reflect.Type) (interface{}, error) {
	structType := rType
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return c.newValue(values, rType)
	}
	ptr := reflect.New(structType)
	info := c.getStructInfo(structType)
	position := 0
	for _, field := range info.fields {
		if position >= len(values) {
			break
		}
		if field.tag.Ignore || !field.exported {
			continue
		}
		fieldValue := ptr.Elem().FieldByIndex(field.index)
		if !c.setStructField(fieldValue, values[position], field) {
			return nil, fmt.Errorf("unable to populate %v.%v from %v (%T)", structType.Name(), field.name, values[position], values[position])
		}
		position++
	}
	if rType.Kind() == reflect.Ptr {
		return ptr.Interface(), nil
	}
	return ptr.Elem().Interface(), nil
}

// ToMap converts struct (or map) into map[string]interface{}, keys follow json/format tags,
// untagged names are re-cased with KeyCaseFormat when defined
func (c *Converter) ToMap(value interface{}) (map[string]interface{}, error) {
	ret := map[string]interface{}{}
	if err := c.Convert(value, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Converter) newValue(src interface{}, rType reflect.Type) (interface{}, error) {
	ptr := reflect.New(rType)
	if rType.Kind() == reflect.Ptr {
		ptr.Elem().Set(reflect.New(rType.Elem()))
	}
	if err := c.Convert(src, ptr.Interface()); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}

// Convert converts the source value to the destination value
func (c *Converter) Convert(src interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}

	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.Elem().Kind() == reflect.Ptr && !isLeafPointer(destValue.Elem().Type()) {
		destValue = destValue.Elem()
	}

	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}

	if src == nil {
		return nil
	}

	srcValue := reflect.ValueOf(src)
	srcType := srcValue.Type()
	destElemType := destValue.Elem().Type()

	if v, ok := c.customConvMap.Load(typeKey{srcType, destElemType}); ok {
		return v.(ConversionFunc)(src, dest, c.options)
	}

	if srcType.AssignableTo(destElemType) {
		if c.options.ClonePointerData && srcType.Kind() == reflect.Ptr {
			return c.clone(destValue, srcValue)
		}
		destValue.Elem().Set(srcValue)
		return nil
	}

	if handled, err := c.convertLeaf(destValue.Elem(), src); handled {
		return err
	}

	if valuer, ok := src.(lazy.Valuer); ok {
		return c.Convert(valuer.Value(), dest)
	}

	if srcType.ConvertibleTo(destElemType) && srcType.Kind() == destElemType.Kind() {
		destValue.Elem().Set(srcValue.Convert(destElemType))
		return nil
	}

	return c.convertComplex(destValue, srcValue)
}

func isLeafPointer(rType reflect.Type) bool {
	return rType == decimalType || rType == bigIntType
}

// convertLeaf converts scalars, dates and big numbers, it returns false for container and struct destinations
func (c *Converter) convertLeaf(dest reflect.Value, src interface{}) (bool, error) {
	switch dest.Type() {
	case timeType:
		t, err := c.date(src, c.options.DateLayout)
		if err == nil {
			dest.Set(reflect.ValueOf(t))
		}
		return true, err
	case decimalType:
		v, err := scalar.Decimal(src).Value()
		if err == nil {
			dest.Set(reflect.ValueOf(v))
		}
		return true, err
	case bigIntType:
		v, err := scalar.BigInt(src).Value()
		if err == nil {
			dest.Set(reflect.ValueOf(v))
		}
		return true, err
	}
	switch dest.Kind() {
	case reflect.String:
		if isContainer(src) {
			return true, fmt.Errorf("cannot convert %T to string", src)
		}
		dest.SetString(scalar.String(src))
	case reflect.Bool:
		v, err := scalar.Bool(src).Value()
		if err != nil {
			return true, err
		}
		dest.SetBool(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := scalar.Int64(src).Value()
		if err != nil {
			return true, err
		}
		dest.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := scalar.Int64(src).Value()
		if err != nil {
			return true, err
		}
		if v < 0 {
			return true, fmt.Errorf("cannot convert negative value %d to unsigned int", v)
		}
		dest.SetUint(uint64(v))
	case reflect.Float32, reflect.Float64:
		v, err := scalar.Float64(src).Value()
		if err != nil {
			return true, err
		}
		dest.SetFloat(v)
	default:
		return false, nil
	}
	return true, nil
}

func (c *Converter) date(src interface{}, layout string) (time.Time, error) {
	var opts []temporal.Option
	if c.options.Location != nil {
		opts = append(opts, temporal.WithLocation(c.options.Location))
	}
	if layout != "" {
		opts = append(opts, temporal.WithLayout(layout))
	}
	return temporal.Date(src, opts...)
}

func isContainer(src interface{}) bool {
	switch src.(type) {
	case []byte, lazy.Valuer:
		return false
	}
	switch reflect.ValueOf(src).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		_, isTime := src.(time.Time)
		return !isTime
	}
	return false
}

// clone assigns destValue a pointer to a shallow copy of what srcValue points to,
// unexported struct fields are copied only with AccessUnexported
func (c *Converter) clone(destValue, srcValue reflect.Value) error {
	if srcValue.IsNil() {
		destValue.Elem().Set(srcValue)
		return nil
	}
	copied := reflect.New(srcValue.Type().Elem())
	copied.Elem().Set(srcValue.Elem())
	if record := copied.Elem(); record.Kind() == reflect.Struct && !c.options.AccessUnexported {
		for i := 0; i < record.NumField(); i++ {
			if !record.Type().Field(i).IsExported() {
				exposed(record.Field(i)).SetZero()
			}
		}
	}
	destValue.Elem().Set(copied)
	return nil
}

// exposed returns a settable view of an addressable, possibly unexported, field
func exposed(field reflect.Value) reflect.Value {
	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
}

// structSignature generates a signature for a struct type for quick comparison
func structSignature(rType reflect.Type) string {
	var sb strings.Builder
	sb.WriteString(rType.PkgPath())
	sb.WriteRune(':')
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		sb.WriteString(field.Name)
		sb.WriteRune(':')
		sb.WriteString(field.Type.String())
		sb.WriteRune(';')
	}
	return sb.String()
}

// areStructTypesCompatible checks if two struct types have compatible memory layouts
func (c *Converter) areStructTypesCompatible(srcType, destType reflect.Type) bool {
	if srcType.NumField() != destType.NumField() {
		return false
	}
	key := structSignature(srcType) + "->" + structSignature(destType)
	if v, ok := c.structTypeMap.Load(key); ok {
		return v.(bool)
	}
	compatible := true
	for i := 0; i < srcType.NumField(); i++ {
		srcField := srcType.Field(i)
		destField := destType.Field(i)
		if srcField.Name != destField.Name || srcField.Type != destField.Type {
			compatible = false
			break
		}
	}
	c.structTypeMap.Store(key, compatible)
	return compatible
}

func (c *Converter) convertComplex(destValue, srcValue reflect.Value) error {
	srcValue = indirect(srcValue)
	if !srcValue.IsValid() || (srcValue.Kind() == reflect.Ptr && srcValue.IsNil()) {
		return nil
	}

	destType := destValue.Type().Elem()
	destKind := destType.Kind()

	if srcValue.Kind() == reflect.Struct && destKind == reflect.Struct {
		if c.areStructTypesCompatible(srcValue.Type(), destType) {
			destValue.Elem().Set(srcValue.Convert(destType))
			return nil
		}
	}

	switch destKind {
	case reflect.Slice:
		return c.convertToSlice(destValue, srcValue)
	case reflect.Map:
		return c.convertToMap(destValue, srcValue)
	case reflect.Struct:
		return c.convertToStruct(destValue, srcValue)
	case reflect.Interface:
		if srcValue.Type().Implements(destType) {
			destValue.Elem().Set(srcValue)
			return nil
		}
	}

	return fmt.Errorf("unsupported conversion: %v to %v", srcValue.Type(), destType)
}

func (c *Converter) convertToSlice(destValue, srcValue reflect.Value) error {
	destType := destValue.Type().Elem()
	destElemType := destType.Elem()

	if destElemType.Kind() == reflect.Uint8 && srcValue.Kind() == reflect.String {
		destValue.Elem().SetBytes([]byte(srcValue.String()))
		return nil
	}

	if srcValue.Kind() != reflect.Slice && srcValue.Kind() != reflect.Array {
		sliceValue := reflect.MakeSlice(destType, 1, 1)
		elemPtr := reflect.New(destElemType)
		if err := c.Convert(srcValue.Interface(), elemPtr.Interface()); err != nil {
			return err
		}
		sliceValue.Index(0).Set(elemPtr.Elem())
		destValue.Elem().Set(sliceValue)
		return nil
	}

	length := srcValue.Len()
	sliceValue := reflect.MakeSlice(destType, length, length)
	for i := 0; i < length; i++ {
		item := srcValue.Index(i).Interface()
		if destElemType.Kind() == reflect.Ptr && !isLeafPointer(destElemType) {
			if item == nil {
				continue
			}
			elemValue := reflect.New(destElemType.Elem())
			if err := c.Convert(item, elemValue.Interface()); err != nil {
				return fmt.Errorf("error converting slice element %d: %w", i, err)
			}
			sliceValue.Index(i).Set(elemValue)
			continue
		}
		elemPtr := reflect.New(destElemType)
		if err := c.Convert(item, elemPtr.Interface()); err != nil {
			return fmt.Errorf("error converting slice element %d: %w", i, err)
		}
		sliceValue.Index(i).Set(elemPtr.Elem())
	}
	destValue.Elem().Set(sliceValue)
	return nil
}

func (c *Converter) convertToMap(destValue, srcValue reflect.Value) error {
	destType := destValue.Type().Elem()
	destKeyType := destType.Key()
	destValType := destType.Elem()

	mapValue := reflect.MakeMap(destType)
	setEntry := func(key, value interface{}) error {
		keyPtr := reflect.New(destKeyType)
		if err := c.Convert(key, keyPtr.Interface()); err != nil {
			return fmt.Errorf("error converting map key %v: %w", key, err)
		}
		valPtr := reflect.New(destValType)
		if err := c.Convert(value, valPtr.Interface()); err != nil {
			return fmt.Errorf("error converting map value of %v: %w", key, err)
		}
		mapValue.SetMapIndex(keyPtr.Elem(), valPtr.Elem())
		return nil
	}

	switch srcValue.Kind() {
	case reflect.Struct:
		info := c.getStructInfo(srcValue.Type())
		for _, field := range info.fields {
			if field.tag.Ignore || !field.exported {
				continue
			}
			value := srcValue.FieldByIndex(field.index).Interface()
			if field.omitempty && srcValue.FieldByIndex(field.index).IsZero() {
				continue
			}
			if err := setEntry(c.mapKey(field), value); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := srcValue.MapRange()
		for iter.Next() {
			if err := setEntry(iter.Key().Interface(), iter.Value().Interface()); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("cannot convert %v to map", srcValue.Type())
	}

	destValue.Elem().Set(mapValue)
	return nil
}

func (c *Converter) mapKey(field *structField) string {
	if field.tagName != "" {
		return field.tagName
	}
	if c.options.KeyCaseFormat != text.CaseFormatUndefined {
		return text.DetectCaseFormat(field.name).Format(field.name, c.options.KeyCaseFormat)
	}
	return field.name
}

func (c *Converter) convertToStruct(destValue, srcValue reflect.Value) error {
	destType := destValue.Type().Elem()
	destInfo := c.getStructInfo(destType)

	var srcMap map[string]interface{}
	switch srcValue.Kind() {
	case reflect.Map:
		srcMap = make(map[string]interface{}, srcValue.Len())
		iter := srcValue.MapRange()
		for iter.Next() {
			srcMap[scalar.String(iter.Key().Interface())] = iter.Value().Interface()
		}
	case reflect.Struct:
		srcInfo := c.getStructInfo(srcValue.Type())
		srcMap = make(map[string]interface{}, len(srcInfo.fields))
		for _, field := range srcInfo.fields {
			fieldValue := srcValue.FieldByIndex(field.index)
			var fieldInterface interface{}
			if fieldValue.CanInterface() {
				fieldInterface = fieldValue.Interface()
			} else if c.options.AccessUnexported && fieldValue.CanAddr() {
				fieldInterface = exposed(fieldValue).Interface()
			} else {
				continue
			}
			srcMap[field.name] = fieldInterface
		}
	case reflect.Slice, reflect.Array:
		values := make([]interface{}, srcValue.Len())
		for i := range values {
			values[i] = srcValue.Index(i).Interface()
		}
		populated, err := c.FromSlice(values, destType)
		if err != nil {
			return err
		}
		destValue.Elem().Set(reflect.ValueOf(populated))
		return nil
	default:
		return fmt.Errorf("cannot convert %v to struct", srcValue.Type())
	}

	for _, field := range destInfo.fields {
		if field.tag.Ignore {
			continue
		}
		value, ok := c.lookup(srcMap, field)
		if !ok {
			continue
		}
		fieldValue := destValue.Elem().FieldByIndex(field.index)
		if !c.setStructField(fieldValue, value, field) {
			zap.L().Debug("unable to populate field", zap.String("type", destType.String()), zap.String("field", field.name), zap.Any("value", value))
		}
	}
	return nil
}

func (c *Converter) lookup(srcMap map[string]interface{}, field *structField) (interface{}, bool) {
	if field.tagName != "" {
		if value, ok := srcMap[field.tagName]; ok {
			return value, true
		}
	}
	if value, ok := srcMap[field.name]; ok {
		return value, true
	}
	if c.options.CaseSensitive {
		return nil, false
	}
	for key, value := range srcMap {
		if field.matches(key) {
			return value, true
		}
	}
	return nil, false
}

func (c *Converter) setStructField(fieldValue reflect.Value, value interface{}, field *structField) bool {
	if !fieldValue.CanSet() {
		if !c.options.AccessUnexported || !fieldValue.CanAddr() {
			return false
		}
		fieldValue = exposed(fieldValue)
	}

	if value == nil {
		fieldValue.Set(reflect.Zero(fieldValue.Type()))
		return true
	}

	if layout := field.timeLayout(); layout != "" && fieldValue.Type() == timeType {
		t, err := c.date(value, layout)
		if err != nil {
			return false
		}
		fieldValue.Set(reflect.ValueOf(t))
		return true
	}

	if fieldValue.Kind() == reflect.Ptr && !isLeafPointer(fieldValue.Type()) {
		newPtr := reflect.New(fieldValue.Type().Elem())
		if err := c.Convert(value, newPtr.Interface()); err != nil {
			return false
		}
		fieldValue.Set(newPtr)
		return true
	}

	fieldPtr := reflect.New(fieldValue.Type())
	if err := c.Convert(value, fieldPtr.Interface()); err != nil {
		return false
	}
	fieldValue.Set(fieldPtr.Elem())
	return true
}

// struct reflection caching

type structField struct {
	name      string
	tagName   string
	lower     string
	exported  bool
	omitempty bool
	index     []int
	tag       *format.Tag
}

func (f *structField) timeLayout() string {
	if f.tag.TimeLayout != "" {
		return f.tag.TimeLayout
	}
	return f.tag.DateFormat
}

func (f *structField) matches(key string) bool {
	lowerKey := strings.ToLower(key)
	if lowerKey == f.lower || (f.tagName != "" && lowerKey == strings.ToLower(f.tagName)) {
		return true
	}
	return strings.ReplaceAll(lowerKey, "_", "") == f.lower
}

type structInfo struct {
	fields []*structField
}

func (c *Converter) getStructInfo(t reflect.Type) *structInfo {
	if v, ok := c.structCache.Load(t); ok {
		return v.(*structInfo)
	}
	info := &structInfo{}
	c.buildStructInfo(t, info, nil)
	v, _ := c.structCache.LoadOrStore(t, info)
	return v.(*structInfo)
}

func (c *Converter) buildStructInfo(t reflect.Type, info *structInfo, index []int) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		fieldIndex := make([]int, len(index)+1)
		copy(fieldIndex, index)
		fieldIndex[len(index)] = i

		if field.Anonymous {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft != timeType {
				if field.Type.Kind() == reflect.Struct {
					c.buildStructInfo(ft, info, fieldIndex)
					continue
				}
			}
		}

		tag, err := format.Parse(field.Tag, c.options.TagName)
		if err != nil {
			zap.L().Warn("invalid format tag", zap.String("type", t.String()), zap.String("field", field.Name), zap.Error(err))
			tag = &format.Tag{}
		}
		tagName := tag.Name
		encoded, flags, _ := strings.Cut(field.Tag.Get(c.options.TagName), ",")
		if encoded == "-" {
			tag.Ignore = true
		} else if encoded != "" {
			tagName = encoded
		}
		info.fields = append(info.fields, &structField{
			name:      field.Name,
			tagName:   tagName,
			lower:     strings.ToLower(field.Name),
			exported:  field.IsExported(),
			omitempty: strings.Contains(flags, "omitempty"),
			index:     fieldIndex,
			tag:       tag,
		})
	}
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	return v
}
