package coercion

import (
	"fmt"
	"math"
	"math/big"
	"net/url"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/coercion/container"
	"github.com/viant/coercion/enum"
	"github.com/viant/coercion/lazy/raw"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

type color int

const (
	red color = iota
	green
	lightBlue
)

func (c color) String() string {
	return [...]string{"RED", "GREEN", "LIGHT_BLUE"}[c]
}

type order struct {
	ID    int     `json:"id"`
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

var colorType = reflect.TypeOf(red)

func newTestCoercer() *Coercer {
	return New(WithLocation(time.UTC), WithEnums(enum.MustOf(red, green, lightBlue)))
}

func TestTag(t *testing.T) {
	for i := 1; i < TagTotal; i++ {
		tag := Tag(i)
		assert.True(t, tag.IsValid())
		parsed, err := ParseTag(tag.String())
		require.NoError(t, err, tag.String())
		assert.Equal(t, tag, parsed)
	}
	parsed, err := ParseTag("big-decimal")
	require.NoError(t, err)
	assert.Equal(t, TagBigDecimal, parsed)

	_, err = ParseTag("INTEGER")
	assert.Error(t, err)
	assert.False(t, Tag(0).IsValid())
	assert.Equal(t, "Tag(0)", Tag(0).String())
	assert.True(t, TagArray.IsStructural())
	assert.False(t, TagEnum.IsStructural())
	assert.True(t, TagBigInt.IsNumeric())
}

func TestTagOf(t *testing.T) {
	registry := enum.NewRegistry(enum.MustOf(red, green, lightBlue))
	var testCases = []struct {
		description string
		rType       reflect.Type
		expect      Tag
	}{
		{description: "string", rType: reflect.TypeOf(""), expect: TagString},
		{description: "int", rType: reflect.TypeOf(0), expect: TagInt},
		{description: "int32", rType: reflect.TypeOf(int32(0)), expect: TagInt},
		{description: "int64", rType: reflect.TypeOf(int64(0)), expect: TagLong},
		{description: "uint64", rType: reflect.TypeOf(uint64(0)), expect: TagLong},
		{description: "int16", rType: reflect.TypeOf(int16(0)), expect: TagShort},
		{description: "uint8", rType: reflect.TypeOf(uint8(0)), expect: TagByte},
		{description: "float64", rType: reflect.TypeOf(0.0), expect: TagDouble},
		{description: "float32", rType: reflect.TypeOf(float32(0)), expect: TagFloat},
		{description: "bool", rType: reflect.TypeOf(true), expect: TagBoolean},
		{description: "time", rType: reflect.TypeOf(time.Time{}), expect: TagDate},
		{description: "time pointer", rType: reflect.TypeOf(&time.Time{}), expect: TagDate},
		{description: "calendar", rType: reflect.TypeOf(Calendar{}), expect: TagCalendar},
		{description: "char sequence", rType: reflect.TypeOf(CharSequence("")), expect: TagCharSequence},
		{description: "stringer", rType: reflect.TypeOf((*fmt.Stringer)(nil)).Elem(), expect: TagCharSequence},
		{description: "decimal", rType: reflect.TypeOf(&apd.Decimal{}), expect: TagBigDecimal},
		{description: "big int", rType: reflect.TypeOf(&big.Int{}), expect: TagBigInt},
		{description: "map", rType: reflect.TypeOf(map[string]int{}), expect: TagMap},
		{description: "list", rType: reflect.TypeOf([]interface{}{}), expect: TagCollection},
		{description: "set", rType: reflect.TypeOf(&container.Set{}), expect: TagCollection},
		{description: "slice", rType: reflect.TypeOf([]int{}), expect: TagArray},
		{description: "array", rType: reflect.TypeOf([2]string{}), expect: TagArray},
		{description: "struct", rType: reflect.TypeOf(order{}), expect: TagInstance},
		{description: "struct pointer", rType: reflect.TypeOf(&order{}), expect: TagInstance},
		{description: "enum", rType: colorType, expect: TagEnum},
		{description: "interface", rType: reflect.TypeOf((*interface{})(nil)).Elem(), expect: TagDefault},
		{description: "channel", rType: reflect.TypeOf(make(chan int)), expect: TagDefault},
		{description: "nil", rType: nil, expect: TagDefault},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expect, TagOf(testCase.rType, registry))
		})
	}
}

func TestCoercer_Coerce(t *testing.T) {
	coercer := newTestCoercer()
	var testCases = []struct {
		description string
		tag         Tag
		rType       reflect.Type
		value       interface{}
		expect      interface{}
		expectErr   bool
	}{
		{description: "nil", tag: TagInt, value: nil, expect: nil},
		{description: "nil pointer", tag: TagString, value: (*int)(nil), expect: nil},
		{description: "string", tag: TagString, value: 12, expect: "12"},
		{description: "char sequence", tag: TagCharSequence, value: 12, expect: CharSequence("12")},
		{description: "int", tag: TagInt, value: "42", expect: 42},
		{description: "int digit salvage", tag: TagInt, value: "abc123xyz", expect: 123},
		{description: "int first digit run", tag: TagInt, value: "12abc34", expect: 12},
		{description: "int sentinel", tag: TagInt, value: "abc", expect: math.MinInt},
		{description: "int from lazy", tag: TagInt, value: raw.JSON("42"), expect: 42},
		{description: "int named target", tag: TagInt, rType: reflect.TypeOf(uint(0)), value: "7", expect: uint(7)},
		{description: "int pointer target", tag: TagInt, rType: reflect.TypeOf(new(int)), value: "7", expect: func() *int { v := 7; return &v }()},
		{description: "short", tag: TagShort, rType: reflect.TypeOf(int16(0)), value: "12", expect: int16(12)},
		{description: "short sentinel", tag: TagShort, value: "x", expect: int16(math.MinInt16)},
		{description: "byte", tag: TagByte, rType: reflect.TypeOf(uint8(0)), value: "7", expect: uint8(7)},
		{description: "byte sentinel", tag: TagByte, value: "x", expect: int8(math.MinInt8)},
		{description: "char", tag: TagChar, value: "hello", expect: 'h'},
		{description: "char bool", tag: TagChar, value: false, expect: 'F'},
		{description: "char sentinel", tag: TagChar, value: "", expect: rune(0)},
		{description: "long", tag: TagLong, value: "9000000000", expect: int64(9000000000)},
		{description: "long sentinel", tag: TagLong, value: "x", expect: int64(math.MinInt64)},
		{description: "double text", tag: TagDouble, value: "2.5", expect: 2.5},
		{description: "double error", tag: TagDouble, value: "abc", expectErr: true},
		{description: "float", tag: TagFloat, value: "1.5", expect: float32(1.5)},
		{description: "double legacy sentinel value", tag: TagDouble, value: -666, expect: float64(-666)},
		{description: "float error", tag: TagFloat, value: "abc", expectErr: true},
		{description: "boolean token", tag: TagBoolean, value: "yes", expect: true},
		{description: "boolean case sensitive", tag: TagBoolean, value: "NO", expect: false},
		{description: "boolean empty", tag: TagBoolean, value: "", expect: false},
		{description: "boolean empty list", tag: TagBoolean, value: []int{}, expect: false},
		{description: "boolean list", tag: TagBoolean, value: []int{1}, expect: true},
		{description: "date iso", tag: TagDate, value: "2024-01-15T10:00:00Z", expect: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)},
		{description: "date us", tag: TagDate, value: "01/15/2024", expect: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{description: "date us with time", tag: TagDate, value: "01/15/2024/10/30/00", expect: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{description: "date epoch", tag: TagDate, value: int64(1705312800000), expect: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)},
		{description: "date four fields", tag: TagDate, value: "1/2/3/4", expectErr: true},
		{description: "default", tag: TagDefault, value: struct{}{}, expect: struct{}{}},
		{description: "unknown tag", tag: Tag(0), value: 1, expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := coercer.Coerce(testCase.tag, testCase.rType, testCase.value)
			if testCase.expectErr {
				assert.ErrorIs(t, err, ErrCoercion)
				return
			}
			require.NoError(t, err)
			if expected, ok := testCase.expect.(time.Time); ok {
				require.IsType(t, time.Time{}, actual)
				assert.True(t, expected.Equal(actual.(time.Time)), "expected %v, got %v", expected, actual)
				return
			}
			assert.Equal(t, testCase.expect, actual)
		})
	}
}

func TestCoercer_BigNumbers(t *testing.T) {
	coercer := newTestCoercer()
	actual, err := coercer.Coerce(TagBigDecimal, nil, "12.50")
	require.NoError(t, err)
	assert.Equal(t, "12.50", actual.(*apd.Decimal).String())

	actual, err = coercer.Coerce(TagBigInt, nil, "123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", actual.(*big.Int).String())

	_, err = coercer.Coerce(TagBigDecimal, nil, "twelve")
	assert.ErrorIs(t, err, ErrCoercion)
}

func TestCoercer_Calendar(t *testing.T) {
	coercer := New(WithLocation(time.FixedZone("CET", 3600)))
	actual, err := coercer.Coerce(TagCalendar, nil, "2024-01-15T10:00:00Z")
	require.NoError(t, err)
	calendar, ok := actual.(Calendar)
	require.True(t, ok)
	assert.Equal(t, 11, calendar.Hour())

	date, err := coercer.Coerce(TagDate, nil, calendar)
	require.NoError(t, err)
	assert.True(t, calendar.Time.Equal(date.(time.Time)))
}

func TestCoercer_PolicyDivergence(t *testing.T) {
	coercer := newTestCoercer()

	actual, err := coercer.Coerce(TagInt, reflect.TypeOf(0), "not a number")
	require.NoError(t, err)
	assert.Equal(t, math.MinInt, actual)

	_, err = coercer.CoerceOrFail(TagInt, reflect.TypeOf(0), "not a number")
	assert.ErrorIs(t, err, ErrCoercion)

	actual, err = coercer.CoerceClassic(reflect.TypeOf(""), "not a number")
	require.NoError(t, err)
	assert.Equal(t, "not a number", actual)

	actual, err = coercer.CoerceClassic(reflect.TypeOf(0), "not a number")
	require.NoError(t, err)
	assert.Equal(t, math.MinInt, actual)
}

func TestCoercer_CoerceOrFail(t *testing.T) {
	coercer := newTestCoercer()
	var testCases = []struct {
		description string
		tag         Tag
		rType       reflect.Type
		value       interface{}
		expect      interface{}
		expectErr   bool
	}{
		{description: "int", tag: TagInt, value: "42", expect: 42},
		{description: "int miss", tag: TagInt, value: "abc", expectErr: true},
		{description: "int legacy sentinel", tag: TagInt, value: math.MinInt, expectErr: true},
		{description: "short miss", tag: TagShort, value: "abc", expectErr: true},
		{description: "byte miss", tag: TagByte, value: "abc", expectErr: true},
		{description: "long miss", tag: TagLong, value: "abc", expectErr: true},
		{description: "char miss", tag: TagChar, value: "", expectErr: true},
		{description: "char", tag: TagChar, value: "x", expect: 'x'},
		{description: "boolean", tag: TagBoolean, value: "ok", expect: true},
		{description: "double", tag: TagDouble, value: "abc", expectErr: true},
		{description: "double text", tag: TagDouble, value: "2.5", expect: 2.5},
		{description: "double legacy sentinel", tag: TagDouble, value: -666, expectErr: true},
		{description: "float legacy sentinel", tag: TagFloat, value: "-666", expectErr: true},
		{description: "map miss", tag: TagMap, value: 12, expectErr: true},
		{description: "instance miss", tag: TagInstance, rType: reflect.TypeOf(order{}), value: 12, expectErr: true},
		{description: "default", tag: TagDefault, value: 12, expectErr: true},
		{description: "nil", tag: TagDefault, value: nil, expect: nil},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := coercer.CoerceOrFail(testCase.tag, testCase.rType, testCase.value)
			if testCase.expectErr {
				assert.ErrorIs(t, err, ErrCoercion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}
}

func TestCoercer_Structural(t *testing.T) {
	coercer := newTestCoercer()
	orderType := reflect.TypeOf(order{})
	var testCases = []struct {
		description string
		tag         Tag
		rType       reflect.Type
		value       interface{}
		expect      interface{}
	}{
		{
			description: "map as is",
			tag:         TagMap,
			value:       map[string]interface{}{"a": 1},
			expect:      map[string]interface{}{"a": 1},
		},
		{
			description: "map from struct",
			tag:         TagMap,
			value:       order{ID: 1, Item: "pen", Price: 2},
			expect:      map[string]interface{}{"id": 1, "item": "pen", "price": float64(2)},
		},
		{
			description: "typed map",
			tag:         TagMap,
			rType:       reflect.TypeOf(map[string]int{}),
			value:       map[string]interface{}{"a": "1", "b": 2},
			expect:      map[string]int{"a": 1, "b": 2},
		},
		{
			description: "map miss",
			tag:         TagMap,
			value:       12,
			expect:      nil,
		},
		{
			description: "int array",
			tag:         TagArray,
			rType:       reflect.TypeOf([]int{}),
			value:       []interface{}{"1", 2, 3.9},
			expect:      []int{1, 2, 3},
		},
		{
			description: "string array",
			tag:         TagArray,
			rType:       reflect.TypeOf([]string{}),
			value:       []interface{}{1, true},
			expect:      []string{"1", "true"},
		},
		{
			description: "enum array",
			tag:         TagArray,
			rType:       reflect.TypeOf([]color{}),
			value:       []interface{}{"GREEN", "light-blue", 0},
			expect:      []color{green, lightBlue, red},
		},
		{
			description: "int array sentinel",
			tag:         TagArray,
			rType:       reflect.TypeOf([]int{}),
			value:       []interface{}{"1", "x"},
			expect:      []int{1, math.MinInt},
		},
		{
			description: "long array sentinel",
			tag:         TagArray,
			rType:       reflect.TypeOf([]int64{}),
			value:       []interface{}{"x", 2},
			expect:      []int64{math.MinInt64, 2},
		},
		{
			description: "array miss",
			tag:         TagArray,
			rType:       reflect.TypeOf([]float64{}),
			value:       []interface{}{"no digits"},
			expect:      nil,
		},
		{
			description: "list",
			tag:         TagCollection,
			value:       []int{1, 2},
			expect:      []interface{}{1, 2},
		},
		{
			description: "instance from map",
			tag:         TagInstance,
			rType:       orderType,
			value:       map[string]interface{}{"id": "7", "item": "pen", "price": "1.5"},
			expect:      order{ID: 7, Item: "pen", Price: 1.5},
		},
		{
			description: "instance from list",
			tag:         TagInstance,
			rType:       orderType,
			value:       []interface{}{1, "pen", 2.5},
			expect:      order{ID: 1, Item: "pen", Price: 2.5},
		},
		{
			description: "instance pointer",
			tag:         TagInstance,
			rType:       reflect.TypeOf(&order{}),
			value:       map[string]interface{}{"id": 3},
			expect:      &order{ID: 3},
		},
		{
			description: "instance as is",
			tag:         TagInstance,
			rType:       orderType,
			value:       order{ID: 4},
			expect:      order{ID: 4},
		},
		{
			description: "instance miss",
			tag:         TagInstance,
			rType:       orderType,
			value:       12,
			expect:      nil,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := coercer.Coerce(testCase.tag, testCase.rType, testCase.value)
			require.NoError(t, err)
			if testCase.expect == nil {
				assert.Nil(t, actual)
				return
			}
			assert.Equal(t, testCase.expect, actual)
		})
	}
}

func TestCoercer_ArrayElementPolicy(t *testing.T) {
	coercer := newTestCoercer()
	var testCases = []struct {
		description string
		policy      Policy
		rType       reflect.Type
		value       interface{}
		expect      interface{}
		expectErr   bool
	}{
		{description: "ints default", policy: PolicyDefault, rType: reflect.TypeOf([]int{}), value: []interface{}{"1", "x"}, expect: []int{1, math.MinInt}},
		{description: "ints fail", policy: PolicyFail, rType: reflect.TypeOf([]int{}), value: []interface{}{"1", "x"}, expectErr: true},
		{description: "ints classic", policy: PolicyClassic, rType: reflect.TypeOf([]int{}), value: []interface{}{"1", "x"}, expect: []int{1, math.MinInt}},
		{description: "int8s default", policy: PolicyDefault, rType: reflect.TypeOf([]int8{}), value: []interface{}{"1", "x"}, expect: []int8{1, math.MinInt8}},
		{description: "int16s fail", policy: PolicyFail, rType: reflect.TypeOf([]int16{}), value: []interface{}{"1", "x"}, expectErr: true},
		{description: "pointer ints default", policy: PolicyDefault, rType: reflect.TypeOf([]*int{}), value: []interface{}{"1"}, expect: []*int{intPtr(1)}},
		{description: "int32s are integers", policy: PolicyDefault, rType: reflect.TypeOf([]int32{}), value: []interface{}{"12", "34"}, expect: []int32{12, 34}},
		{description: "bytes from text", policy: PolicyDefault, rType: reflect.TypeOf([]byte{}), value: "ab", expect: []byte("ab")},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := coercer.Apply(testCase.policy, TagArray, testCase.rType, testCase.value)
			if testCase.expectErr {
				assert.ErrorIs(t, err, ErrCoercion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}
}

func TestCoercer_UnexportedFields(t *testing.T) {
	type account struct {
		Name string
		pin  int
	}
	accountType := reflect.TypeOf(account{})
	value := map[string]interface{}{"Name": "ops", "pin": "1234"}

	actual, err := newTestCoercer().CoerceOrFail(TagInstance, accountType, value)
	require.NoError(t, err)
	assert.Equal(t, account{Name: "ops"}, actual)

	coercer := New(WithUnexportedFields(), WithClonePointers())
	actual, err = coercer.CoerceOrFail(TagInstance, accountType, value)
	require.NoError(t, err)
	assert.Equal(t, account{Name: "ops", pin: 1234}, actual)
}

func TestCoercer_Collections(t *testing.T) {
	coercer := newTestCoercer()
	actual, err := coercer.Coerce(TagCollection, reflect.TypeOf(&container.Set{}), []int{1, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, actual.(*container.Set).Len())

	actual, err = coercer.Coerce(TagCollection, reflect.TypeOf(&container.SortedSet{}), []interface{}{3, 1, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2, 3}, actual.(*container.SortedSet).Values())

	list := []interface{}{1}
	actual, err = coercer.Coerce(TagCollection, reflect.TypeOf(list), list)
	require.NoError(t, err)
	assert.Equal(t, reflect.ValueOf(list).Pointer(), reflect.ValueOf(actual).Pointer())
}

func TestCoercer_ArrayRoundTrip(t *testing.T) {
	coercer := newTestCoercer()
	sources := []interface{}{
		[]int{1, -2, 3},
		[]int8{1, -2, 3},
		[]int16{100, -200},
		[]int64{1 << 40, -5},
		[]float32{1.5, -2.25},
		[]float64{3.75, 0},
		[]byte{0, 1, 255},
		[]rune{'a', 'ż'},
	}
	for _, source := range sources {
		t.Run(fmt.Sprintf("%T", source), func(t *testing.T) {
			list := container.List(source)
			actual, err := coercer.Coerce(TagArray, reflect.TypeOf(source), list)
			require.NoError(t, err)
			assert.Equal(t, source, actual)
		})
	}
}

func TestCoercer_Enum(t *testing.T) {
	coercer := newTestCoercer()
	var testCases = []struct {
		description string
		rType       reflect.Type
		value       interface{}
		expect      interface{}
		expectErr   bool
	}{
		{description: "exact name", rType: colorType, value: "GREEN", expect: green},
		{description: "normalized name", rType: colorType, value: "light-blue", expect: lightBlue},
		{description: "ordinal", rType: colorType, value: 1, expect: green},
		{description: "ordinal text projection", rType: colorType, value: raw.JSON("2"), expect: lightBlue},
		{description: "member", rType: colorType, value: red, expect: red},
		{description: "pointer target", rType: reflect.PointerTo(colorType), value: "RED", expect: func() *color { v := red; return &v }()},
		{description: "unknown name", rType: colorType, value: "purple", expectErr: true},
		{description: "unknown ordinal", rType: colorType, value: 7, expectErr: true},
		{description: "ambiguous shape", rType: colorType, value: []int{1}, expectErr: true},
		{description: "not registered", rType: reflect.TypeOf(""), value: "x", expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := coercer.Coerce(TagEnum, testCase.rType, testCase.value)
			if testCase.expectErr {
				assert.ErrorIs(t, err, ErrCoercion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}

	_, err := coercer.Coerce(TagEnum, colorType, "purple")
	assert.ErrorIs(t, err, enum.ErrNoMember)
	_, err = coercer.Coerce(TagEnum, colorType, []int{1})
	assert.ErrorIs(t, err, enum.ErrUnsupportedShape)
}

func TestCoercer_CoerceClassic(t *testing.T) {
	coercer := newTestCoercer()
	identity := []int{1, 2}
	var testCases = []struct {
		description string
		rType       reflect.Type
		value       interface{}
		expect      interface{}
		expectErr   bool
	}{
		{description: "identity", rType: reflect.TypeOf(identity), value: identity, expect: identity},
		{description: "string", rType: reflect.TypeOf(""), value: 42, expect: "42"},
		{description: "int", rType: reflect.TypeOf(0), value: "42", expect: 42},
		{description: "long", rType: reflect.TypeOf(int64(0)), value: "42", expect: int64(42)},
		{description: "short", rType: reflect.TypeOf(int16(0)), value: 42.7, expect: int16(42)},
		{description: "double", rType: reflect.TypeOf(0.0), value: "2.5", expect: 2.5},
		{description: "double error", rType: reflect.TypeOf(0.0), value: "abc", expectErr: true},
		{description: "float", rType: reflect.TypeOf(float32(0)), value: 2, expect: float32(2)},
		{description: "bool", rType: reflect.TypeOf(false), value: "aye", expect: true},
		{description: "enum", rType: colorType, value: "light-blue", expect: lightBlue},
		{description: "typed map", rType: reflect.TypeOf(map[string]int{}), value: map[string]interface{}{"a": "1"}, expect: map[string]int{"a": 1}},
		{description: "list", rType: reflect.TypeOf([]interface{}{}), value: []string{"a"}, expect: []interface{}{"a"}},
		{description: "array", rType: reflect.TypeOf([]int64{}), value: []string{"1", "2"}, expect: []int64{1, 2}},
		{description: "instance", rType: reflect.TypeOf(order{}), value: map[string]interface{}{"id": 3, "item": "cup"}, expect: order{ID: 3, Item: "cup"}},
		{description: "standard library instance", rType: reflect.TypeOf(url.URL{}), value: map[string]interface{}{"Host": "localhost"}, expectErr: true},
		{description: "instance from list", rType: reflect.TypeOf(order{}), value: []interface{}{1}, expectErr: true},
		{description: "unsupported", rType: reflect.TypeOf(make(chan int)), value: 1, expectErr: true},
		{description: "nil", rType: reflect.TypeOf(0), value: nil, expect: nil},
		{description: "nil type", rType: nil, value: 1, expect: 1},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := coercer.CoerceClassic(testCase.rType, testCase.value)
			if testCase.expectErr {
				assert.ErrorIs(t, err, ErrCoercion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}
}

func TestCoercer_ExhaustiveTags(t *testing.T) {
	coercer := newTestCoercer()
	for i := 1; i < TagTotal; i++ {
		tag := Tag(i)
		for _, policy := range []Policy{PolicyDefault, PolicyFail} {
			_, err := coercer.Apply(policy, tag, nil, "1")
			if err != nil {
				assert.NotContains(t, err.Error(), "unknown tag", "%v %v", tag, policy)
			}
		}
	}
	_, err := coercer.Coerce(Tag(TagTotal), nil, "1")
	assert.ErrorContains(t, err, "unknown tag")
}

func TestAs(t *testing.T) {
	coercer := newTestCoercer()

	i, err := As[int](nil, "abc")
	require.NoError(t, err)
	assert.Equal(t, math.MinInt, i)

	_, err = AsOrFail[int](nil, "abc")
	assert.ErrorIs(t, err, ErrCoercion)

	ptr, err := As[*int](coercer, "5")
	require.NoError(t, err)
	require.NotNil(t, ptr)
	assert.Equal(t, 5, *ptr)

	c, err := As[color](coercer, "GREEN")
	require.NoError(t, err)
	assert.Equal(t, green, c)

	o, err := As[order](coercer, map[string]interface{}{"item": "pen"})
	require.NoError(t, err)
	assert.Equal(t, order{Item: "pen"}, o)

	missed, err := As[order](coercer, 12)
	require.NoError(t, err)
	assert.Equal(t, order{}, missed)

	seq, err := As[fmt.Stringer](coercer, 12)
	require.NoError(t, err)
	assert.Equal(t, "12", seq.String())

	actual, err := CoerceTo(reflect.TypeOf(0.0), "1.25")
	require.NoError(t, err)
	assert.Equal(t, 1.25, actual)
}

func TestCoercer_LogsStructuralMiss(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	coercer := New(WithLogger(zap.New(core)))

	actual, err := coercer.Coerce(TagMap, nil, 12)
	require.NoError(t, err)
	assert.Nil(t, actual)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "MAP", logs.All()[0].ContextMap()["tag"])

	_, err = coercer.CoerceOrFail(TagMap, nil, 12)
	assert.Error(t, err)
	assert.Equal(t, 1, logs.Len())
}

func TestCoercer_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)
	coercer := newTestCoercer()
	group := errgroup.Group{}
	for i := 0; i < 32; i++ {
		group.Go(func() error {
			for j := 0; j < 100; j++ {
				text := strconv.Itoa(i*100 + j)
				actual, err := coercer.CoerceOrFail(TagInt, nil, text)
				if err != nil {
					return err
				}
				if actual != i*100+j {
					return fmt.Errorf("expected %v, got %v", text, actual)
				}
				if _, err = coercer.Coerce(TagInstance, reflect.TypeOf(order{}), map[string]interface{}{"id": text}); err != nil {
					return err
				}
				if _, err = coercer.Coerce(TagEnum, colorType, j%3); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, group.Wait())
}

func TestCanonicalType(t *testing.T) {
	coercer := newTestCoercer()
	for i := 1; i < TagTotal; i++ {
		tag := Tag(i)
		rType := CanonicalType(tag)
		if rType == nil {
			continue
		}
		actual, err := coercer.Coerce(tag, rType, "1")
		if err != nil {
			continue
		}
		if actual != nil {
			assert.Equal(t, rType, reflect.TypeOf(actual), tag.String())
		}
	}
	assert.Nil(t, CanonicalType(TagInstance))
}

func intPtr(v int) *int {
	return &v
}

func TestFit(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		rType       reflect.Type
		expect      interface{}
		expectErr   bool
	}{
		{description: "double truncated to int", value: 3.9, rType: reflect.TypeOf(0), expect: 3},
		{description: "int widened to pointer", value: 5, rType: reflect.TypeOf(new(int64)), expect: func() *int64 { v := int64(5); return &v }()},
		{description: "named string", value: "x", rType: reflect.TypeOf(CharSequence("")), expect: CharSequence("x")},
		{description: "text to number", value: "5", rType: reflect.TypeOf(0), expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := fit(testCase.value, testCase.rType)
			if testCase.expectErr {
				assert.ErrorIs(t, err, ErrCoercion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}
}
