package scalar

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubBooler struct{ value bool }

func (s stubBooler) Value() interface{} { return "no" }

func (s stubBooler) Bool() (bool, error) { return s.value, nil }

type describable struct{}

func (describable) String() string { return "yes" }

func TestBool(t *testing.T) {
	testCases := []struct {
		description string
		value       interface{}
		expect      bool
	}{
		{description: "exact true", value: true, expect: true},
		{description: "yes", value: "yes", expect: true},
		{description: "aye", value: "aye", expect: true},
		{description: "ok", value: "ok", expect: true},
		{description: "upper TRUE", value: "TRUE", expect: true},
		{description: "case sensitive NO", value: "NO", expect: false},
		{description: "case sensitive Yes", value: "Yes", expect: false},
		{description: "empty", value: "", expect: false},
		{description: "one", value: "1", expect: true},
		{description: "zero text", value: "0", expect: false},
		{description: "number", value: 5, expect: true},
		{description: "zero", value: 0, expect: false},
		{description: "fraction truncates to zero", value: 0.5, expect: false},
		{description: "empty slice", value: []interface{}{}, expect: false},
		{description: "non empty slice", value: []interface{}{1}, expect: true},
		{description: "non empty array", value: [1]int{0}, expect: true},
		{description: "empty map", value: map[string]int{}, expect: false},
		{description: "lazy", value: stubBooler{value: true}, expect: true},
		{description: "string form", value: describable{}, expect: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expect, ToBool(testCase.value))
		})
	}
}

func TestBoolNil(t *testing.T) {
	assert.False(t, Bool(nil).IsOk())
	assert.True(t, BoolOr(nil, true))
}

func TestTruthTokens(t *testing.T) {
	tokens := TruthTokens()
	sort.Strings(tokens)
	assert.Equal(t, []string{"1", "T", "TRUE", "True", "aye", "ok", "t", "true", "y", "yes"}, tokens)
	tokens[0] = "mutated"
	assert.False(t, IsTruthToken("mutated"))
}
