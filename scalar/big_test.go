package scalar

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal(t *testing.T) {
	testCases := []struct {
		description string
		value       interface{}
		expect      string
		expectErr   bool
	}{
		{description: "text", value: "12.340", expect: "12.340"},
		{description: "int", value: 12, expect: "12"},
		{description: "uint", value: uint(7), expect: "7"},
		{description: "float", value: 0.5, expect: "0.5"},
		{description: "big int", value: big.NewInt(1234), expect: "1234"},
		{description: "bad text", value: "12,34", expectErr: true},
		{description: "bool", value: true, expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := Decimal(testCase.value).Value()
			if testCase.expectErr {
				assert.ErrorIs(t, err, ErrConversion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual.String())
		})
	}
}

func TestDecimalExact(t *testing.T) {
	d := apd.New(5, -1)
	actual, err := Decimal(d).Value()
	require.NoError(t, err)
	assert.Same(t, d, actual)
}

func TestBigInt(t *testing.T) {
	testCases := []struct {
		description string
		value       interface{}
		expect      string
		expectErr   bool
	}{
		{description: "text", value: "123456789012345678901234567890", expect: "123456789012345678901234567890"},
		{description: "salvage", value: "id-42", expect: "42"},
		{description: "int", value: -3, expect: "-3"},
		{description: "float truncates", value: 9.99, expect: "9"},
		{description: "decimal integral", value: apd.New(-1999, -3), expect: "-1"},
		{description: "no digits", value: "none", expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := BigInt(testCase.value).Value()
			if testCase.expectErr {
				assert.ErrorIs(t, err, ErrConversion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual.String())
		})
	}
}

func TestNarrowest(t *testing.T) {
	assert.Equal(t, int8(1), Narrowest(1))
	assert.Equal(t, int16(300), Narrowest(300))
	assert.Equal(t, int32(70000), Narrowest(70000))
	assert.Equal(t, int64(1<<40), Narrowest(1<<40))
}
