package container

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Comparator returns negative, zero or positive when a is less, equal or greater than b
type Comparator func(a, b interface{}) int

// Compare orders values naturally: nil first, numbers by value, then text, booleans and dates;
// values of different categories are ordered by category, other values by their text form
func Compare(a, b interface{}) int {
	ca, cb := category(a), category(b)
	if ca != cb {
		return ca - cb
	}
	switch ca {
	case nilCategory:
		return 0
	case numberCategory:
		return compareNumbers(a, b)
	case textCategory:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case boolCategory:
		x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case timeCategory:
		return a.(time.Time).Compare(b.(time.Time))
	}
	if ta, tb := fmt.Sprintf("%T", a), fmt.Sprintf("%T", b); ta != tb {
		return strings.Compare(ta, tb)
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

const (
	nilCategory = iota
	numberCategory
	textCategory
	boolCategory
	timeCategory
	otherCategory
)

func category(value interface{}) int {
	switch value.(type) {
	case nil:
		return nilCategory
	case time.Time:
		return timeCategory
	case *apd.Decimal, *big.Int:
		return numberCategory
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return numberCategory
	case reflect.String:
		return textCategory
	case reflect.Bool:
		return boolCategory
	}
	return otherCategory
}

func compareNumbers(a, b interface{}) int {
	x, y := decimalOf(a), decimalOf(b)
	return x.Cmp(y)
}

func decimalOf(value interface{}) *apd.Decimal {
	switch actual := value.(type) {
	case *apd.Decimal:
		if actual == nil {
			return new(apd.Decimal)
		}
		return actual
	case *big.Int:
		if actual == nil {
			return new(apd.Decimal)
		}
		return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(actual), 0)
	}
	rValue := reflect.ValueOf(value)
	ret := new(apd.Decimal)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		ret.SetInt64(rValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ret.Coeff.SetUint64(rValue.Uint())
	default:
		if _, err := ret.SetFloat64(rValue.Float()); err != nil {
			ret.SetInt64(0)
		}
	}
	return ret
}
