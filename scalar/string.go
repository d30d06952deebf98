package scalar

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/viant/coercion/lazy"
)

// String returns string form of value, nil is converted to an empty string
func String(value interface{}) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case string:
		return actual
	case []byte:
		return string(actual)
	case time.Time:
		return actual.Format(time.RFC3339Nano)
	case *time.Time:
		if actual == nil {
			return ""
		}
		return actual.Format(time.RFC3339Nano)
	case lazy.Texter:
		return actual.Text()
	case fmt.Stringer:
		return actual.String()
	case error:
		return actual.Error()
	case bool:
		return strconv.FormatBool(actual)
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(actual), 'f', -1, 32)
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.String:
		return rValue.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rValue.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 64)
	case reflect.Ptr:
		if rValue.IsNil() {
			return ""
		}
	}
	return fmt.Sprint(value)
}
