package container

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"

	"github.com/viant/xunsafe"
)

var structCache = newSyncMap[reflect.Type, *xunsafe.Struct]()

// Fields returns visitor of exported struct fields keyed by json name (or field name)
func Fields(value interface{}) (Visitor[string, interface{}], error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if reflect.ValueOf(value).IsNil() || valueType.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	xStruct := structCache.getOrCreate(structType, func() *xunsafe.Struct {
		return xunsafe.NewStruct(structType)
	})
	ptr := xunsafe.AsPointer(value)
	return func(f func(key string, element interface{}) (bool, error)) error {
		for i := range xStruct.Fields {
			xField := &xStruct.Fields[i]
			if !token.IsExported(xField.Name) {
				continue
			}
			name := xField.Name
			if jsonName, _, _ := strings.Cut(xField.Tag.Get("json"), ","); jsonName == "-" {
				continue
			} else if jsonName != "" {
				name = jsonName
			}
			continueVisit, err := f(name, xField.Value(ptr))
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}
