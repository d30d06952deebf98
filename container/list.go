package container

// List returns []interface{} as is, nil as an empty list, otherwise a fresh list of visited elements
func List(value interface{}) []interface{} {
	if actual, ok := value.([]interface{}); ok {
		return actual
	}
	return Values(value)
}

// Flatten returns elements of value with nested slices, arrays and sets expanded in place;
// maps are kept as single elements
func Flatten(value interface{}) []interface{} {
	var ret []interface{}
	_ = Iterate(value)(func(_ int, element interface{}) (bool, error) {
		if isSequence(element) {
			ret = append(ret, Flatten(element)...)
			return true, nil
		}
		ret = append(ret, element)
		return true, nil
	})
	if ret == nil {
		ret = []interface{}{}
	}
	return ret
}

// MapList applies fn to each element of list
func MapList(fn func(interface{}) interface{}, list interface{}) []interface{} {
	ret := make([]interface{}, 0, Len(list))
	_ = Iterate(list)(func(_ int, element interface{}) (bool, error) {
		ret = append(ret, fn(element))
		return true, nil
	})
	return ret
}

// MapListNonNil applies fn to each element of list, nil results are skipped
func MapListNonNil(fn func(interface{}) interface{}, list interface{}) []interface{} {
	ret := make([]interface{}, 0, Len(list))
	_ = Iterate(list)(func(_ int, element interface{}) (bool, error) {
		if mapped := fn(element); mapped != nil {
			ret = append(ret, mapped)
		}
		return true, nil
	})
	return ret
}
