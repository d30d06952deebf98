package scalar

import (
	"reflect"
	"unicode/utf8"

	"github.com/viant/coercion/lazy"
)

// NoChar is returned by ToChar when value has no characters
const NoChar rune = 0

// Char converts value to a character: first character of text, 'T'/'F' for bool, code point for numbers
func Char(value interface{}) Result[rune] {
	switch actual := value.(type) {
	case rune:
		return Ok(actual)
	case nil:
		return Fail[rune](conversionError(value, "char", nil))
	case string:
		return firstChar(value, actual)
	case []byte:
		return firstChar(value, string(actual))
	case bool:
		if actual {
			return Ok('T')
		}
		return Ok('F')
	case lazy.Texter:
		return firstChar(value, actual.Text())
	case lazy.Valuer:
		return Char(actual.Value())
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		v, err := Int(value).Value()
		if err != nil {
			return Fail[rune](err)
		}
		return Ok(rune(v))
	case reflect.String:
		return firstChar(value, rValue.String())
	case reflect.Bool:
		return Char(rValue.Bool())
	}
	return firstChar(value, String(value))
}

// CharOr converts value to a character or returns defaultValue
func CharOr(value interface{}, defaultValue rune) rune {
	return Char(value).Or(defaultValue)
}

// ToChar converts value to a character, NoChar is returned if conversion failed
func ToChar(value interface{}) rune {
	return CharOr(value, NoChar)
}

func firstChar(value interface{}, text string) Result[rune] {
	if text == "" {
		return Fail[rune](conversionError(value, "char", nil))
	}
	r, _ := utf8.DecodeRuneInString(text)
	return Ok(r)
}
