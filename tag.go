package coercion

import (
	"fmt"
	"strings"
)

// Tag identifies semantic coercion target category
type Tag int

const (
	_ Tag = iota // zero value is an invalid tag

	TagString
	TagCharSequence
	TagInt
	TagShort
	TagByte
	TagChar
	TagLong
	TagDouble
	TagFloat
	TagBoolean
	TagDate
	TagCalendar
	TagBigDecimal
	TagBigInt
	TagMap
	TagArray
	TagCollection
	TagInstance
	TagEnum
	TagDefault

	// TagTotal is the number of tags, including the invalid zero value
	TagTotal = int(iota)
)

var tagNames = [TagTotal]string{
	"",
	"STRING",
	"CHAR_SEQUENCE",
	"INT",
	"SHORT",
	"BYTE",
	"CHAR",
	"LONG",
	"DOUBLE",
	"FLOAT",
	"BOOLEAN",
	"DATE",
	"CALENDAR",
	"BIG_DECIMAL",
	"BIG_INT",
	"MAP",
	"ARRAY",
	"COLLECTION",
	"INSTANCE",
	"ENUM",
	"DEFAULT",
}

// IsValid returns true for defined tags
func (t Tag) IsValid() bool {
	return t > 0 && int(t) < TagTotal
}

// IsStructural returns true for tags that synthesize containers or instances
func (t Tag) IsStructural() bool {
	switch t {
	case TagMap, TagArray, TagCollection, TagInstance:
		return true
	}
	return false
}

// IsNumeric returns true for numeric tags
func (t Tag) IsNumeric() bool {
	switch t {
	case TagInt, TagShort, TagByte, TagLong, TagDouble, TagFloat, TagBigDecimal, TagBigInt:
		return true
	}
	return false
}

func (t Tag) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

// ParseTag returns tag for its name, names are case insensitive and '-' can be used instead of '_'
func ParseTag(name string) (Tag, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for i := 1; i < TagTotal; i++ {
		if tagNames[i] == normalized {
			return Tag(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tag: %q", name)
}
