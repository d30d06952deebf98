package lazy

import (
	"math/big"
	"time"

	"github.com/cockroachdb/apd/v3"
)

type (
	//Valuer materializes a lazy value into a plain Go value
	Valuer interface {
		Value() interface{}
	}

	//Texter returns raw text form of a lazy value
	Texter interface {
		Text() string
	}

	//Inter projects a lazy value into an integer
	Inter interface {
		Int64() (int64, error)
	}

	//Floater projects a lazy value into a floating point number
	Floater interface {
		Float64() (float64, error)
	}

	//Booler projects a lazy value into a boolean
	Booler interface {
		Bool() (bool, error)
	}

	//Timer projects a lazy value into a date
	Timer interface {
		Time() (time.Time, error)
	}

	//Decimaler projects a lazy value into a big decimal
	Decimaler interface {
		Decimal() (*apd.Decimal, error)
	}

	//BigInter projects a lazy value into a big integer
	BigInter interface {
		BigInt() (*big.Int, error)
	}

	//EnumType represents enumeration lookup capabilities used by Enumer
	EnumType interface {
		ByName(name string) (interface{}, error)
		ByOrdinal(ordinal int) (interface{}, error)
	}

	//Enumer projects a lazy value into a member of the supplied enumeration
	Enumer interface {
		Enum(enumType EnumType) (interface{}, error)
	}

	//Value represents a lazy value with all projections
	Value interface {
		Valuer
		Texter
		Inter
		Floater
		Booler
		Timer
		Decimaler
		BigInter
		Enumer
	}
)

// Materialize returns materialized value if value is lazy, otherwise value itself
func Materialize(value interface{}) interface{} {
	if valuer, ok := value.(Valuer); ok {
		return valuer.Value()
	}
	return value
}
