// Package temporal converts dynamic values into dates.
//
// Text goes through a cascade: a cheap ISO-8601 structural check guarding a loose ISO-8601 parse,
// then the US delimiter parser (month, day, year[, hour, minute, second]), then a locale aware
// short/medium date parser. Failure at the end of the cascade is returned as ErrDate;
// dates have no default value.
package temporal
