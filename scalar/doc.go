// Package scalar converts arbitrary dynamic values into primitive-like targets:
// integers of every width, floating point numbers, booleans, characters, big integers and big decimals.
//
// Every converter returns a Result that carries either the converted value or the reason of failure.
// Integer converters fall back to a digit salvage heuristic for text that does not parse strictly;
// IntOr style helpers unwrap a Result with a caller supplied default, ToInt style helpers with the
// target type minimum value (the sentinel).
package scalar
