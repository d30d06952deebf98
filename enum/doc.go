// Package enum resolves members of Go enumerations (named constants of a defined type) by name,
// by ordinal or by the runtime shape of an arbitrary value.
package enum
