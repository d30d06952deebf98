// Package lazy defines projection capabilities of values that defer their materialization.
// A lazy value is produced by an external source (parser, row reader) and exposes typed views
// (date, big number, enum member) instead of one fixed runtime type.
// Converters prefer these projections over generic text or number parsing.
package lazy
