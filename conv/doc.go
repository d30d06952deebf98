// Package conv populates structs, slices and maps from maps, positional lists and other structs.
// Leaf values are converted with the scalar and temporal heuristics, so text such as "12abc"
// or "01/15/2024" populates int and time.Time fields the same way the coercion engine does.
package conv
