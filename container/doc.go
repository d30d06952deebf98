// Package container converts values into lists, sets, sorted sets, typed arrays and maps.
//
// Every conversion drives the source through Iterate, which views arrays and slices by index,
// maps by their values and any other non-nil value as a one element sequence.
package container
