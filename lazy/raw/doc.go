// Package raw provides lazy values backed by unparsed tokens: JSON fragments and bare text.
//
// Projections decode on demand, quoted text goes through the same textual grammar
// (digit salvage, truth tokens, date cascade) as plain strings.
package raw
