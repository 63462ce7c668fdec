// Package analytics derives wellness summaries from check-in records.
//
// Every function is a pure transform over the slice it is given: no I/O, no
// clock reads, no shared state. Callers pass "now" explicitly, so calls are
// safe from any number of goroutines and repeatable in tests.
package analytics
