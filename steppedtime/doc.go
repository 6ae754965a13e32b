// Package steppedtime provides a clock whose time only moves when told to.
// Tickers created from it fire synchronously from [Clock.Set] and
// [Clock.Step], which makes it a deterministic stand-in for the wall clock
// when driving the sampling loop in tests.
package steppedtime
