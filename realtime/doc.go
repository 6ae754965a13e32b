// Package realtime provides a thin wrapper around the [time] package that
// satisfies [github.com/noodlebox/worldclock.Clock]. [Ticker] overrides the
// C field of [time.Ticker] with a method, to work around the limitation of
// interfaces not being able to specify fields.
package realtime
