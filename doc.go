// Package worldclock shows the current time for a fixed set of regions,
// refreshed once per second, in a full-screen terminal window. A single
// Time Source samples a [Clock] and publishes the latest instant; one
// formatter per region renders it in the region's zone and hands the text
// to the UI goroutine through a dispatcher. Clocks are injectable so that
// the whole pipeline can be driven by a manually stepped clock in tests.
// Implementations are supplied by subpackages.
package worldclock
