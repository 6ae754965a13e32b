package region

import (
	"time"
)

// Layout renders 24-hour, zero-padded "HH:MM:SS dd-MM-yyyy".
const Layout = "15:04:05 02-01-2006"

// Format renders t in loc using [Layout].
func Format(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}

// Format renders t in the entry's zone.
func (e Entry) Format(t time.Time) string {
	return Format(t, e.Location)
}
