// Package region holds the fixed, ordered list of regions shown on screen
// and renders instants in their zones.
package region

import (
	"time"

	"github.com/cockroachdb/errors"
)

// ErrUnknownZone marks a zone identifier the host's time zone database does
// not recognise.
var ErrUnknownZone = errors.New("unknown time zone")

// Region is a label and the IANA zone it is displayed in.
type Region struct {
	Label string
	Zone  string
}

// Defaults is the reference region list, in display order.
func Defaults() []Region {
	return []Region{
		{Label: "Tokyo", Zone: "Asia/Tokyo"},
		{Label: "Paris", Zone: "Europe/Paris"},
		{Label: "London", Zone: "Europe/London"},
		{Label: "Johannesburg", Zone: "Africa/Johannesburg"},
		{Label: "Vancouver", Zone: "America/Vancouver"},
	}
}

// Entry is a Region with its zone resolved.
type Entry struct {
	Region
	Location *time.Location
}

// Registry is an immutable, ordered list of resolved regions.
type Registry struct {
	entries []Entry
}

// NewRegistry resolves every zone in regions. The first zone that cannot be
// loaded aborts construction with an error marked [ErrUnknownZone] naming
// the identifier.
func NewRegistry(regions []Region) (*Registry, error) {
	if len(regions) == 0 {
		return nil, errors.New("region list is empty")
	}
	entries := make([]Entry, 0, len(regions))
	for _, r := range regions {
		loc, err := loadZone(r.Zone)
		if err != nil {
			return nil, errors.Wrapf(err, "region %q", r.Label)
		}
		entries = append(entries, Entry{Region: r, Location: loc})
	}
	return &Registry{entries: entries}, nil
}

func loadZone(zone string) (*time.Location, error) {
	// LoadLocation maps "" and "UTC" to UTC and "Local" to the host zone;
	// none of those are IANA identifiers.
	if zone == "" || zone == "Local" {
		return nil, errors.Mark(errors.Newf("zone %q", zone), ErrUnknownZone)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "zone %q", zone), ErrUnknownZone)
	}
	return loc, nil
}

// Len returns the number of regions.
func (r *Registry) Len() int { return len(r.entries) }

// At returns the i-th region.
func (r *Registry) At(i int) Entry { return r.entries[i] }

// Labels returns the region labels in display order.
func (r *Registry) Labels() []string {
	labels := make([]string, len(r.entries))
	for i, e := range r.entries {
		labels[i] = e.Label
	}
	return labels
}
