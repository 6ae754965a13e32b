package region

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsOrder(t *testing.T) {
	reg, err := NewRegistry(Defaults())
	require.NoError(t, err)

	assert.Equal(t, 5, reg.Len())
	assert.Equal(t, []string{"Tokyo", "Paris", "London", "Johannesburg", "Vancouver"}, reg.Labels())
	assert.Equal(t, "America/Vancouver", reg.At(4).Zone)
	assert.Equal(t, "America/Vancouver", reg.At(4).Location.String())
}

func TestNewRegistryUnknownZone(t *testing.T) {
	regions := append(Defaults(), Region{Label: "Olympus", Zone: "Mars/Olympus_Mons"})

	_, err := NewRegistry(regions)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownZone))
	assert.Contains(t, err.Error(), "Mars/Olympus_Mons")
	assert.Contains(t, err.Error(), "Olympus")
}

func TestNewRegistryRejectsNonIANANames(t *testing.T) {
	for _, zone := range []string{"", "Local"} {
		_, err := NewRegistry([]Region{{Label: "Here", Zone: zone}})
		assert.True(t, errors.Is(err, ErrUnknownZone), "zone %q", zone)
	}
}

func TestNewRegistryEmpty(t *testing.T) {
	_, err := NewRegistry(nil)
	assert.Error(t, err)
}

func TestFormatReferenceInstants(t *testing.T) {
	reg, err := NewRegistry(Defaults())
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want []string
	}{
		{
			name: "june noon utc",
			now:  time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
			want: []string{
				"21:00:00 01-06-2024",
				"14:00:00 01-06-2024",
				"13:00:00 01-06-2024",
				"14:00:00 01-06-2024",
				"05:00:00 01-06-2024",
			},
		},
		{
			name: "december date line",
			now:  time.Date(2024, time.December, 21, 23, 30, 0, 0, time.UTC),
			want: []string{
				"08:30:00 22-12-2024",
				"00:30:00 22-12-2024",
				"23:30:00 21-12-2024",
				"01:30:00 22-12-2024",
				"15:30:00 21-12-2024",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < reg.Len(); i++ {
				assert.Equal(t, tt.want[i], reg.At(i).Format(tt.now), reg.At(i).Label)
			}
		})
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	now := time.Date(2024, time.March, 5, 8, 9, 7, 0, time.UTC)

	assert.Equal(t, Format(now, loc), Format(now, loc))
	assert.Equal(t, "09:09:07 05-03-2024", Format(now, loc))
}

func TestFormatAcrossDaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	// BST starts at 01:00 UTC on the last Sunday of March.
	before := time.Date(2024, time.March, 31, 0, 59, 59, 0, time.UTC)
	assert.Equal(t, "00:59:59 31-03-2024", Format(before, loc))
	assert.Equal(t, "02:00:00 31-03-2024", Format(before.Add(time.Second), loc))
}

func TestFormatParsesBack(t *testing.T) {
	reg, err := NewRegistry(Defaults())
	require.NoError(t, err)
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < reg.Len(); i++ {
		e := reg.At(i)
		parsed, err := time.ParseInLocation(Layout, e.Format(now), e.Location)
		require.NoError(t, err)
		assert.True(t, parsed.Equal(now), e.Label)
	}
}
