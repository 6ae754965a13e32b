package steppedtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/noodlebox/worldclock/steppedtime"
)

var epoch = time.Date(2024, time.June, 1, 11, 59, 59, 0, time.UTC)

func TestNowIsFrozen(t *testing.T) {
	c := NewClock(epoch)
	assert.True(t, c.Now().Equal(epoch))
	assert.True(t, c.Now().Equal(epoch))
}

func TestStepAndSet(t *testing.T) {
	c := NewClock(epoch)
	c.Step(Second)
	assert.True(t, c.Now().Equal(epoch.Add(Second)))

	later := epoch.Add(Hour)
	c.Set(later)
	assert.True(t, c.Now().Equal(later))
}

func TestTickerFiresOnStep(t *testing.T) {
	c := NewClock(epoch)
	tk := c.NewTicker(Second)
	defer tk.Stop()

	assert.True(t, c.NextAt().Equal(epoch.Add(Second)))

	select {
	case <-tk.C():
		require.FailNow(t, "tick before the clock moved")
	default:
	}

	c.Step(500 * Millisecond)
	select {
	case <-tk.C():
		require.FailNow(t, "tick before the period elapsed")
	default:
	}

	c.Step(500 * Millisecond)
	select {
	case when := <-tk.C():
		assert.True(t, when.Equal(epoch.Add(Second)))
	default:
		require.FailNow(t, "no tick after a full period")
	}
}

func TestTickerDropsUnreadTicks(t *testing.T) {
	c := NewClock(epoch)
	tk := c.NewTicker(Second)
	defer tk.Stop()

	c.Step(Second)
	c.Step(Second)
	c.Step(Second)

	when := <-tk.C()
	assert.True(t, when.Equal(epoch.Add(Second)))
	select {
	case <-tk.C():
		require.FailNow(t, "unread ticks were queued")
	default:
	}
}

func TestTickerStop(t *testing.T) {
	c := NewClock(epoch)
	tk := c.NewTicker(Second)
	tk.Stop()

	assert.True(t, c.NextAt().IsZero())
	c.Step(Minute)
	select {
	case <-tk.C():
		require.FailNow(t, "tick after Stop")
	default:
	}
}

func TestTickerReset(t *testing.T) {
	c := NewClock(epoch)
	tk := c.NewTicker(Hour)
	defer tk.Stop()

	tk.Reset(Second)
	assert.True(t, c.NextAt().Equal(epoch.Add(Second)))
	c.Step(Second)
	select {
	case <-tk.C():
	default:
		require.FailNow(t, "no tick after Reset")
	}
}

func TestNewTickerPanicsOnNonPositive(t *testing.T) {
	c := NewClock(epoch)
	assert.Panics(t, func() { c.NewTicker(0) })
}
