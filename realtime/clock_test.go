package realtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noodlebox/worldclock/realtime"
)

func TestNowTracksWallClock(t *testing.T) {
	c := realtime.NewClock()
	before := time.Now()
	now := c.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestTickerDelivers(t *testing.T) {
	c := realtime.NewClock()
	tk := c.NewTicker(10 * time.Millisecond)
	defer tk.Stop()

	select {
	case tick := <-tk.C():
		assert.WithinDuration(t, time.Now(), tick, time.Second)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "ticker did not fire")
	}
}

func TestTickerReset(t *testing.T) {
	c := realtime.NewClock()
	tk := c.NewTicker(time.Hour)
	defer tk.Stop()

	tk.Reset(5 * time.Millisecond)
	select {
	case <-tk.C():
	case <-time.After(2 * time.Second):
		require.FailNow(t, "ticker did not fire after Reset")
	}
}
