package visibility

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagStartsVisible(t *testing.T) {
	assert.True(t, NewFlag().Visible())
	var zero Flag
	assert.True(t, zero.Visible())
}

func TestToggleTwiceRestores(t *testing.T) {
	f := NewFlag()

	assert.False(t, f.Toggle())
	assert.False(t, f.Visible())

	assert.True(t, f.Toggle())
	assert.True(t, f.Visible())
}

func TestConcurrentToggles(t *testing.T) {
	f := NewFlag()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Toggle()
			_ = f.Visible()
		}()
	}
	wg.Wait()

	// An even number of flips lands back where it started.
	assert.True(t, f.Visible())
}
