package Heat2D

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerSpans(t *testing.T) {
	tm := NewTimer(0.5)
	tm.Start("assemble")
	time.Sleep(time.Millisecond)
	tm.Stop("assemble")
	assert.Greater(t, tm.Elapsed("assemble").Seconds(), 0.)
	assert.Equal(t, time.Duration(0), tm.Elapsed("solve"))

	// Spans accumulate across start/stop pairs.
	before := tm.Elapsed("assemble")
	tm.Start("assemble")
	time.Sleep(time.Millisecond)
	tm.Stop("assemble")
	assert.Greater(t, tm.Elapsed("assemble"), before)
}

func TestTimerSimulatedTime(t *testing.T) {
	tm := NewTimer(0.5)
	assert.Equal(t, 0., tm.CurrentTime())
	tm.IncrementTime()
	tm.IncrementTime()
	assert.InDelta(t, 1., tm.CurrentTime(), 0.000000000001)
}
