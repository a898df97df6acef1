package cputime

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProcessIsMonotonic(t *testing.T) {
	first, err := Process()
	assert.NoError(t, err)

	sum := 0
	for i := 0; i < 10_000_000; i++ {
		sum += i % 7
	}
	assert.NotZero(t, sum)

	second, err := Process()
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, second, first)
}

func TestSecondsMeasuresBlockOnClock(t *testing.T) {
	ticks := []time.Duration{2 * time.Second, 3500 * time.Millisecond}
	clock := func() (time.Duration, error) {
		tick := ticks[0]
		ticks = ticks[1:]
		return tick, nil
	}

	ran := false
	seconds, err := Seconds(clock, func() error {
		ran = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, ran)
	assert.InDelta(t, 1.5, seconds, 1e-9)
}

func TestSecondsReturnsBlockError(t *testing.T) {
	boom := errors.New("boom")
	clock := func() (time.Duration, error) { return 0, nil }

	_, err := Seconds(clock, func() error { return boom })

	assert.ErrorIs(t, err, boom)
}
