package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockAdvancesAndResets(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewClock(start, time.Minute)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(time.Minute), c.Now())
	assert.Equal(t, start.Add(2*time.Minute), c.Now())

	c.Reset()
	assert.Equal(t, start, c.Now())
}
