package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHostPort(t *testing.T) {
	host, port := HostPort(t, "https://127.0.0.1:8443")

	assert.Equal(t, "127.0.0.1", host)
	assert.Equal(t, 8443, port)
}

func TestClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewClock(start)

	assert.Equal(t, start, clock.Now())

	clock.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), clock.Now())

	clock.Set(start)
	assert.Equal(t, start, clock.Now())
}
