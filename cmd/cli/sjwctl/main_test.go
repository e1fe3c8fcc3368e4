package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSince(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	since, err := parseSince("", now)
	require.NoError(t, err)
	assert.Equal(t, now, since)

	since, err = parseSince("10m", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-10*time.Minute), since)

	since, err = parseSince("2024-05-31T08:30:00Z", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 31, 8, 30, 0, 0, time.UTC), since)

	_, err = parseSince("yesterday", now)
	assert.Error(t, err)
}
