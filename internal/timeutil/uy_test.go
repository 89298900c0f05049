package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampIsMontevideoRFC3339(t *testing.T) {
	ts := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

	got := Stamp(ts)

	assert.Equal(t, "2024-03-01T12:00:00-03:00", got)
	parsed, err := time.Parse(time.RFC3339, got)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}
