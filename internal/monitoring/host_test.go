package monitoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectHostStats(t *testing.T) {
	stats, err := CollectHostStats(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.MemoryPercent, 0.0)
	assert.LessOrEqual(t, stats.MemoryPercent, 100.0)
	assert.GreaterOrEqual(t, stats.CPUPercent, 0.0)
}
