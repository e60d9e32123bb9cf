package prom

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/c2d/alloc"
)

func TestCollector_Record(t *testing.T) {
	c, err := NewCollector(nil, "test")
	require.NoError(t, err)

	c.RecordAlloc(alloc.Heap, 128, time.Microsecond, nil)
	c.RecordAlloc(alloc.Heap, 64, time.Microsecond, nil)
	c.RecordAlloc(alloc.Mapped, 4096, time.Millisecond, nil)
	c.RecordAlloc(alloc.Heap, 0, 0, errors.New("boom"))

	assert.InDelta(t, 2, testutil.ToFloat64(c.allocs.WithLabelValues("heap")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.allocs.WithLabelValues("mapped")), 0)
	assert.InDelta(t, 192, testutil.ToFloat64(c.allocBytes.WithLabelValues("heap")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.allocErrors), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(c.liveBlocks.WithLabelValues("heap")), 0)

	c.RecordFree(alloc.Heap, 128, false)
	c.RecordFree(alloc.Mapped, 4096, true)

	assert.InDelta(t, 1, testutil.ToFloat64(c.liveBlocks.WithLabelValues("heap")), 0)
	assert.InDelta(t, 64, testutil.ToFloat64(c.liveBytes.WithLabelValues("heap")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(c.liveBytes.WithLabelValues("mapped")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.frees.WithLabelValues("mapped", "true")), 0)
}

func TestCollector_WithAllocator(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg, "c2d")
	require.NoError(t, err)

	a := alloc.New(alloc.WithMetricsCollector(c))

	var buf alloc.Buffer[float64]
	buf.Allocate(a, 10, 64)

	assert.InDelta(t, 1, testutil.ToFloat64(c.liveBlocks.WithLabelValues("heap")), 0)
	assert.InDelta(t, 128, testutil.ToFloat64(c.liveBytes.WithLabelValues("heap")), 0)

	buf.Release()
	assert.InDelta(t, 0, testutil.ToFloat64(c.liveBlocks.WithLabelValues("heap")), 0)

	n, err := testutil.GatherAndCount(reg, "c2d_alloc_blocks_total", "c2d_alloc_frees_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg, "dup")
	require.NoError(t, err)

	_, err = NewCollector(reg, "dup")
	assert.Error(t, err)
}
