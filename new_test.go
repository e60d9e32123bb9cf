package c2d

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New[Matrix[float32]](3, 5)
	defer m.Release()
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 5, m.Cols())
	for _, v := range m.Data() {
		require.Zero(t, v)
	}

	v := New[Vector[int]](7)
	defer v.Release()
	assert.Equal(t, 7, v.Size())

	f := New[Mat2[float64]](2, 2)
	assert.Equal(t, 4, f.Size())

	r := New[RowVec[int64, float64, AlignDefault]](int64(3))
	defer r.Release()
	assert.Equal(t, int64(3), r.Cols())
}

func TestParallelLines(t *testing.T) {
	m := New[Matrix[float64]](100, 8)
	defer m.Release()

	var calls atomic.Int32
	err := ParallelLines(context.Background(), m, 4, func(_ context.Context, lo, hi int) error {
		calls.Add(1)
		for i := lo; i < hi; i++ {
			row := m.Line(i)
			for j := range row {
				row[j] = float64(i)
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(4), calls.Load())

	for i := 0; i < 100; i++ {
		assert.InDelta(t, float64(i), m.At(i, 7), 0)
	}
}

func TestParallelLinesColMajor(t *testing.T) {
	var m Dense[int, float64, ColMajor, Align64]
	m.Resize(3, 10)
	defer m.Release()

	var seen atomic.Int32
	err := ParallelLines(context.Background(), &m, 0, func(_ context.Context, lo, hi int) error {
		seen.Add(int32(hi - lo))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(10), seen.Load())
}

func TestParallelRange(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		called := false
		err := ParallelRange(context.Background(), 0, 4, func(context.Context, int, int) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("more workers than items", func(t *testing.T) {
		var total atomic.Int32
		err := ParallelRange(context.Background(), 3, 16, func(_ context.Context, lo, hi int) error {
			total.Add(int32(hi - lo))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, int32(3), total.Load())
	})

	t.Run("error", func(t *testing.T) {
		boom := errors.New("boom")
		err := ParallelRange(context.Background(), 10, 2, func(_ context.Context, lo, _ int) error {
			if lo == 0 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := ParallelRange(ctx, 10, 2, func(context.Context, int, int) error {
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
