package alloc

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverError runs fn and returns the *Error it panicked with.
func recoverError(t *testing.T, fn func()) (err *Error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(*Error)
		require.True(t, ok, "panic value %T is not *Error", r)
		err = e
	}()
	fn()
	return nil
}

func addrOf[T any](s []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}

func TestBufferAlignment(t *testing.T) {
	for _, backend := range []Backend{Heap, Mapped} {
		a := New(WithBackend(backend))
		for _, align := range []int{8, 16, 64, 256, 4096} {
			t.Run(fmt.Sprintf("%s/align=%d", backend, align), func(t *testing.T) {
				for count := 1; count <= 40; count++ {
					var buf Buffer[float64]
					buf.Allocate(a, count, align)

					assert.Len(t, buf.Slice(), count)
					assert.Zero(t, addrOf(buf.Slice())%uintptr(align), "count %d", count)
					assert.Zero(t, (cap(buf.Slice())*8)%align, "count %d", count)
					buf.Release()
				}
			})
		}
	}
}

func TestBufferRounding(t *testing.T) {
	a := New()

	var buf Buffer[float32]
	buf.Allocate(a, 3, 64)
	defer buf.Release()

	assert.Len(t, buf.Slice(), 3)
	assert.Equal(t, 16, cap(buf.Slice()))
	assert.Equal(t, 64, buf.Block().Size())
	assert.Equal(t, int64(64), a.Stats().BytesInUse)
}

func TestBufferNaturalAlignment(t *testing.T) {
	var buf Buffer[int32]
	buf.Allocate(New(), 5, 0)
	defer buf.Release()

	assert.Len(t, buf.Slice(), 5)
	assert.Zero(t, addrOf(buf.Slice())%unsafe.Alignof(int32(0)))
	assert.Equal(t, 20, buf.Block().Size())
}

func TestBufferZeroed(t *testing.T) {
	for _, backend := range []Backend{Heap, Mapped} {
		t.Run(backend.String(), func(t *testing.T) {
			var buf Buffer[uint64]
			buf.Allocate(New(WithBackend(backend)), 100, 64)
			defer buf.Release()

			for i, v := range buf.Slice() {
				require.Zero(t, v, "element %d", i)
			}
		})
	}
}

func TestBufferEmpty(t *testing.T) {
	a := New()

	var buf Buffer[float64]
	buf.Allocate(a, 0, 64)

	assert.False(t, buf.Live())
	assert.Nil(t, buf.Slice())
	assert.Zero(t, buf.Len())
	assert.Nil(t, buf.Block())
	assert.Zero(t, a.Stats().Allocs)

	buf.Release()
	buf.Release()
	assert.Zero(t, a.Stats().Frees)
}

func TestBufferReleaseOnce(t *testing.T) {
	a := New()

	var buf Buffer[float64]
	buf.Allocate(a, 10, 64)
	require.True(t, buf.Live())
	block := buf.Block()

	buf.Release()
	buf.Release()
	block.Free()

	s := a.Stats()
	assert.Equal(t, uint64(1), s.Allocs)
	assert.Equal(t, uint64(1), s.Frees)
	assert.Zero(t, s.LiveBlocks)
	assert.Zero(t, s.BytesInUse)
	assert.Equal(t, int64(128), s.PeakBytes)
}

func TestBufferAllocateReleasesPrevious(t *testing.T) {
	a := New()

	var buf Buffer[float64]
	buf.Allocate(a, 10, 64)
	buf.Allocate(a, 20, 64)
	defer buf.Release()

	s := a.Stats()
	assert.Equal(t, uint64(2), s.Allocs)
	assert.Equal(t, uint64(1), s.Frees)
	assert.Equal(t, int64(192), s.BytesInUse)
}

func TestBufferMoveFrom(t *testing.T) {
	a := New()

	var src, dst Buffer[int64]
	src.Allocate(a, 4, 32)
	src.Slice()[2] = 42
	ptr := addrOf(src.Slice())

	dst.MoveFrom(&src)

	assert.False(t, src.Live())
	assert.Nil(t, src.Slice())
	assert.True(t, dst.Live())
	assert.Equal(t, ptr, addrOf(dst.Slice()))
	assert.Equal(t, int64(42), dst.Slice()[2])

	dst.MoveFrom(&dst)
	assert.True(t, dst.Live())
	assert.Equal(t, int64(42), dst.Slice()[2])

	dst.Release()
	assert.Zero(t, a.Stats().LiveBlocks)
}

func TestBufferInvalidAlignment(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	a := New(WithMetricsCollector(metrics))

	for _, align := range []int{3, 12, 100, -8} {
		t.Run(fmt.Sprintf("align=%d", align), func(t *testing.T) {
			err := recoverError(t, func() {
				var buf Buffer[float64]
				buf.Allocate(a, 4, align)
			})
			assert.ErrorIs(t, err, ErrInvalidAlignment)
			assert.Equal(t, align, err.Align)
		})
	}

	assert.Equal(t, uint64(4), a.Stats().Failures)
	assert.Equal(t, int64(4), metrics.GetStats().AllocErrors)
}

func TestBufferNegativeCount(t *testing.T) {
	err := recoverError(t, func() {
		var buf Buffer[float64]
		buf.Allocate(New(), -1, 64)
	})
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestBufferSizeOverflow(t *testing.T) {
	err := recoverError(t, func() {
		var buf Buffer[float64]
		buf.Allocate(New(), int(^uint(0)>>1)/4, 64)
	})
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestBufferMemoryLimit(t *testing.T) {
	a := New(WithMemoryLimit(256))

	var first Buffer[float64]
	first.Allocate(a, 16, 64) // 128 bytes
	defer first.Release()

	err := recoverError(t, func() {
		var second Buffer[float64]
		second.Allocate(a, 32, 64) // 256 bytes
	})
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.True(t, errors.Is(err, ErrMemoryLimitExceeded))
	assert.Equal(t, int64(128), a.Stats().BytesInUse)

	var third Buffer[float64]
	third.Allocate(a, 16, 64)
	third.Release()
}

type particle struct {
	name string
	pos  [3]float64
}

func TestBufferPointerElements(t *testing.T) {
	a := New(WithBackend(Mapped))

	var buf Buffer[particle]
	buf.Allocate(a, 7, 64)
	defer buf.Release()

	require.Len(t, buf.Slice(), 7)
	assert.Equal(t, Heap, buf.Block().Backend())

	for i := range buf.Slice() {
		buf.Slice()[i].name = fmt.Sprintf("p%d", i)
	}
	runtime.GC()
	assert.Equal(t, "p6", buf.Slice()[6].name)
}

func TestBufferZeroSizeElements(t *testing.T) {
	a := New()

	var buf Buffer[struct{}]
	buf.Allocate(a, 5, 64)

	assert.Len(t, buf.Slice(), 5)
	assert.True(t, buf.Live())
	assert.Zero(t, buf.Block().Size())

	buf.Release()
	assert.Zero(t, a.Stats().LiveBlocks)
}

func TestPointerFree(t *testing.T) {
	assert.True(t, pointerFree[float64]())
	assert.True(t, pointerFree[complex128]())
	assert.True(t, pointerFree[[4]int32]())
	assert.True(t, pointerFree[struct{ x, y float32 }]())
	assert.False(t, pointerFree[*float64]())
	assert.False(t, pointerFree[string]())
	assert.False(t, pointerFree[[]float64]())
	assert.False(t, pointerFree[particle]())
	assert.False(t, pointerFree[any]())
}

func BenchmarkBufferAllocate(b *testing.B) {
	for _, backend := range []Backend{Heap, Mapped} {
		a := New(WithBackend(backend))
		for _, count := range []int{16, 1024, 65536} {
			b.Run(fmt.Sprintf("%s/count=%d", backend, count), func(b *testing.B) {
				b.ReportAllocs()
				var buf Buffer[float64]
				for i := 0; i < b.N; i++ {
					buf.Allocate(a, count, 64)
				}
				buf.Release()
			})
		}
	}
}
