package alloc

import (
	"fmt"
	"reflect"
	"sync"
	"time"
	"unsafe"

	"github.com/hupe1980/c2d/internal/conv"
)

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks checker reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is an owned, aligned run of elements of type T.
// The zero value is an empty buffer that owns nothing.
type Buffer[T any] struct {
	_     noCopy
	data  []T
	block *Block
}

// Allocate releases the current contents and allocates count zeroed elements
// aligned to align bytes (0 for the natural alignment of T) from a, or from
// Default() when a is nil. count == 0 leaves the buffer empty without
// allocating. Failures are fatal (see package documentation).
func (b *Buffer[T]) Allocate(a *Allocator, count, align int) {
	b.Release()
	if a == nil {
		a = Default()
	}
	b.data, b.block = allocate[T](a, count, align)
}

// Slice returns the elements. Its length is the requested count; its
// capacity covers the alignment padding.
func (b *Buffer[T]) Slice() []T {
	return b.data
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Live reports whether the buffer currently owns an allocation.
func (b *Buffer[T]) Live() bool {
	return b.block != nil
}

// Block returns the underlying block, or nil when empty.
func (b *Buffer[T]) Block() *Block {
	return b.block
}

// Release frees the allocation and empties the buffer. Releasing an empty
// buffer is a no-op, so every allocation is freed exactly once.
func (b *Buffer[T]) Release() {
	if b.block != nil {
		b.block.Free()
	}
	b.data, b.block = nil, nil
}

// MoveFrom releases b's contents and takes ownership of src's allocation,
// leaving src empty. Moving a buffer onto itself is a no-op.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.Release()
	b.data, b.block = src.data, src.block
	src.data, src.block = nil, nil
}

// allocate is the typed allocation path shared by all buffers.
func allocate[T any](a *Allocator, count, align int) ([]T, *Block) {
	a.checkAlign("allocate", count, align)
	if count < 0 {
		a.fail(&Error{Op: "allocate", Count: count, Align: align, Err: ErrInvalidCount})
	}
	if count == 0 {
		return nil, nil
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	eff := max(align, int(unsafe.Alignof(zero)))

	bytes, err := conv.MulInt(count, size)
	if err != nil {
		a.fail(&Error{Op: "allocate", Count: count, Align: align, Err: fmt.Errorf("%w: %v", ErrSizeOverflow, err)})
	}
	rounded, err := conv.RoundUp(bytes, eff)
	if err != nil {
		a.fail(&Error{Op: "allocate", Count: count, Align: align, Err: fmt.Errorf("%w: %v", ErrSizeOverflow, err)})
	}

	start := time.Now()

	// Zero-size elements need no memory at all, only accounting.
	if size == 0 {
		block := a.newBlock(Heap, 0, nil)
		a.metrics.RecordAlloc(Heap, 0, time.Since(start), nil)
		return make([]T, count), block
	}

	capElems := rounded / size

	if !pointerFree[T]() {
		if err := a.budget.AcquireMemory(int64(rounded)); err != nil {
			a.fail(&Error{Op: "allocate", Count: count, Align: align, Err: fmt.Errorf("%w: %d bytes requested, %d in use, limit %d",
				ErrMemoryLimitExceeded, rounded, a.budget.MemoryUsage(), a.budget.MemoryLimit())})
		}
		data, aligned := typedAligned[T](capElems, eff)
		if !aligned {
			a.log().Warn("alignment degraded for pointer-carrying element type",
				"type", reflect.TypeFor[T]().String(),
				"align", eff,
			)
		}
		block := a.newBlock(Heap, rounded, nil)
		a.metrics.RecordAlloc(Heap, rounded, time.Since(start), nil)
		return data[:count], block
	}

	raw, block := a.acquire("allocate", count, rounded, eff, a.backend)
	a.metrics.RecordAlloc(block.backend, rounded, time.Since(start), nil)
	ptr := (*T)(unsafe.Pointer(unsafe.SliceData(raw))) //nolint:gosec // raw is aligned for T and pointer-free
	return unsafe.Slice(ptr, capElems)[:count], block
}

// typedAligned allocates n elements of a pointer-carrying type on the heap so
// the collector keeps scanning them, then searches for an element whose
// address meets align. The residues of base+k*size modulo align repeat after
// at most align steps, so align spare elements bound the search. When no
// element qualifies, the natural alignment is returned.
func typedAligned[T any](n, align int) ([]T, bool) {
	var zero T
	size := uintptr(unsafe.Sizeof(zero))
	buf := make([]T, n+align)
	base := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // address arithmetic only
	mask := uintptr(align - 1)
	for k := 0; k < align; k++ {
		if (base+uintptr(k)*size)&mask == 0 {
			return buf[k : k+n : k+n], true
		}
	}
	return buf[:n:n], false
}

var pointerFreeCache sync.Map // reflect.Type -> bool

// pointerFree reports whether values of T contain no Go pointers, which makes
// them safe to place in raw byte memory.
func pointerFree[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := pointerFreeCache.Load(t); ok {
		return v.(bool)
	}
	free := !hasPointers(t)
	pointerFreeCache.Store(t, free)
	return free
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
