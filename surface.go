package c2d

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/c2d/alloc"
	"github.com/hupe1980/c2d/internal/conv"
)

// shape is the type-level description of a variant.
type shape struct {
	rows      int // static rows, 0 when dynamic
	cols      int // static cols, 0 when dynamic
	layout    Layout
	align     int
	rowVector bool // size1 is the length and lands in cols
	inline    int  // elements of the inline array, -1 for buffer-backed variants

	// fixedRows and fixedCols mark extents the variant requires to be static.
	fixedRows, fixedCols bool
}

// validate rejects type-level misuse that the compiler cannot.
func (s shape) validate() {
	if s.align < 0 || (s.align != 0 && !conv.IsPowerOfTwo(s.align)) {
		panic(fmt.Sprintf("c2d: alignment %d is not a power of two", s.align))
	}
	if s.rows < 0 || s.cols < 0 {
		panic(fmt.Sprintf("c2d: negative static extent %dx%d", s.rows, s.cols))
	}
	if (s.fixedRows && s.rows == 0) || (s.fixedCols && s.cols == 0) {
		panic("c2d: Dynamic used where a static extent is required")
	}
	if s.rows == 1 && s.layout == ColMajorLayout {
		panic("c2d: a container with one static row must be row-major")
	}
	if s.cols == 1 && s.layout == RowMajorLayout {
		panic("c2d: a container with one static column must be column-major")
	}
	if s.inline >= 0 {
		if s.rows*s.cols != s.inline {
			panic(fmt.Sprintf("c2d: inline array holds %d elements, a %dx%d shape needs %d",
				s.inline, s.rows, s.cols, s.rows*s.cols))
		}
	}
}

// variant is the surface every shape specialisation implements.
// The facade below is written once against it.
type variant[I Index, T any] interface {
	Rows() I
	Cols() I
	Data() []T

	shape() shape
	buffer() *alloc.Buffer[T] // nil for inline variants
	setDims(rows, cols int)   // ignores static extents
}

// resize maps the (size1, size2) convention onto rows and cols.
func resize[I Index, T any](v variant[I, T], size1 I, size2 []I) I {
	s := v.shape()
	rows, cols := int(size1), 1
	if len(size2) > 0 {
		cols = int(size2[0])
	}
	if s.rowVector {
		rows, cols = 1, int(size1)
	}
	return I(resizeTo(v, s, rows, cols))
}

// resizeTo brings v to rows x cols. Same shape with a live buffer is a
// no-op, which also makes self-assignment safe.
func resizeTo[I Index, T any](v variant[I, T], s shape, rows, cols int) int {
	s.validate()
	if debugChecks {
		assertf(rows >= 0 && cols >= 0, "negative size %dx%d", rows, cols)
		assertf(s.rows == 0 || rows == s.rows, "a static size was asked to change: rows %d -> %d", s.rows, rows)
		assertf(s.cols == 0 || cols == s.cols, "a static size was asked to change: cols %d -> %d", s.cols, cols)
	}
	if s.rows != 0 {
		rows = s.rows
	}
	if s.cols != 0 {
		cols = s.cols
	}
	if debugChecks {
		n, err := conv.MulInt(rows, cols)
		assertf(err != nil || int(I(n)) == n, "size %dx%d does not fit in %T", rows, cols, I(0))
	}

	buf := v.buffer()
	if buf == nil {
		return rows * cols
	}
	if buf.Live() && rows == int(v.Rows()) && cols == int(v.Cols()) {
		return rows * cols
	}

	buf.Release()
	v.setDims(0, 0)

	if rows < 0 || cols < 0 {
		panic(&alloc.Error{Op: "resize", Count: min(rows, cols), Align: s.align, Err: alloc.ErrInvalidCount})
	}
	count, err := conv.MulInt(rows, cols)
	if err != nil {
		panic(&alloc.Error{Op: "resize", Count: rows, Align: s.align,
			Err: fmt.Errorf("%w: %d x %d", alloc.ErrSizeOverflow, rows, cols)})
	}
	buf.Allocate(nil, count, s.align)
	v.setDims(rows, cols)
	return count
}

// copyFrom resizes dst to the shape of src and copies in linear storage order.
func copyFrom[I Index, T any](dst, src variant[I, T]) {
	resizeTo(dst, dst.shape(), int(src.Rows()), int(src.Cols()))
	copy(dst.Data(), src.Data())
}

// moveFrom transfers src's buffer and dims to dst and resets src. Inline
// variants have nothing to transfer and copy instead.
func moveFrom[I Index, T any](dst, src variant[I, T]) {
	if dst == src {
		return
	}
	buf := dst.buffer()
	if buf == nil {
		copy(dst.Data(), src.Data())
		return
	}
	rows, cols := int(src.Rows()), int(src.Cols())
	buf.MoveFrom(src.buffer())
	dst.setDims(rows, cols)
	src.setDims(0, 0)
}

func fill[I Index, T any](v variant[I, T], x T) {
	data := v.Data()
	for i := range data {
		data[i] = x
	}
}

func release[I Index, T any](v variant[I, T]) {
	if buf := v.buffer(); buf != nil {
		buf.Release()
		v.setDims(0, 0)
	}
}

// elem returns the address of data[k] without a bounds check.
func elem[T any](data []T, k int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(data)), uintptr(k)*unsafe.Sizeof(zero))) //nolint:gosec // bounds are checked in c2ddebug builds
}

// line returns n elements starting at data[start] without a bounds check.
func line[T any](data []T, start, n int) []T {
	return unsafe.Slice(elem(data, start), n) //nolint:gosec // bounds are checked in c2ddebug builds
}

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("c2d: "+format, args...))
	}
}

func checkIndex2[I Index](i, j I, rows, cols int) {
	assertf(int(i) >= 0 && int(i) < rows && int(j) >= 0 && int(j) < cols,
		"index (%d, %d) out of range for %dx%d", i, j, rows, cols)
}

func checkIndex1[I Index](i I, n int) {
	assertf(int(i) >= 0 && int(i) < n, "index %d out of range [0, %d)", i, n)
}

func checkLine[I Index](k I, lines int) {
	assertf(int(k) >= 0 && int(k) < lines, "line %d out of range [0, %d)", k, lines)
}
