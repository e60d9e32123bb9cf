package c2d

import "github.com/hupe1980/c2d/alloc"

// Fixed is an R x C matrix whose elements live inline in the value, so it
// never allocates. B is an array of exactly R*C elements and PB its pointer
// type:
//
//	type Mat23 = c2d.Fixed[int, float64, c2d.RowMajor, c2d.AlignDefault,
//		c2d.D2, c2d.D3, c2d.Array6[float64], *c2d.Array6[float64]]
//
// Struct fields cannot be over-aligned, so only the natural alignment of T
// is guaranteed whatever A says. MoveFrom copies.
type Fixed[I Index, T any, O Order, A Alignment, R, C Extent, B any, PB Inline[B, T]] struct {
	data B
}

// Rows returns R.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Rows() I { return I(extentOf[R]()) }

// Cols returns C.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Cols() I { return I(extentOf[C]()) }

// Size returns R*C.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Size() I { return I(extentOf[R]() * extentOf[C]()) }

// Empty is always false for a valid static shape.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Empty() bool { return extentOf[R]()*extentOf[C]() == 0 }

// Dims returns rows and cols as ints.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Dims() (rows, cols int) { return extentOf[R](), extentOf[C]() }

// Layout returns the storage order.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Layout() Layout { return layoutOf[O]() }

// Data returns the inline elements in linear storage order.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Data() []T {
	if debugChecks {
		m.shape().validate()
	}
	return PB(&m.data).Elems()
}

// Resize validates the shape and returns R*C. The shape cannot change: a
// different request panics in c2ddebug builds and is ignored otherwise.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Resize(size1 I, size2 ...I) I {
	return resize[I, T](m, size1, size2)
}

// At returns element (i, j).
func (m *Fixed[I, T, O, A, R, C, B, PB]) At(i, j I) T { return *m.Ref(i, j) }

// Set assigns element (i, j).
func (m *Fixed[I, T, O, A, R, C, B, PB]) Set(i, j I, v T) { *m.Ref(i, j) = v }

// Ref returns the address of element (i, j).
func (m *Fixed[I, T, O, A, R, C, B, PB]) Ref(i, j I) *T {
	rows, cols := extentOf[R](), extentOf[C]()
	if debugChecks {
		checkIndex2(i, j, rows, cols)
	}
	return elem(m.Data(), layoutOf[O]().Offset(int(i), int(j), rows, cols))
}

// Line returns row k of a row-major matrix or column k of a column-major one.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Line(k I) []T {
	l, rows, cols := layoutOf[O](), extentOf[R](), extentOf[C]()
	if debugChecks {
		checkLine(k, l.Lines(rows, cols))
	}
	return line(m.Data(), l.LineStart(int(k), rows, cols), l.LineLen(rows, cols))
}

// CopyFrom copies the elements of src.
func (m *Fixed[I, T, O, A, R, C, B, PB]) CopyFrom(src *Fixed[I, T, O, A, R, C, B, PB]) {
	copyFrom[I, T](m, src)
}

// MoveFrom copies the elements of src; there is no buffer to transfer.
func (m *Fixed[I, T, O, A, R, C, B, PB]) MoveFrom(src *Fixed[I, T, O, A, R, C, B, PB]) {
	moveFrom[I, T](m, src)
}

// Clone returns a copy of m.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Clone() *Fixed[I, T, O, A, R, C, B, PB] {
	c := new(Fixed[I, T, O, A, R, C, B, PB])
	c.CopyFrom(m)
	return c
}

// Fill sets every element to v and returns m.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Fill(v T) *Fixed[I, T, O, A, R, C, B, PB] {
	fill[I, T](m, v)
	return m
}

// SetConstant sets every element to v.
func (m *Fixed[I, T, O, A, R, C, B, PB]) SetConstant(v T) { fill[I, T](m, v) }

// Release is a no-op; inline storage has nothing to free.
func (m *Fixed[I, T, O, A, R, C, B, PB]) Release() { release[I, T](m) }

func (m *Fixed[I, T, O, A, R, C, B, PB]) shape() shape {
	return shape{
		rows:      extentOf[R](),
		cols:      extentOf[C](),
		fixedRows: true,
		fixedCols: true,
		layout:    layoutOf[O](),
		align:     alignOf[A](),
		inline:    inlineLen[T, B, PB](),
	}
}

func (m *Fixed[I, T, O, A, R, C, B, PB]) buffer() *alloc.Buffer[T] { return nil }

func (m *Fixed[I, T, O, A, R, C, B, PB]) setDims(int, int) {}
