package c2d

import "github.com/hupe1980/c2d/alloc"

// DynRows is a matrix with a runtime row count and a static column count C,
// for example one row per mesh vertex and one column per variable.
// Only the row count is stored.
type DynRows[I Index, T any, O Order, A Alignment, C Extent] struct {
	buf  alloc.Buffer[T]
	rows int
}

// Rows returns the number of rows.
func (m *DynRows[I, T, O, A, C]) Rows() I { return I(m.rows) }

// Cols returns the static column count.
func (m *DynRows[I, T, O, A, C]) Cols() I { return I(extentOf[C]()) }

// Size returns the number of elements.
func (m *DynRows[I, T, O, A, C]) Size() I { return I(m.rows * extentOf[C]()) }

// Empty reports whether the matrix holds no elements.
func (m *DynRows[I, T, O, A, C]) Empty() bool { return m.rows == 0 }

// Dims returns rows and cols as ints.
func (m *DynRows[I, T, O, A, C]) Dims() (rows, cols int) { return m.rows, extentOf[C]() }

// Layout returns the storage order.
func (m *DynRows[I, T, O, A, C]) Layout() Layout { return layoutOf[O]() }

// Data returns the elements in linear storage order.
func (m *DynRows[I, T, O, A, C]) Data() []T { return m.buf.Slice() }

// Resize sets the row count to size1. size2 must equal C when given.
func (m *DynRows[I, T, O, A, C]) Resize(size1 I, size2 ...I) I {
	return resize[I, T](m, size1, size2)
}

// At returns element (i, j).
func (m *DynRows[I, T, O, A, C]) At(i, j I) T { return *m.Ref(i, j) }

// Set assigns element (i, j).
func (m *DynRows[I, T, O, A, C]) Set(i, j I, v T) { *m.Ref(i, j) = v }

// Ref returns the address of element (i, j).
func (m *DynRows[I, T, O, A, C]) Ref(i, j I) *T {
	cols := extentOf[C]()
	if debugChecks {
		checkIndex2(i, j, m.rows, cols)
	}
	return elem(m.buf.Slice(), layoutOf[O]().Offset(int(i), int(j), m.rows, cols))
}

// Line returns row k of a row-major matrix or column k of a column-major one.
func (m *DynRows[I, T, O, A, C]) Line(k I) []T {
	l, cols := layoutOf[O](), extentOf[C]()
	if debugChecks {
		checkLine(k, l.Lines(m.rows, cols))
	}
	return line(m.buf.Slice(), l.LineStart(int(k), m.rows, cols), l.LineLen(m.rows, cols))
}

// CopyFrom makes m an independent copy of src.
func (m *DynRows[I, T, O, A, C]) CopyFrom(src *DynRows[I, T, O, A, C]) { copyFrom[I, T](m, src) }

// MoveFrom takes over src's buffer and row count, leaving src empty.
func (m *DynRows[I, T, O, A, C]) MoveFrom(src *DynRows[I, T, O, A, C]) { moveFrom[I, T](m, src) }

// Clone returns an independent copy of m.
func (m *DynRows[I, T, O, A, C]) Clone() *DynRows[I, T, O, A, C] {
	c := new(DynRows[I, T, O, A, C])
	c.CopyFrom(m)
	return c
}

// Fill sets every element to v and returns m.
func (m *DynRows[I, T, O, A, C]) Fill(v T) *DynRows[I, T, O, A, C] {
	fill[I, T](m, v)
	return m
}

// SetConstant sets every element to v.
func (m *DynRows[I, T, O, A, C]) SetConstant(v T) { fill[I, T](m, v) }

// Release frees the buffer and resets m to the empty state.
func (m *DynRows[I, T, O, A, C]) Release() { release[I, T](m) }

func (m *DynRows[I, T, O, A, C]) shape() shape {
	return shape{cols: extentOf[C](), fixedCols: true, layout: layoutOf[O](), align: alignOf[A](), inline: -1}
}

func (m *DynRows[I, T, O, A, C]) buffer() *alloc.Buffer[T] { return &m.buf }

func (m *DynRows[I, T, O, A, C]) setDims(rows, _ int) { m.rows = rows }
