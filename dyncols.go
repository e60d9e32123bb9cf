package c2d

import "github.com/hupe1980/c2d/alloc"

// DynCols is a matrix with a static row count R and a runtime column count.
// Only the column count is stored.
type DynCols[I Index, T any, O Order, A Alignment, R Extent] struct {
	buf  alloc.Buffer[T]
	cols int
}

// Rows returns the static row count.
func (m *DynCols[I, T, O, A, R]) Rows() I { return I(extentOf[R]()) }

// Cols returns the number of columns.
func (m *DynCols[I, T, O, A, R]) Cols() I { return I(m.cols) }

// Size returns the number of elements.
func (m *DynCols[I, T, O, A, R]) Size() I { return I(extentOf[R]() * m.cols) }

// Empty reports whether the matrix holds no elements.
func (m *DynCols[I, T, O, A, R]) Empty() bool { return m.cols == 0 }

// Dims returns rows and cols as ints.
func (m *DynCols[I, T, O, A, R]) Dims() (rows, cols int) { return extentOf[R](), m.cols }

// Layout returns the storage order.
func (m *DynCols[I, T, O, A, R]) Layout() Layout { return layoutOf[O]() }

// Data returns the elements in linear storage order.
func (m *DynCols[I, T, O, A, R]) Data() []T { return m.buf.Slice() }

// Resize sets the column count to size2. size1 must equal R, except with a
// single static row, where the matrix is a row vector and size1 is its
// length.
func (m *DynCols[I, T, O, A, R]) Resize(size1 I, size2 ...I) I {
	return resize[I, T](m, size1, size2)
}

// At returns element (i, j).
func (m *DynCols[I, T, O, A, R]) At(i, j I) T { return *m.Ref(i, j) }

// Set assigns element (i, j).
func (m *DynCols[I, T, O, A, R]) Set(i, j I, v T) { *m.Ref(i, j) = v }

// Ref returns the address of element (i, j).
func (m *DynCols[I, T, O, A, R]) Ref(i, j I) *T {
	rows := extentOf[R]()
	if debugChecks {
		checkIndex2(i, j, rows, m.cols)
	}
	return elem(m.buf.Slice(), layoutOf[O]().Offset(int(i), int(j), rows, m.cols))
}

// Line returns row k of a row-major matrix or column k of a column-major one.
func (m *DynCols[I, T, O, A, R]) Line(k I) []T {
	l, rows := layoutOf[O](), extentOf[R]()
	if debugChecks {
		checkLine(k, l.Lines(rows, m.cols))
	}
	return line(m.buf.Slice(), l.LineStart(int(k), rows, m.cols), l.LineLen(rows, m.cols))
}

// CopyFrom makes m an independent copy of src.
func (m *DynCols[I, T, O, A, R]) CopyFrom(src *DynCols[I, T, O, A, R]) { copyFrom[I, T](m, src) }

// MoveFrom takes over src's buffer and column count, leaving src empty.
func (m *DynCols[I, T, O, A, R]) MoveFrom(src *DynCols[I, T, O, A, R]) { moveFrom[I, T](m, src) }

// Clone returns an independent copy of m.
func (m *DynCols[I, T, O, A, R]) Clone() *DynCols[I, T, O, A, R] {
	c := new(DynCols[I, T, O, A, R])
	c.CopyFrom(m)
	return c
}

// Fill sets every element to v and returns m.
func (m *DynCols[I, T, O, A, R]) Fill(v T) *DynCols[I, T, O, A, R] {
	fill[I, T](m, v)
	return m
}

// SetConstant sets every element to v.
func (m *DynCols[I, T, O, A, R]) SetConstant(v T) { fill[I, T](m, v) }

// Release frees the buffer and resets m to the empty state.
func (m *DynCols[I, T, O, A, R]) Release() { release[I, T](m) }

func (m *DynCols[I, T, O, A, R]) shape() shape {
	rows := extentOf[R]()
	return shape{
		rows:      rows,
		fixedRows: true,
		rowVector: rows == 1,
		layout:    layoutOf[O](),
		align:     alignOf[A](),
		inline:    -1,
	}
}

func (m *DynCols[I, T, O, A, R]) buffer() *alloc.Buffer[T] { return &m.buf }

func (m *DynCols[I, T, O, A, R]) setDims(_, cols int) { m.cols = cols }
