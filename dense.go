package c2d

import "github.com/hupe1980/c2d/alloc"

// Dense is a matrix whose rows and cols are both chosen at runtime.
// The zero value is an empty matrix.
//
//	var m c2d.Dense[int, float64, c2d.RowMajor, c2d.Align64]
//	m.Resize(3, 4)
//	m.SetConstant(7)
//	defer m.Release()
type Dense[I Index, T any, O Order, A Alignment] struct {
	buf  alloc.Buffer[T]
	rows int
	cols int
}

// Rows returns the number of rows.
func (m *Dense[I, T, O, A]) Rows() I { return I(m.rows) }

// Cols returns the number of columns.
func (m *Dense[I, T, O, A]) Cols() I { return I(m.cols) }

// Size returns the number of elements.
func (m *Dense[I, T, O, A]) Size() I { return I(m.rows * m.cols) }

// Empty reports whether the matrix holds no elements.
func (m *Dense[I, T, O, A]) Empty() bool { return m.rows*m.cols == 0 }

// Dims returns rows and cols as ints.
func (m *Dense[I, T, O, A]) Dims() (rows, cols int) { return m.rows, m.cols }

// Layout returns the storage order.
func (m *Dense[I, T, O, A]) Layout() Layout { return layoutOf[O]() }

// Data returns the elements in linear storage order.
func (m *Dense[I, T, O, A]) Data() []T { return m.buf.Slice() }

// Resize changes the shape to size1 x size2 (size2 defaults to 1) and returns
// the element count. Resizing to the current shape keeps the buffer and its
// contents; any other shape discards them.
func (m *Dense[I, T, O, A]) Resize(size1 I, size2 ...I) I {
	return resize[I, T](m, size1, size2)
}

// At returns element (i, j).
func (m *Dense[I, T, O, A]) At(i, j I) T { return *m.Ref(i, j) }

// Set assigns element (i, j).
func (m *Dense[I, T, O, A]) Set(i, j I, v T) { *m.Ref(i, j) = v }

// Ref returns the address of element (i, j).
func (m *Dense[I, T, O, A]) Ref(i, j I) *T {
	if debugChecks {
		checkIndex2(i, j, m.rows, m.cols)
	}
	return elem(m.buf.Slice(), layoutOf[O]().Offset(int(i), int(j), m.rows, m.cols))
}

// Line returns row k of a row-major matrix or column k of a column-major one.
func (m *Dense[I, T, O, A]) Line(k I) []T {
	l := layoutOf[O]()
	if debugChecks {
		checkLine(k, l.Lines(m.rows, m.cols))
	}
	return line(m.buf.Slice(), l.LineStart(int(k), m.rows, m.cols), l.LineLen(m.rows, m.cols))
}

// CopyFrom makes m an independent copy of src.
func (m *Dense[I, T, O, A]) CopyFrom(src *Dense[I, T, O, A]) { copyFrom[I, T](m, src) }

// MoveFrom takes over src's buffer and shape, leaving src empty.
func (m *Dense[I, T, O, A]) MoveFrom(src *Dense[I, T, O, A]) { moveFrom[I, T](m, src) }

// Clone returns an independent copy of m.
func (m *Dense[I, T, O, A]) Clone() *Dense[I, T, O, A] {
	c := new(Dense[I, T, O, A])
	c.CopyFrom(m)
	return c
}

// Fill sets every element to v and returns m.
func (m *Dense[I, T, O, A]) Fill(v T) *Dense[I, T, O, A] {
	fill[I, T](m, v)
	return m
}

// SetConstant sets every element to v.
func (m *Dense[I, T, O, A]) SetConstant(v T) { fill[I, T](m, v) }

// Release frees the buffer and resets m to the empty state.
func (m *Dense[I, T, O, A]) Release() { release[I, T](m) }

func (m *Dense[I, T, O, A]) shape() shape {
	return shape{layout: layoutOf[O](), align: alignOf[A](), inline: -1}
}

func (m *Dense[I, T, O, A]) buffer() *alloc.Buffer[T] { return &m.buf }

func (m *Dense[I, T, O, A]) setDims(rows, cols int) { m.rows, m.cols = rows, cols }
