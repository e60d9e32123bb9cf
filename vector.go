package c2d

import "github.com/hupe1980/c2d/alloc"

// ColVec is a column vector with a runtime length. It reports (n, 1) and is
// stored column-major.
type ColVec[I Index, T any, A Alignment] struct {
	buf alloc.Buffer[T]
	n   int
}

// Rows returns the length.
func (v *ColVec[I, T, A]) Rows() I { return I(v.n) }

// Cols returns 1.
func (v *ColVec[I, T, A]) Cols() I { return 1 }

// Size returns the length.
func (v *ColVec[I, T, A]) Size() I { return I(v.n) }

// Empty reports whether the vector has no elements.
func (v *ColVec[I, T, A]) Empty() bool { return v.n == 0 }

// Dims returns (n, 1).
func (v *ColVec[I, T, A]) Dims() (rows, cols int) { return v.n, 1 }

// Layout returns ColMajorLayout.
func (v *ColVec[I, T, A]) Layout() Layout { return ColMajorLayout }

// Data returns the elements.
func (v *ColVec[I, T, A]) Data() []T { return v.buf.Slice() }

// Resize sets the length to size1 and returns it. size2 must be 1 when given.
func (v *ColVec[I, T, A]) Resize(size1 I, size2 ...I) I { return resize[I, T](v, size1, size2) }

// At returns element i.
func (v *ColVec[I, T, A]) At(i I) T { return *v.Ref(i) }

// Set assigns element i.
func (v *ColVec[I, T, A]) Set(i I, x T) { *v.Ref(i) = x }

// Ref returns the address of element i.
func (v *ColVec[I, T, A]) Ref(i I) *T {
	if debugChecks {
		checkIndex1(i, v.n)
	}
	return elem(v.buf.Slice(), int(i))
}

// CopyFrom makes v an independent copy of src.
func (v *ColVec[I, T, A]) CopyFrom(src *ColVec[I, T, A]) { copyFrom[I, T](v, src) }

// MoveFrom takes over src's buffer and length, leaving src empty.
func (v *ColVec[I, T, A]) MoveFrom(src *ColVec[I, T, A]) { moveFrom[I, T](v, src) }

// Clone returns an independent copy of v.
func (v *ColVec[I, T, A]) Clone() *ColVec[I, T, A] {
	c := new(ColVec[I, T, A])
	c.CopyFrom(v)
	return c
}

// Fill sets every element to x and returns v.
func (v *ColVec[I, T, A]) Fill(x T) *ColVec[I, T, A] {
	fill[I, T](v, x)
	return v
}

// SetConstant sets every element to x.
func (v *ColVec[I, T, A]) SetConstant(x T) { fill[I, T](v, x) }

// Release frees the buffer and resets v to the empty state.
func (v *ColVec[I, T, A]) Release() { release[I, T](v) }

func (v *ColVec[I, T, A]) shape() shape {
	return shape{cols: 1, layout: ColMajorLayout, align: alignOf[A](), inline: -1}
}

func (v *ColVec[I, T, A]) buffer() *alloc.Buffer[T] { return &v.buf }

func (v *ColVec[I, T, A]) setDims(rows, _ int) { v.n = rows }

// RowVec is a row vector with a runtime length. It reports (1, n) and is
// stored row-major.
type RowVec[I Index, T any, A Alignment] struct {
	buf alloc.Buffer[T]
	n   int
}

// Rows returns 1.
func (v *RowVec[I, T, A]) Rows() I { return 1 }

// Cols returns the length.
func (v *RowVec[I, T, A]) Cols() I { return I(v.n) }

// Size returns the length.
func (v *RowVec[I, T, A]) Size() I { return I(v.n) }

// Empty reports whether the vector has no elements.
func (v *RowVec[I, T, A]) Empty() bool { return v.n == 0 }

// Dims returns (1, n).
func (v *RowVec[I, T, A]) Dims() (rows, cols int) { return 1, v.n }

// Layout returns RowMajorLayout.
func (v *RowVec[I, T, A]) Layout() Layout { return RowMajorLayout }

// Data returns the elements.
func (v *RowVec[I, T, A]) Data() []T { return v.buf.Slice() }

// Resize sets the length to size1 and returns it; size2 is ignored.
func (v *RowVec[I, T, A]) Resize(size1 I, size2 ...I) I { return resize[I, T](v, size1, size2) }

// At returns element i.
func (v *RowVec[I, T, A]) At(i I) T { return *v.Ref(i) }

// Set assigns element i.
func (v *RowVec[I, T, A]) Set(i I, x T) { *v.Ref(i) = x }

// Ref returns the address of element i.
func (v *RowVec[I, T, A]) Ref(i I) *T {
	if debugChecks {
		checkIndex1(i, v.n)
	}
	return elem(v.buf.Slice(), int(i))
}

// CopyFrom makes v an independent copy of src.
func (v *RowVec[I, T, A]) CopyFrom(src *RowVec[I, T, A]) { copyFrom[I, T](v, src) }

// MoveFrom takes over src's buffer and length, leaving src empty.
func (v *RowVec[I, T, A]) MoveFrom(src *RowVec[I, T, A]) { moveFrom[I, T](v, src) }

// Clone returns an independent copy of v.
func (v *RowVec[I, T, A]) Clone() *RowVec[I, T, A] {
	c := new(RowVec[I, T, A])
	c.CopyFrom(v)
	return c
}

// Fill sets every element to x and returns v.
func (v *RowVec[I, T, A]) Fill(x T) *RowVec[I, T, A] {
	fill[I, T](v, x)
	return v
}

// SetConstant sets every element to x.
func (v *RowVec[I, T, A]) SetConstant(x T) { fill[I, T](v, x) }

// Release frees the buffer and resets v to the empty state.
func (v *RowVec[I, T, A]) Release() { release[I, T](v) }

func (v *RowVec[I, T, A]) shape() shape {
	return shape{rows: 1, layout: RowMajorLayout, align: alignOf[A](), rowVector: true, inline: -1}
}

func (v *RowVec[I, T, A]) buffer() *alloc.Buffer[T] { return &v.buf }

func (v *RowVec[I, T, A]) setDims(_, cols int) { v.n = cols }

// FixedCol is a column vector of len(B) inline elements. A does not
// over-align the elements; see Alignment.
type FixedCol[I Index, T any, A Alignment, B any, PB Inline[B, T]] struct {
	data B
}

// Rows returns the length.
func (v *FixedCol[I, T, A, B, PB]) Rows() I { return I(inlineLen[T, B, PB]()) }

// Cols returns 1.
func (v *FixedCol[I, T, A, B, PB]) Cols() I { return 1 }

// Size returns the length.
func (v *FixedCol[I, T, A, B, PB]) Size() I { return I(len(v.Data())) }

// Empty reports whether the vector has no elements.
func (v *FixedCol[I, T, A, B, PB]) Empty() bool { return len(v.Data()) == 0 }

// Dims returns (n, 1).
func (v *FixedCol[I, T, A, B, PB]) Dims() (rows, cols int) { return len(v.Data()), 1 }

// Layout returns ColMajorLayout.
func (v *FixedCol[I, T, A, B, PB]) Layout() Layout { return ColMajorLayout }

// Data returns the inline elements.
func (v *FixedCol[I, T, A, B, PB]) Data() []T {
	if debugChecks {
		v.shape().validate()
	}
	return PB(&v.data).Elems()
}

// Resize validates the length and returns it. The length cannot change.
func (v *FixedCol[I, T, A, B, PB]) Resize(size1 I, size2 ...I) I {
	return resize[I, T](v, size1, size2)
}

// At returns element i.
func (v *FixedCol[I, T, A, B, PB]) At(i I) T { return *v.Ref(i) }

// Set assigns element i.
func (v *FixedCol[I, T, A, B, PB]) Set(i I, x T) { *v.Ref(i) = x }

// Ref returns the address of element i.
func (v *FixedCol[I, T, A, B, PB]) Ref(i I) *T {
	data := v.Data()
	if debugChecks {
		checkIndex1(i, len(data))
	}
	return elem(data, int(i))
}

// CopyFrom copies the elements of src.
func (v *FixedCol[I, T, A, B, PB]) CopyFrom(src *FixedCol[I, T, A, B, PB]) {
	copyFrom[I, T](v, src)
}

// MoveFrom copies the elements of src; there is no buffer to transfer.
func (v *FixedCol[I, T, A, B, PB]) MoveFrom(src *FixedCol[I, T, A, B, PB]) {
	moveFrom[I, T](v, src)
}

// Clone returns a copy of v.
func (v *FixedCol[I, T, A, B, PB]) Clone() *FixedCol[I, T, A, B, PB] {
	c := new(FixedCol[I, T, A, B, PB])
	c.CopyFrom(v)
	return c
}

// Fill sets every element to x and returns v.
func (v *FixedCol[I, T, A, B, PB]) Fill(x T) *FixedCol[I, T, A, B, PB] {
	fill[I, T](v, x)
	return v
}

// SetConstant sets every element to x.
func (v *FixedCol[I, T, A, B, PB]) SetConstant(x T) { fill[I, T](v, x) }

// Release is a no-op.
func (v *FixedCol[I, T, A, B, PB]) Release() { release[I, T](v) }

func (v *FixedCol[I, T, A, B, PB]) shape() shape {
	n := inlineLen[T, B, PB]()
	return shape{rows: n, cols: 1, fixedRows: true, fixedCols: true, layout: ColMajorLayout, align: alignOf[A](), inline: n}
}

func (v *FixedCol[I, T, A, B, PB]) buffer() *alloc.Buffer[T] { return nil }

func (v *FixedCol[I, T, A, B, PB]) setDims(int, int) {}

// FixedRow is a row vector of len(B) inline elements. A does not
// over-align the elements; see Alignment.
type FixedRow[I Index, T any, A Alignment, B any, PB Inline[B, T]] struct {
	data B
}

// Rows returns 1.
func (v *FixedRow[I, T, A, B, PB]) Rows() I { return 1 }

// Cols returns the length.
func (v *FixedRow[I, T, A, B, PB]) Cols() I { return I(inlineLen[T, B, PB]()) }

// Size returns the length.
func (v *FixedRow[I, T, A, B, PB]) Size() I { return I(len(v.Data())) }

// Empty reports whether the vector has no elements.
func (v *FixedRow[I, T, A, B, PB]) Empty() bool { return len(v.Data()) == 0 }

// Dims returns (1, n).
func (v *FixedRow[I, T, A, B, PB]) Dims() (rows, cols int) { return 1, len(v.Data()) }

// Layout returns RowMajorLayout.
func (v *FixedRow[I, T, A, B, PB]) Layout() Layout { return RowMajorLayout }

// Data returns the inline elements.
func (v *FixedRow[I, T, A, B, PB]) Data() []T {
	if debugChecks {
		v.shape().validate()
	}
	return PB(&v.data).Elems()
}

// Resize validates the length (size1) and returns it. The length cannot change.
func (v *FixedRow[I, T, A, B, PB]) Resize(size1 I, size2 ...I) I {
	return resize[I, T](v, size1, size2)
}

// At returns element i.
func (v *FixedRow[I, T, A, B, PB]) At(i I) T { return *v.Ref(i) }

// Set assigns element i.
func (v *FixedRow[I, T, A, B, PB]) Set(i I, x T) { *v.Ref(i) = x }

// Ref returns the address of element i.
func (v *FixedRow[I, T, A, B, PB]) Ref(i I) *T {
	data := v.Data()
	if debugChecks {
		checkIndex1(i, len(data))
	}
	return elem(data, int(i))
}

// CopyFrom copies the elements of src.
func (v *FixedRow[I, T, A, B, PB]) CopyFrom(src *FixedRow[I, T, A, B, PB]) {
	copyFrom[I, T](v, src)
}

// MoveFrom copies the elements of src; there is no buffer to transfer.
func (v *FixedRow[I, T, A, B, PB]) MoveFrom(src *FixedRow[I, T, A, B, PB]) {
	moveFrom[I, T](v, src)
}

// Clone returns a copy of v.
func (v *FixedRow[I, T, A, B, PB]) Clone() *FixedRow[I, T, A, B, PB] {
	c := new(FixedRow[I, T, A, B, PB])
	c.CopyFrom(v)
	return c
}

// Fill sets every element to x and returns v.
func (v *FixedRow[I, T, A, B, PB]) Fill(x T) *FixedRow[I, T, A, B, PB] {
	fill[I, T](v, x)
	return v
}

// SetConstant sets every element to x.
func (v *FixedRow[I, T, A, B, PB]) SetConstant(x T) { fill[I, T](v, x) }

// Release is a no-op.
func (v *FixedRow[I, T, A, B, PB]) Release() { release[I, T](v) }

func (v *FixedRow[I, T, A, B, PB]) shape() shape {
	n := inlineLen[T, B, PB]()
	return shape{rows: 1, cols: n, fixedRows: true, fixedCols: true, layout: RowMajorLayout, align: alignOf[A](), rowVector: true, inline: n}
}

func (v *FixedRow[I, T, A, B, PB]) buffer() *alloc.Buffer[T] { return nil }

func (v *FixedRow[I, T, A, B, PB]) setDims(int, int) {}
