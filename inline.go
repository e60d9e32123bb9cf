package c2d

// Inline is the constraint on the pointer to an inline storage array B.
type Inline[B, T any] interface {
	*B
	Elems() []T
}

// Inline storage arrays for the fully static variants. Any array type with
// an Elems method can be used; these cover the common shapes.
type (
	Array1[T any]  [1]T
	Array2[T any]  [2]T
	Array3[T any]  [3]T
	Array4[T any]  [4]T
	Array5[T any]  [5]T
	Array6[T any]  [6]T
	Array7[T any]  [7]T
	Array8[T any]  [8]T
	Array9[T any]  [9]T
	Array12[T any] [12]T
	Array16[T any] [16]T
)

func (a *Array1[T]) Elems() []T  { return a[:] }
func (a *Array2[T]) Elems() []T  { return a[:] }
func (a *Array3[T]) Elems() []T  { return a[:] }
func (a *Array4[T]) Elems() []T  { return a[:] }
func (a *Array5[T]) Elems() []T  { return a[:] }
func (a *Array6[T]) Elems() []T  { return a[:] }
func (a *Array7[T]) Elems() []T  { return a[:] }
func (a *Array8[T]) Elems() []T  { return a[:] }
func (a *Array9[T]) Elems() []T  { return a[:] }
func (a *Array12[T]) Elems() []T { return a[:] }
func (a *Array16[T]) Elems() []T { return a[:] }

func inlineLen[T, B any, PB Inline[B, T]]() int {
	var b B
	return len(PB(&b).Elems())
}
