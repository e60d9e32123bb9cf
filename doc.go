// Package c2d provides aligned two-dimensional containers for numeric code.
//
// One abstraction covers vectors and matrices. Each dimension is either
// static (a type-level extent such as D3) or chosen at runtime (Dynamic),
// storage is row-major or column-major, and buffers start at a power-of-two
// boundary chosen by an alignment marker.
//
// # Variants
//
// The shape is picked at the type level; every variant exposes the same
// methods (Rows, Cols, Size, Empty, Dims, Layout, Data, Resize, CopyFrom,
// MoveFrom, Clone, Fill, SetConstant, Release, At/Set/Ref and, for matrices,
// Line):
//
//	Fixed[I, T, O, A, R, C, B, PB]  R x C inline, never allocates
//	DynRows[I, T, O, A, C]          runtime rows, static cols
//	DynCols[I, T, O, A, R]          static rows, runtime cols
//	Dense[I, T, O, A]               runtime rows and cols
//	ColVec[I, T, A]                 runtime length, (n, 1), column-major
//	RowVec[I, T, A]                 runtime length, (1, n), row-major
//	FixedCol / FixedRow             inline static vectors
//
// Aliases cover the common cases:
//
//	var r c2d.Vector[float64]  // ColVec[int, float64, Align64]
//	var m c2d.Matrix[float64]  // Dense[int, float64, RowMajor, Align64]
//	var q c2d.Mat3[float64]    // 3x3 inline, row-major
//
// # Lifecycle
//
// The zero value is empty. Resize(size1, size2) sizes a container: size1 is
// rows (or the length of a vector) and size2 cols, defaulting to 1. Resizing
// to the current shape keeps the buffer, its address and its contents, so
// CopyFrom of a container onto itself is safe; any other shape discards the
// old buffer and allocates zeroed memory. Release frees the buffer exactly
// once and leaves the container empty and reusable.
//
//	m.Resize(vertices, 3)
//	m.SetConstant(0)
//	prev.CopyFrom(&m)
//	defer m.Release()
//
// MoveFrom transfers the buffer and leaves the source empty; for inline
// variants it copies. Buffer-backed containers must not be copied by value
// (go vet reports it); use CopyFrom or Clone.
//
// # Checks
//
// Element access does no bounds checking. Build with -tags c2ddebug to assert
// indices, lines and static extents; without the tag a request to change a
// static extent is replaced by the static value. Type-level mistakes that the
// compiler cannot catch (a one-wide static extent stored in the wrong order,
// a non power-of-two alignment, an inline array of the wrong size) panic on
// every Resize. Inline types are usable without a Resize, so a wrong inline
// array is only caught on access in c2ddebug builds; release builds trust
// the type. The debug build also asserts that the element count fits in the
// index type.
//
// # Memory
//
// Buffers come from alloc.Default(). Allocation failure is fatal and panics
// with an *alloc.Error. See package alloc for backends, memory limits,
// logging and metrics.
//
// # Concurrency
//
// Containers are not synchronized. Concurrent reads of an unchanging
// container are safe; writers must partition the data, for example with
// ParallelLines, which hands disjoint line ranges to a bounded worker group.
package c2d
