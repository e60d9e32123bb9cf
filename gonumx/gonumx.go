// Package gonumx exposes c2d containers to gonum without copying.
//
// The views share memory with the container: writes through either side are
// visible to the other, and a view must not be used after the container is
// resized, moved from or released.
package gonumx

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/c2d"
)

var (
	// ErrEmpty is returned for containers without elements; gonum has no empty matrices.
	ErrEmpty = errors.New("gonumx: empty container")

	// ErrLayout is returned when a view needs row-major storage.
	ErrLayout = errors.New("gonumx: container is not row-major")

	// ErrNotVector is returned when neither dimension is 1.
	ErrNotVector = errors.New("gonumx: container is not a vector")

	// ErrShape is returned when source and destination shapes differ.
	ErrShape = errors.New("gonumx: shape mismatch")
)

// Container is the read side every c2d container implements.
type Container[T any] interface {
	Dims() (rows, cols int)
	Layout() c2d.Layout
	Data() []T
}

// Matrix returns a view of m. Row-major containers map to a *mat.Dense,
// column-major ones to the transpose of a *mat.Dense over the same data.
func Matrix(m Container[float64]) (mat.Matrix, error) {
	rows, cols := m.Dims()
	if rows*cols == 0 {
		return nil, ErrEmpty
	}
	if m.Layout() == c2d.ColMajorLayout {
		return mat.NewDense(cols, rows, m.Data()).T(), nil
	}
	return mat.NewDense(rows, cols, m.Data()), nil
}

// Dense returns a *mat.Dense view of a row-major container.
func Dense(m Container[float64]) (*mat.Dense, error) {
	rows, cols := m.Dims()
	if rows*cols == 0 {
		return nil, ErrEmpty
	}
	if m.Layout() != c2d.RowMajorLayout {
		return nil, ErrLayout
	}
	return mat.NewDense(rows, cols, m.Data()), nil
}

// Vector returns a *mat.VecDense view of a container with one row or one
// column. Both layouts store a vector contiguously.
func Vector(v Container[float64]) (*mat.VecDense, error) {
	rows, cols := v.Dims()
	if rows*cols == 0 {
		return nil, ErrEmpty
	}
	if rows != 1 && cols != 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotVector, rows, cols)
	}
	return mat.NewVecDense(rows*cols, v.Data()), nil
}

// Load copies src into dst, which must already have src's shape. dst's
// storage order is respected.
func Load(dst Container[float64], src mat.Matrix) error {
	rows, cols := dst.Dims()
	sr, sc := src.Dims()
	if rows != sr || cols != sc {
		return fmt.Errorf("%w: have %dx%d, source is %dx%d", ErrShape, rows, cols, sr, sc)
	}
	l, data := dst.Layout(), dst.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[l.Offset(i, j, rows, cols)] = src.At(i, j)
		}
	}
	return nil
}

// General32 returns a blas32.General view of a row-major float32 container.
func General32(m Container[float32]) (blas32.General, error) {
	rows, cols := m.Dims()
	if rows*cols == 0 {
		return blas32.General{}, ErrEmpty
	}
	if m.Layout() != c2d.RowMajorLayout {
		return blas32.General{}, ErrLayout
	}
	return blas32.General{Rows: rows, Cols: cols, Stride: cols, Data: m.Data()}, nil
}

// Vector32 returns a unit-stride blas32.Vector view and its length.
func Vector32(v Container[float32]) (blas32.Vector, int, error) {
	rows, cols := v.Dims()
	if rows*cols == 0 {
		return blas32.Vector{}, 0, ErrEmpty
	}
	if rows != 1 && cols != 1 {
		return blas32.Vector{}, 0, fmt.Errorf("%w: %dx%d", ErrNotVector, rows, cols)
	}
	return blas32.Vector{Inc: 1, Data: v.Data()}, rows * cols, nil
}
