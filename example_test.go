package c2d_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/c2d"
)

// Example_matrix demonstrates sizing, filling and reading a matrix.
func Example_matrix() {
	m := c2d.New[c2d.Matrix[float64]](2, 3)
	defer m.Release()

	for i, v := range []float64{0, 1, 2, 3, 4, 5} {
		m.Data()[i] = v
	}

	fmt.Println(m.Rows(), m.Cols(), m.Size())
	fmt.Println(m.At(1, 0), m.Line(1))
	// Output:
	// 2 3 6
	// 3 [3 4 5]
}

// Example_columnMajor shows the same linear data read through column-major order.
func Example_columnMajor() {
	var m c2d.Dense[int, float64, c2d.ColMajor, c2d.Align64]
	m.Resize(2, 3)
	defer m.Release()

	for i := range m.Data() {
		m.Data()[i] = float64(i)
	}

	fmt.Println(m.At(1, 0), m.At(0, 1), m.Line(2))
	// Output: 1 2 [4 5]
}

// Example_static demonstrates a 3x3 matrix stored inline.
func Example_static() {
	var r c2d.Mat3[float64]
	r.Set(0, 0, 1)
	r.Set(1, 1, 1)
	r.Set(2, 2, 1)

	var q c2d.Mat3[float64]
	q.MoveFrom(&r) // inline storage: a copy

	fmt.Println(q.Data(), r.At(2, 2))
	// Output: [1 0 0 0 1 0 0 0 1] 1
}

// boundary mirrors how a solver keeps per-vertex state in c2d containers.
type boundary struct {
	residual  c2d.DynRows[int, float64, c2d.RowMajor, c2d.Align64, c2d.D3]
	traction  c2d.PassiveMatrix
	tractionN c2d.PassiveMatrix
}

func newBoundary(vertices int, fsi bool) *boundary {
	b := &boundary{}
	b.residual.Resize(vertices, 3)
	b.residual.SetConstant(0)

	// Companion buffers exist only when the coupling needs them.
	if fsi {
		b.traction.Resize(vertices, 3)
		b.traction.SetConstant(0)
		b.tractionN.Resize(vertices, 3)
		b.tractionN.SetConstant(0)
	}
	return b
}

func (b *boundary) release() {
	b.residual.Release()
	b.traction.Release()
	b.tractionN.Release()
}

// Example_boundaryVariable demonstrates the solver usage pattern: size by a
// runtime vertex count and a static variable count, keep the previous time
// step as a copy, clear a buffer and walk rows taking element references.
func Example_boundaryVariable() {
	b := newBoundary(4, true)
	defer b.release()

	ctx := context.Background()
	err := c2d.ParallelLines(ctx, &b.traction, 2, func(_ context.Context, lo, hi int) error {
		for v := lo; v < hi; v++ {
			for k := range b.traction.Line(v) {
				*b.traction.Ref(v, k) = float64(v)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	b.tractionN.CopyFrom(&b.traction) // previous step
	b.traction.SetConstant(0)

	fmt.Println(b.tractionN.Line(3), b.traction.At(3, 0))
	fmt.Println(c2d.SameShape(&b.residual, &b.traction))
	// Output:
	// [3 3 3] 0
	// true
}
