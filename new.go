package c2d

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Resizer is implemented by every container type through its pointer.
type Resizer[X any, I Index] interface {
	*X
	Resize(size1 I, size2 ...I) I
}

// New returns a container sized as by Resize(size1, size2...). For matrices
// size1 is rows and size2 cols, for vectors size1 is the length. Elements are
// zero.
//
//	m := c2d.New[c2d.Matrix[float64]](3, 4)
//	v := c2d.New[c2d.Vector[float64]](10)
func New[X any, PX Resizer[X, I], I Index](size1 I, size2 ...I) *X {
	x := new(X)
	PX(x).Resize(size1, size2...)
	return x
}

// Shape is implemented by every container.
type Shape interface {
	Dims() (rows, cols int)
}

// SameShape reports whether a and b have equal rows and cols.
func SameShape(a, b Shape) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return ar == br && ac == bc
}

// Lined is implemented by every container; see Layout.Lines.
type Lined interface {
	Shape
	Layout() Layout
}

// ParallelLines splits the lines of m (rows when row-major, cols when
// column-major) into contiguous ranges and calls fn(ctx, lo, hi) for each on
// at most workers goroutines. Ranges are disjoint, so fn may write to its own
// lines without locking. workers <= 0 uses GOMAXPROCS. The first error
// cancels ctx and is returned.
func ParallelLines(ctx context.Context, m Lined, workers int, fn func(ctx context.Context, lo, hi int) error) error {
	rows, cols := m.Dims()
	return ParallelRange(ctx, m.Layout().Lines(rows, cols), workers, fn)
}

// ParallelRange is ParallelLines over the index range [0, n).
func ParallelRange(ctx context.Context, n, workers int, fn func(ctx context.Context, lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, lo, hi)
		})
	}
	return g.Wait()
}
