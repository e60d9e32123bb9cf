package gonumx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/c2d"
)

func linear(data []float64) {
	for i := range data {
		data[i] = float64(i)
	}
}

func TestMatrix_RowMajor(t *testing.T) {
	m := c2d.New[c2d.Matrix[float64]](2, 3)
	defer m.Release()
	linear(m.Data())

	v, err := Matrix(m)
	require.NoError(t, err)

	r, c := v.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.InDelta(t, 2.0, v.At(0, 2), 0)
	assert.InDelta(t, 3.0, v.At(1, 0), 0)

	d, err := Dense(m)
	require.NoError(t, err)
	d.Set(1, 2, 42)
	assert.InDelta(t, 42.0, m.At(1, 2), 0)
}

func TestMatrix_ColMajor(t *testing.T) {
	var m c2d.Dense[int, float64, c2d.ColMajor, c2d.Align64]
	m.Resize(2, 3)
	defer m.Release()
	linear(m.Data())

	v, err := Matrix(&m)
	require.NoError(t, err)

	r, c := v.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, m.At(i, j), v.At(i, j), 0, "(%d, %d)", i, j)
		}
	}

	_, err = Dense(&m)
	assert.ErrorIs(t, err, ErrLayout)
}

func TestMatrix_Empty(t *testing.T) {
	var m c2d.Matrix[float64]

	_, err := Matrix(&m)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Dense(&m)
	assert.ErrorIs(t, err, ErrEmpty)

	var v c2d.Vector[float64]
	_, err = Vector(&v)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestVector(t *testing.T) {
	v := c2d.New[c2d.Vector[float64]](4)
	defer v.Release()
	v.SetConstant(2)

	vd, err := Vector(v)
	require.NoError(t, err)
	assert.Equal(t, 4, vd.Len())
	assert.InDelta(t, 16.0, mat.Dot(vd, vd), 1e-12)

	m := c2d.New[c2d.Matrix[float64]](2, 2)
	defer m.Release()
	_, err = Vector(m)
	assert.ErrorIs(t, err, ErrNotVector)
}

func TestLoad(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	var m c2d.Dense[int, float64, c2d.ColMajor, c2d.AlignDefault]
	m.Resize(2, 3)
	defer m.Release()

	require.NoError(t, Load(&m, src))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, m.Data())

	view, err := Matrix(&m)
	require.NoError(t, err)
	assert.True(t, mat.Equal(src, view))

	m.Resize(3, 2)
	assert.ErrorIs(t, Load(&m, src), ErrShape)
}

func TestBLAS32(t *testing.T) {
	m := c2d.New[c2d.Matrix[float32]](2, 2)
	defer m.Release()
	copy(m.Data(), []float32{1, 2, 3, 4})

	g, err := General32(m)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Stride)

	x := c2d.New[c2d.Vector[float32]](2)
	defer x.Release()
	x.SetConstant(1)
	y := c2d.New[c2d.Vector[float32]](2)
	defer y.Release()

	xv, n, err := Vector32(x)
	require.NoError(t, err)
	yv, _, err := Vector32(y)
	require.NoError(t, err)

	// y = A * x
	blas32.Gemv(blas.NoTrans, 1, g, xv, 0, yv)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float32{3, 7}, y.Data())
	assert.InDelta(t, 2.0, float64(blas32.Dot(n, xv, xv)), 0)
}
