//go:build c2ddebug

package c2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugStaticResize(t *testing.T) {
	var f Mat3[float64]
	assert.PanicsWithValue(t, "c2d: a static size was asked to change: rows 3 -> 4", func() {
		f.Resize(4, 3)
	})
	assert.PanicsWithValue(t, "c2d: a static size was asked to change: cols 3 -> 2", func() {
		f.Resize(3, 2)
	})
	assert.NotPanics(t, func() {
		f.Resize(3, 3)
	})

	var m DynRows[int, float64, RowMajor, Align64, D3]
	defer m.Release()
	assert.Panics(t, func() {
		m.Resize(5)
	})

	var v FixedRow[int, float64, AlignDefault, Array4[float64], *Array4[float64]]
	assert.Panics(t, func() {
		v.Resize(3)
	})
}

func TestDebugIndexChecks(t *testing.T) {
	m := New[Matrix[float64]](2, 3)
	defer m.Release()

	assert.PanicsWithValue(t, "c2d: index (2, 0) out of range for 2x3", func() {
		m.At(2, 0)
	})
	assert.Panics(t, func() {
		m.Set(0, 3, 1)
	})
	assert.Panics(t, func() {
		m.At(-1, 0)
	})
	assert.PanicsWithValue(t, "c2d: line 2 out of range [0, 2)", func() {
		m.Line(2)
	})

	v := New[Vector[float64]](4)
	defer v.Release()
	assert.PanicsWithValue(t, "c2d: index 4 out of range [0, 4)", func() {
		v.At(4)
	})

	var f Vec2[float64]
	assert.Panics(t, func() {
		f.Ref(2)
	})
}

func TestDebugNegativeSize(t *testing.T) {
	var m Matrix[float64]
	assert.PanicsWithValue(t, "c2d: negative size -1x2", func() {
		m.Resize(-1, 2)
	})
}

func TestDebugInlineShapeOnAccess(t *testing.T) {
	var m Fixed[int, float64, RowMajor, AlignDefault, D2, D3, Array4[float64], *Array4[float64]]
	msg := "c2d: inline array holds 4 elements, a 2x3 shape needs 6"
	assert.PanicsWithValue(t, msg, func() {
		m.Ref(1, 2)
	})
	assert.PanicsWithValue(t, msg, func() {
		m.Line(1)
	})
	assert.PanicsWithValue(t, msg, func() {
		m.Data()
	})

	var ok Mat2[float64]
	assert.NotPanics(t, func() {
		ok.Set(1, 1, 2)
	})
}

func TestDebugIndexWidth(t *testing.T) {
	var m Dense[uint8, float64, RowMajor, AlignDefault]
	assert.PanicsWithValue(t, "c2d: size 20x20 does not fit in uint8", func() {
		m.Resize(20, 20)
	})
	assert.True(t, m.Empty())

	defer m.Release()
	assert.Equal(t, uint8(255), m.Resize(15, 17))
}
