package c2d

// Vector is the default dynamic column vector: int indices, 64-byte aligned.
type Vector[T any] = ColVec[int, T, Align64]

// Matrix is the default dynamic row-major matrix: int indices, 64-byte aligned.
type Matrix[T any] = Dense[int, T, RowMajor, Align64]

// PassiveVector and PassiveMatrix hold plain float64 values.
type (
	PassiveVector = Vector[float64]
	PassiveMatrix = Matrix[float64]
)

// Small static vectors and row-major matrices.
type (
	Vec2[T any] = FixedCol[int, T, AlignDefault, Array2[T], *Array2[T]]
	Vec3[T any] = FixedCol[int, T, AlignDefault, Array3[T], *Array3[T]]
	Vec4[T any] = FixedCol[int, T, AlignDefault, Array4[T], *Array4[T]]

	Mat2[T any] = Fixed[int, T, RowMajor, AlignDefault, D2, D2, Array4[T], *Array4[T]]
	Mat3[T any] = Fixed[int, T, RowMajor, AlignDefault, D3, D3, Array9[T], *Array9[T]]
	Mat4[T any] = Fixed[int, T, RowMajor, AlignDefault, D4, D4, Array16[T], *Array16[T]]
)
