package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// MulInt multiplies two non-negative ints, failing on overflow.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d (negative operand)", a, b)
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds int", a, b)
	}
	return int(lo), nil
}

// AddInt adds two non-negative ints, failing on overflow.
func AddInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d + %d (negative operand)", a, b)
	}
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d exceeds int", a, b)
	}
	return a + b, nil
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// RoundUp rounds n up to the next multiple of align, which must be a power of two.
// An align of 0 or 1 returns n unchanged.
func RoundUp(n, align int) (int, error) {
	if align <= 1 {
		return n, nil
	}
	if !IsPowerOfTwo(align) {
		return 0, fmt.Errorf("alignment %d is not a power of two", align)
	}
	sum, err := AddInt(n, align-1)
	if err != nil {
		return 0, err
	}
	return sum &^ (align - 1), nil
}
