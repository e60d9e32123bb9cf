package c2d

import "github.com/hupe1980/c2d/alloc"

// Alignment is a type-level buffer alignment in bytes: 0 for the natural
// alignment of the element type, otherwise a power of two.
//
// It applies to allocated buffers only. Fixed, FixedCol and FixedRow keep
// their elements inline, and Go cannot over-align a struct field, so those
// types are aligned to T whatever A says.
type Alignment interface {
	Bytes() int
}

type (
	// AlignDefault uses the natural alignment of the element type.
	AlignDefault struct{}
	Align8       struct{}
	Align16      struct{}
	Align32      struct{}
	Align64      struct{}
	Align128     struct{}
	Align256     struct{}
	Align512     struct{}
	Align1024    struct{}
	Align2048    struct{}
	Align4096    struct{}
	// AlignSIMD resolves at runtime to the register width of the host CPU.
	AlignSIMD struct{}
)

func (AlignDefault) Bytes() int { return 0 }
func (Align8) Bytes() int       { return 8 }
func (Align16) Bytes() int      { return 16 }
func (Align32) Bytes() int      { return 32 }
func (Align64) Bytes() int      { return 64 }
func (Align128) Bytes() int     { return 128 }
func (Align256) Bytes() int     { return 256 }
func (Align512) Bytes() int     { return 512 }
func (Align1024) Bytes() int    { return 1024 }
func (Align2048) Bytes() int    { return 2048 }
func (Align4096) Bytes() int    { return 4096 }
func (AlignSIMD) Bytes() int    { return alloc.PreferredAlignment() }

func alignOf[A Alignment]() int {
	var a A
	return a.Bytes()
}
