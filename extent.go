package c2d

// Index is the set of integer types usable as container indices. The
// element count must fit in I as well as each index: Size and Resize convert
// it without a check, and c2ddebug builds assert it on Resize.
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Extent is a type-level dimension. A static extent reports a positive size,
// Dynamic reports 0.
type Extent interface {
	Extent() int
}

// Dynamic marks a dimension whose size is chosen at runtime.
type Dynamic struct{}

func (Dynamic) Extent() int { return 0 }

// Static extents.
type (
	D1  struct{}
	D2  struct{}
	D3  struct{}
	D4  struct{}
	D5  struct{}
	D6  struct{}
	D7  struct{}
	D8  struct{}
	D9  struct{}
	D10 struct{}
	D11 struct{}
	D12 struct{}
	D13 struct{}
	D14 struct{}
	D15 struct{}
	D16 struct{}
)

func (D1) Extent() int  { return 1 }
func (D2) Extent() int  { return 2 }
func (D3) Extent() int  { return 3 }
func (D4) Extent() int  { return 4 }
func (D5) Extent() int  { return 5 }
func (D6) Extent() int  { return 6 }
func (D7) Extent() int  { return 7 }
func (D8) Extent() int  { return 8 }
func (D9) Extent() int  { return 9 }
func (D10) Extent() int { return 10 }
func (D11) Extent() int { return 11 }
func (D12) Extent() int { return 12 }
func (D13) Extent() int { return 13 }
func (D14) Extent() int { return 14 }
func (D15) Extent() int { return 15 }
func (D16) Extent() int { return 16 }

func extentOf[E Extent]() int {
	var e E
	return e.Extent()
}
