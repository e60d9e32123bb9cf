package c2d

// Layout is the linear storage order of a container.
type Layout uint8

const (
	// RowMajorLayout stores rows contiguously: offset(i, j) = i*cols + j.
	RowMajorLayout Layout = iota
	// ColMajorLayout stores columns contiguously: offset(i, j) = i + j*rows.
	ColMajorLayout
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case RowMajorLayout:
		return "row-major"
	case ColMajorLayout:
		return "col-major"
	default:
		return "unknown"
	}
}

// Offset returns the linear position of element (i, j) in a rows x cols container.
func (l Layout) Offset(i, j, rows, cols int) int {
	if l == RowMajorLayout {
		return i*cols + j
	}
	return i + j*rows
}

// LineStart returns the linear position where line k begins. A line is a
// row for row-major storage and a column for column-major storage.
func (l Layout) LineStart(k, rows, cols int) int {
	if l == RowMajorLayout {
		return k * cols
	}
	return k * rows
}

// LineLen returns the number of elements in one line.
func (l Layout) LineLen(rows, cols int) int {
	if l == RowMajorLayout {
		return cols
	}
	return rows
}

// Lines returns the number of lines.
func (l Layout) Lines(rows, cols int) int {
	if l == RowMajorLayout {
		return rows
	}
	return cols
}

// Order is the type-level storage order of a container: RowMajor or ColMajor.
type Order interface {
	RowMajor | ColMajor
	Layout() Layout
}

// RowMajor selects row-major storage.
type RowMajor struct{}

// Layout implements Order.
func (RowMajor) Layout() Layout { return RowMajorLayout }

// ColMajor selects column-major storage.
type ColMajor struct{}

// Layout implements Order.
func (ColMajor) Layout() Layout { return ColMajorLayout }

func layoutOf[O Order]() Layout {
	var o O
	return o.Layout()
}
