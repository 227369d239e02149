package timevalue

import "math"

// RowHeight is the pixel height of one picker row; scroll offsets are
// multiples of it.
const RowHeight = 40

// Column is one of the picker's three independent selection axes.
type Column int

const (
	HourColumn Column = iota
	MinuteColumn
	MeridiemColumn
)

func (c Column) length() int {
	switch c {
	case HourColumn:
		return 12
	case MinuteColumn:
		return 60
	default:
		return 2
	}
}

// Index returns the zero-based position of v's selection on the given column.
func Index(c Column, v TimeValue) int {
	switch c {
	case HourColumn:
		return v.Hour - 1
	case MinuteColumn:
		return v.Minute
	default:
		if v.Meridiem == AM {
			return 0
		}
		return 1
	}
}

// Offset returns the scroll offset that centers the row at the given index.
func Offset(index int) float64 {
	return float64(index) * RowHeight
}

// IndexAt snaps a scroll-end offset to the nearest row on the column,
// clamped to the column's domain.
func IndexAt(c Column, offset float64) int {
	index := int(math.Round(offset / RowHeight))
	if index < 0 {
		return 0
	}
	if max := c.length() - 1; index > max {
		return max
	}
	return index
}

// Apply re-derives the composite TimeValue after one column scrolls to a new
// index. The other two axes are untouched; there is no cross-validation
// between columns.
func Apply(c Column, index int, v TimeValue) TimeValue {
	if index < 0 || index >= c.length() {
		return v
	}
	switch c {
	case HourColumn:
		v.Hour = index + 1
	case MinuteColumn:
		v.Minute = index
	default:
		if index == 0 {
			v.Meridiem = AM
		} else {
			v.Meridiem = PM
		}
	}
	return v
}
