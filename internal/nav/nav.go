package nav

import "fmt"

// Direction is one of the four discrete grid moves.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Navigator tracks the selected index into a flat list of count items laid out
// in rows of width items. The last row may be partial. A Navigator is owned by
// the update loop and is not safe for concurrent use.
type Navigator struct {
	index int
	count int
	width int
}

// New returns a Navigator over count items in rows of width, starting at index 0.
// count and width must both be positive; New panics otherwise.
func New(count, width int) *Navigator {
	if count <= 0 || width <= 0 {
		panic(fmt.Sprintf("nav: count and width must be positive (count=%d, width=%d)", count, width))
	}
	return &Navigator{count: count, width: width}
}

// Index returns the selected index, always in [0, Count()).
func (n *Navigator) Index() int { return n.index }

// Count returns the number of selectable items.
func (n *Navigator) Count() int { return n.count }

// Width returns the row width.
func (n *Navigator) Width() int { return n.width }

// Row returns the grid row of the selected index.
func (n *Navigator) Row() int { return n.index / n.width }

// Col returns the grid column of the selected index.
func (n *Navigator) Col() int { return n.index % n.width }

// Select jumps to index i. It reports false and leaves the selection
// unchanged when i is out of range.
func (n *Navigator) Select(i int) bool {
	if i < 0 || i >= n.count {
		return false
	}
	n.index = i
	return true
}

// Move applies one directional step and returns the new index.
func (n *Navigator) Move(d Direction) int {
	n.index = Step(n.index, n.count, n.width, d)
	return n.index
}

// Page applies a paging delta (usually ±1) modulo Count and returns the new index.
func (n *Navigator) Page(delta int) int {
	n.index = Page(n.index, n.count, delta)
	return n.index
}

// Step returns the index reached from index by moving once in direction d
// over count items in rows of width.
//
// Left and right wrap at the list boundaries, not at row boundaries. Down from
// an item with no neighbor below wraps to the same column in row 0. Up from
// row 0 wraps to the same column in the last row; when the last row is too
// short for that column, it lands one row higher.
func Step(index, count, width int, d Direction) int {
	switch d {
	case Left:
		return (index - 1 + count) % count
	case Right:
		return (index + 1) % count
	case Down:
		if index+width >= count {
			return index % width
		}
		return index + width
	case Up:
		if index >= width {
			return index - width
		}
		lastRow := (count - 1) / width
		c := lastRow*width + index
		if c >= count {
			c -= width
		}
		return c
	}
	return index
}

// Page returns index shifted by delta, wrapped into [0, count).
func Page(index, count, delta int) int {
	return ((index+delta)%count + count) % count
}
