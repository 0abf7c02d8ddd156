package nav

// Transform is the display state the highlight logic writes for one entity.
type Transform struct {
	Position [3]float32
	Scale    float32
	Focused  bool
}

// Layout places grid cells and the focus slot in the overlay camera's space.
// Origin is the center of cell 0; rows grow downward (-Y), columns to +X.
type Layout struct {
	Origin     [3]float32
	Spacing    [2]float32
	Focus      [3]float32
	FocusScale float32
}

// Cell returns the position of the grid cell for index in rows of width.
func (l Layout) Cell(index, width int) [3]float32 {
	row, col := index/width, index%width
	return [3]float32{
		l.Origin[0] + float32(col)*l.Spacing[0],
		l.Origin[1] - float32(row)*l.Spacing[1],
		l.Origin[2],
	}
}

// Apply computes the transform of every selectable entity and of the blank
// placeholder for the navigator's current selection. The selected entity is
// moved to Focus and scaled by FocusScale; every other entity sits in its cell
// at unit scale. The blank takes the cell the selected entity vacated.
//
// dst is reused when it has enough capacity.
func (l Layout) Apply(n *Navigator, dst []Transform) (items []Transform, blank Transform) {
	if cap(dst) < n.count {
		dst = make([]Transform, n.count)
	}
	items = dst[:n.count]
	for i := range items {
		if i == n.index {
			items[i] = Transform{Position: l.Focus, Scale: l.FocusScale, Focused: true}
			continue
		}
		items[i] = Transform{Position: l.Cell(i, n.width), Scale: 1}
	}
	blank = Transform{Position: l.Cell(n.index, n.width), Scale: 1}
	return items, blank
}
