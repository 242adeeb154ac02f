package svgdoc

import "strconv"

// CellWidth is the rendered width of one contribution cell in pixels.
const CellWidth = 12

// GridBounds is the horizontal extent of the contribution grid.
type GridBounds struct {
	Left  int
	Right int
}

// Width returns the grid width in pixels.
func (b GridBounds) Width() int {
	return b.Right - b.Left
}

// FindGridBounds derives the grid extent from the x attribute of every rect
// element. The right edge is widened by one cell. It reports false when the
// document holds no cells.
func FindGridBounds(doc string) (GridBounds, bool) {
	var bounds GridBounds
	found := false
	for _, match := range cellXPattern.FindAllStringSubmatch(doc, -1) {
		x, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if !found {
			bounds = GridBounds{Left: x, Right: x}
			found = true
			continue
		}
		bounds.Left = min(bounds.Left, x)
		bounds.Right = max(bounds.Right, x)
	}
	if !found {
		return GridBounds{}, false
	}
	bounds.Right += CellWidth
	return bounds, true
}
