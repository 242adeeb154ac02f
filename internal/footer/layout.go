package footer

import "snkfooter/internal/svgdoc"

// Layout constants, in SVG user units.
const (
	FontSize      = 9
	LineHeight    = 11
	TopPadding    = 10
	BottomPadding = 5
	// CharWidth approximates one monospace glyph at FontSize.
	CharWidth = 5.4

	hexColumnChars   = 10 // "00000080  "
	asciiColumnChars = 59 // address, hex bytes and gutter
)

// Layout positions the footer below the existing drawing.
type Layout struct {
	Rows           int
	FooterHeight   int
	OriginalHeight float64
	NewHeight      float64
	StartX         int
	StartY         float64
	AddressX       int
	HexX           int
	ASCIIX         int
}

// FooterHeight returns the height added for rows lines of dump.
func FooterHeight(rows int) int {
	return TopPadding + rows*LineHeight + BottomPadding
}

// ComputeLayout places len(GenesisRows) lines under vb, left-aligned with grid
// or with x=0 when grid is nil.
func ComputeLayout(vb svgdoc.ViewBox, grid *svgdoc.GridBounds) Layout {
	rows := len(GenesisRows)
	startX := 0
	if grid != nil {
		startX = grid.Left
	}
	height := FooterHeight(rows)
	// text y is a baseline, so the first row sits one font size below the padding
	return Layout{
		Rows:           rows,
		FooterHeight:   height,
		OriginalHeight: vb.Height,
		NewHeight:      vb.Height + float64(height),
		StartX:         startX,
		StartY:         vb.MinY + vb.Height + TopPadding + FontSize,
		AddressX:       startX,
		HexX:           startX + columnOffset(hexColumnChars),
		ASCIIX:         startX + columnOffset(asciiColumnChars),
	}
}

// RowY returns the baseline of row i.
func (l Layout) RowY(i int) int {
	return int(l.StartY + float64(i*LineHeight))
}

func columnOffset(chars int) int {
	return int(float64(chars) * CharWidth)
}
