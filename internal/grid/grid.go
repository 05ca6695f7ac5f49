package grid

import "strconv"

// Policy parameterizes the image-grid tiering so the diary card and the
// feed share one layout function instead of drifting copies.
type Policy struct {
	// DisplayCap is the maximum number of images rendered as cells; the
	// rest collapse into an overflow badge on the last visible cell.
	DisplayCap int
	// SquareCells derives cell height from cell width (halved for the
	// terminal cell aspect). When false, RowHeight is used as-is.
	SquareCells bool
	// RowHeight is the fixed per-row height used when SquareCells is false.
	RowHeight int
}

// CardPolicy caps diary cards at three square cells in a single row.
// Exactly three images render as three equal cells; the legacy two-plus-one
// tiering is deprecated.
var CardPolicy = Policy{DisplayCap: 3, SquareCells: true}

// FeedPolicy shows up to three full rows at a fixed height.
var FeedPolicy = Policy{DisplayCap: 9, RowHeight: 4}

// Layout is the computed grid for one entry's images.
type Layout struct {
	Columns        int
	Rows           int
	CellWidth      int
	CellHeight     int
	DisplayedCount int
	OverflowCount  int
}

// Badge returns the overflow badge text ("+N"), or "" when every image is
// displayed.
func (l Layout) Badge() string {
	if l.OverflowCount <= 0 {
		return ""
	}
	return "+" + strconv.Itoa(l.OverflowCount)
}

// Compute derives a deterministic grid for imageCount images in
// availableWidth terminal columns with the given inter-cell gap.
// DisplayedCount+OverflowCount always equals imageCount. A zero imageCount
// yields a zero Layout; callers skip rendering.
func Compute(imageCount, availableWidth, gap int, p Policy) Layout {
	if imageCount <= 0 || availableWidth <= 0 {
		return Layout{}
	}

	displayed := imageCount
	if displayed > p.DisplayCap {
		displayed = p.DisplayCap
	}

	columns := displayed
	if columns > 3 {
		columns = 3
	}

	cellWidth := (availableWidth - (columns-1)*gap) / columns
	if cellWidth < 1 {
		cellWidth = 1
	}

	cellHeight := p.RowHeight
	if p.SquareCells {
		// Terminal cells are roughly twice as tall as wide
		cellHeight = cellWidth / 2
		if cellHeight < 1 {
			cellHeight = 1
		}
	}

	rows := (displayed + columns - 1) / columns

	return Layout{
		Columns:        columns,
		Rows:           rows,
		CellWidth:      cellWidth,
		CellHeight:     cellHeight,
		DisplayedCount: displayed,
		OverflowCount:  imageCount - displayed,
	}
}

// RowWidths returns the width of each cell in a full row, widening the last
// cell so the row spans exactly availableWidth.
func (l Layout) RowWidths(availableWidth, gap int) []int {
	if l.Columns == 0 {
		return nil
	}
	widths := make([]int, l.Columns)
	for i := range widths {
		widths[i] = l.CellWidth
	}
	used := l.Columns*l.CellWidth + (l.Columns-1)*gap
	widths[l.Columns-1] += availableWidth - used
	return widths
}
