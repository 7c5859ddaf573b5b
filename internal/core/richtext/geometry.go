package richtext

import "github.com/mattn/go-runewidth"

// Line is one row of the document.
type Line struct {
	Start int // offset of the first rune
	Runes []rune
	Attrs []Attrs
}

// End returns the offset of the row's terminating newline (or the document
// end for the last row).
func (l Line) End() int { return l.Start + len(l.Runes) }

// CellWidth returns the display width of r.
func (d *Document) CellWidth(r rune) int {
	if r == '\t' {
		return d.opt.TabWidth
	}
	return runewidth.RuneWidth(r)
}

// RowCount returns the number of rows. An empty document has one row.
func (d *Document) RowCount() int {
	n := 1
	for _, r := range d.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// Lines splits the document into rows. The returned slices are copies.
func (d *Document) Lines() []Line {
	lines := make([]Line, 0, d.RowCount())
	start := 0
	for i := 0; i <= len(d.text); i++ {
		if i == len(d.text) || d.text[i] == '\n' {
			lines = append(lines, Line{
				Start: start,
				Runes: append([]rune(nil), d.text[start:i]...),
				Attrs: append([]Attrs(nil), d.attrs[start:i]...),
			})
			start = i + 1
		}
	}
	return lines
}

// PosAt maps an offset to its row and cell column.
func (d *Document) PosAt(offset int) Pos {
	offset = clampInt(offset, 0, len(d.text))

	row, col := 0, 0
	for i := 0; i < offset; i++ {
		if d.text[i] == '\n' {
			row++
			col = 0
			continue
		}
		col += d.CellWidth(d.text[i])
	}
	return Pos{Row: row, Col: col}
}

// OffsetAt maps a row and cell column to the nearest offset. Columns inside a
// wide rune resolve to that rune; columns past the row end resolve to the row
// end.
func (d *Document) OffsetAt(p Pos) int {
	if p.Row < 0 {
		return 0
	}

	offset, row := 0, 0
	for row < p.Row {
		if offset >= len(d.text) {
			return len(d.text)
		}
		if d.text[offset] == '\n' {
			row++
		}
		offset++
	}

	col := 0
	for offset < len(d.text) && d.text[offset] != '\n' {
		w := d.CellWidth(d.text[offset])
		if col+w > p.Col {
			break
		}
		col += w
		offset++
	}
	return offset
}

// Bounds returns the cell box spanned by r. A collapsed range has zero width
// and a height of one row.
func (d *Document) Bounds(r Range) Rect {
	r = d.clampRange(r)
	start := d.PosAt(r.Index)
	end := d.PosAt(r.End())

	rect := Rect{
		Row:    start.Row,
		Col:    start.Col,
		Height: end.Row - start.Row + 1,
	}

	if start.Row == end.Row {
		rect.Width = end.Col - start.Col
		return rect
	}

	// Multi-row ranges use the union box: flush left, as wide as the widest
	// row they touch.
	rect.Col = 0
	width, col := 0, start.Col
	for i := r.Index; i < r.End(); i++ {
		if d.text[i] == '\n' {
			width = max(width, col)
			col = 0
			continue
		}
		col += d.CellWidth(d.text[i])
	}
	rect.Width = max(width, col)
	return rect
}
