package richtext

// Insert replaces the selection with s and places the caret after it.
// Inserted runes take the attributes of the rune before the insertion point,
// the way rich-text editors continue the surrounding format.
func (d *Document) Insert(s string) {
	sel := d.Selection()
	if s == "" && sel.IsEmpty() {
		return
	}

	prev := d.snapshot()

	var inherit Attrs
	if sel.Index > 0 && d.text[sel.Index-1] != '\n' {
		inherit = d.attrs[sel.Index-1]
	}

	runes := []rune(s)
	attrs := make([]Attrs, len(runes))
	for i, r := range runes {
		if r != '\n' {
			attrs[i] = inherit
		}
	}

	d.replace(sel, runes, attrs)
	d.SetCursor(sel.Index + len(runes))
	d.recordUndo(prev)
	d.commit()
}

// DeleteBackward removes the selection, or the rune before the caret.
func (d *Document) DeleteBackward() {
	sel := d.Selection()
	if sel.IsEmpty() {
		if d.cursor == 0 {
			return
		}
		sel = Range{Index: d.cursor - 1, Length: 1}
	}
	d.deleteRange(sel)
}

// DeleteForward removes the selection, or the rune after the caret.
func (d *Document) DeleteForward() {
	sel := d.Selection()
	if sel.IsEmpty() {
		if d.cursor >= len(d.text) {
			return
		}
		sel = Range{Index: d.cursor, Length: 1}
	}
	d.deleteRange(sel)
}

func (d *Document) deleteRange(r Range) {
	prev := d.snapshot()
	d.replace(r, nil, nil)
	d.SetCursor(r.Index)
	d.recordUndo(prev)
	d.commit()
}

func (d *Document) replace(r Range, runes []rune, attrs []Attrs) {
	r = d.clampRange(r)

	text := make([]rune, 0, len(d.text)-r.Length+len(runes))
	text = append(text, d.text[:r.Index]...)
	text = append(text, runes...)
	text = append(text, d.text[r.End():]...)

	at := make([]Attrs, 0, len(text))
	at = append(at, d.attrs[:r.Index]...)
	at = append(at, attrs...)
	at = append(at, d.attrs[r.End():]...)

	d.text = text
	d.attrs = at
}
