package richtext

// Document is an attributed text buffer with a selection and history.
//
// Document is not safe for concurrent use; it is driven from a single UI loop.
type Document struct {
	text  []rune
	attrs []Attrs

	// The selection runs between anchor and cursor. anchor == cursor is a
	// collapsed caret.
	cursor int
	anchor int

	// goalCol keeps the column across vertical moves.
	goalCol int

	opt       Options
	hist      historyState
	version   int
	listeners []func(Change)
}

// New creates a document holding text with no attributes.
func New(text string, opt Options) *Document {
	if opt.TabWidth <= 0 {
		opt.TabWidth = DefaultOptions().TabWidth
	}

	runes := []rune(text)
	return &Document{
		text:    runes,
		attrs:   make([]Attrs, len(runes)),
		goalCol: -1,
		opt:     opt,
	}
}

// Text returns the plain text.
func (d *Document) Text() string { return string(d.text) }

// Len returns the number of runes.
func (d *Document) Len() int { return len(d.text) }

// RuneAt returns the rune and its attributes at offset.
func (d *Document) RuneAt(offset int) (rune, Attrs, bool) {
	if offset < 0 || offset >= len(d.text) {
		return 0, Attrs{}, false
	}
	return d.text[offset], d.attrs[offset], true
}

// Slice returns the text in r.
func (d *Document) Slice(r Range) string {
	r = d.clampRange(r)
	return string(d.text[r.Index:r.End()])
}

// OnChange registers fn to be called synchronously after each text change.
// Attribute-only changes do not notify.
func (d *Document) OnChange(fn func(Change)) {
	d.listeners = append(d.listeners, fn)
}

func (d *Document) commit() {
	d.version++
	if len(d.listeners) == 0 {
		return
	}
	c := Change{Version: d.version, Text: d.Text()}
	for _, fn := range d.listeners {
		fn(c)
	}
}

// Cursor returns the caret offset.
func (d *Document) Cursor() int { return d.cursor }

// Selection returns the normalized selection. A caret has Length 0.
func (d *Document) Selection() Range {
	lo, hi := d.anchor, d.cursor
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range{Index: lo, Length: hi - lo}
}

// HasSelection reports whether the selection is non-empty.
func (d *Document) HasSelection() bool {
	return d.anchor != d.cursor
}

// SetCursor moves the caret and collapses the selection.
func (d *Document) SetCursor(offset int) {
	offset = clampInt(offset, 0, len(d.text))
	d.cursor = offset
	d.anchor = offset
	d.goalCol = -1
}

// Select sets the selection from anchor to head; the caret ends at head.
func (d *Document) Select(anchor, head int) {
	d.anchor = clampInt(anchor, 0, len(d.text))
	d.cursor = clampInt(head, 0, len(d.text))
	d.goalCol = -1
}

// SelectAll selects the whole document.
func (d *Document) SelectAll() {
	d.Select(0, len(d.text))
}

func (d *Document) moveTo(offset int, extend bool) {
	offset = clampInt(offset, 0, len(d.text))
	d.cursor = offset
	if !extend {
		d.anchor = offset
	}
}

// MoveLeft moves the caret one rune left. Without extend, an active selection
// collapses to its start instead.
func (d *Document) MoveLeft(extend bool) {
	d.goalCol = -1
	if !extend && d.HasSelection() {
		d.SetCursor(d.Selection().Index)
		return
	}
	d.moveTo(d.cursor-1, extend)
}

// MoveRight moves the caret one rune right. Without extend, an active
// selection collapses to its end instead.
func (d *Document) MoveRight(extend bool) {
	d.goalCol = -1
	if !extend && d.HasSelection() {
		d.SetCursor(d.Selection().End())
		return
	}
	d.moveTo(d.cursor+1, extend)
}

// MoveUp moves the caret one row up, keeping the display column.
func (d *Document) MoveUp(extend bool) {
	d.moveVertical(-1, extend)
}

// MoveDown moves the caret one row down, keeping the display column.
func (d *Document) MoveDown(extend bool) {
	d.moveVertical(1, extend)
}

func (d *Document) moveVertical(delta int, extend bool) {
	p := d.PosAt(d.cursor)
	if d.goalCol < 0 {
		d.goalCol = p.Col
	}

	row := p.Row + delta
	if row < 0 {
		d.moveTo(0, extend)
		return
	}
	if row >= d.RowCount() {
		d.moveTo(len(d.text), extend)
		return
	}

	goal := d.goalCol
	d.moveTo(d.OffsetAt(Pos{Row: row, Col: goal}), extend)
	d.goalCol = goal
}

// LineStart moves the caret to the start of its row.
func (d *Document) LineStart(extend bool) {
	d.goalCol = -1
	d.moveTo(d.lineStart(d.cursor), extend)
}

// LineEnd moves the caret to the end of its row.
func (d *Document) LineEnd(extend bool) {
	d.goalCol = -1
	d.moveTo(d.lineEnd(d.cursor), extend)
}

func (d *Document) lineStart(offset int) int {
	for offset > 0 && d.text[offset-1] != '\n' {
		offset--
	}
	return offset
}

func (d *Document) lineEnd(offset int) int {
	for offset < len(d.text) && d.text[offset] != '\n' {
		offset++
	}
	return offset
}

func (d *Document) clampRange(r Range) Range {
	start := clampInt(r.Index, 0, len(d.text))
	end := clampInt(r.Index+max(r.Length, 0), start, len(d.text))
	return Range{Index: start, Length: end - start}
}
