package editor

import (
	"github.com/hay-kot/marginalia/internal/core/format"
	"github.com/hay-kot/marginalia/internal/core/richtext"
)

// screen tracks where the document is drawn. The view updates it on every
// resize and scroll; the handle reads it to report screen-space bounds.
type screen struct {
	top    int // first screen row of the text area
	gutter int // cells left of the first text column
	scroll int // first document row shown
	left   int // first document column shown
}

// toDoc maps a screen cell to a document position.
func (s *screen) toDoc(x, y int) richtext.Pos {
	return richtext.Pos{Row: y - s.top + s.scroll, Col: max(x-s.gutter, 0) + s.left}
}

// docHandle exposes a richtext document to the annotator in screen cells.
type docHandle struct {
	doc    *richtext.Document
	screen *screen

	// blurred is set while the comment input holds focus; the document then
	// reports no selection, like an unfocused editor.
	blurred bool
}

var _ format.Handle = (*docHandle)(nil)

func newDocHandle(doc *richtext.Document, s *screen) *docHandle {
	return &docHandle{doc: doc, screen: s}
}

func (h *docHandle) Selection() (format.Range, bool) {
	if h.blurred {
		return format.Range{}, false
	}
	sel := h.doc.Selection()
	return format.Range{Index: sel.Index, Length: sel.Length}, true
}

func (h *docHandle) Bounds(r format.Range) (format.Bounds, bool) {
	rect := h.doc.Bounds(toRichtext(r))
	return format.Bounds{
		Top:    rect.Row - h.screen.scroll + h.screen.top,
		Left:   rect.Col - h.screen.left + h.screen.gutter,
		Width:  rect.Width,
		Height: rect.Height,
	}, true
}

func (h *docHandle) Format(r format.Range) format.Attributes {
	a := h.doc.Format(toRichtext(r))
	return format.Attributes{Bold: a.Bold, Background: a.Background, Underline: a.Underline}
}

func (h *docHandle) SetBold(r format.Range, on bool) {
	h.doc.SetBold(toRichtext(r), on)
}

func (h *docHandle) SetBackground(r format.Range, color string) {
	h.doc.SetBackground(toRichtext(r), color)
}

func (h *docHandle) SetUnderline(r format.Range, on bool) {
	h.doc.SetUnderline(toRichtext(r), on)
}

func (h *docHandle) Undo() bool { return h.doc.Undo() }

func (h *docHandle) Redo() bool { return h.doc.Redo() }

func toRichtext(r format.Range) richtext.Range {
	return richtext.Range{Index: r.Index, Length: r.Length}
}
