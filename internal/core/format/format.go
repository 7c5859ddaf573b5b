// Package format bridges annotation actions onto an editor that can report its
// selection and apply character attributes.
package format

// Range is a span of the document as a start offset and a rune count.
type Range struct {
	Index  int
	Length int
}

// End returns the offset one past the range.
func (r Range) End() int {
	return r.Index + r.Length
}

// IsEmpty reports whether the range is a collapsed caret.
func (r Range) IsEmpty() bool {
	return r.Length <= 0
}

// Bounds is the on-screen box of a range in the editor's coordinate space.
type Bounds struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Attributes are the character styles the bridge reads and writes.
type Attributes struct {
	Bold       bool
	Background string // hex color, empty when unset
	Underline  bool
}

// Handle is the capability an editor exposes to the annotation layer.
//
// Implementations report geometry in whatever unit the caller positions
// popovers with (pixels in a browser, cells in a terminal).
type Handle interface {
	// Selection returns the live selection. ok is false when the editor has
	// no selection at all (for example while another widget holds focus).
	Selection() (r Range, ok bool)
	// Bounds returns the box that encloses r.
	Bounds(r Range) (b Bounds, ok bool)
	// Format returns the attributes shared by every rune of r.
	Format(r Range) Attributes

	SetBold(r Range, on bool)
	SetBackground(r Range, color string)
	SetUnderline(r Range, on bool)

	Undo() bool
	Redo() bool
}
