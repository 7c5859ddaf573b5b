package richtext

// Attrs are the character attributes carried by every rune.
type Attrs struct {
	Bold       bool
	Background string // hex color, empty when unset
	Underline  bool
}

// Range is a half-open span of offsets.
type Range struct {
	Index  int
	Length int
}

// End returns the offset one past the range.
func (r Range) End() int { return r.Index + r.Length }

// IsEmpty reports whether the range is a collapsed caret.
func (r Range) IsEmpty() bool { return r.Length <= 0 }

// Pos is a row and display-cell column.
type Pos struct {
	Row int
	Col int
}

// Rect is the cell box of a range in document coordinates.
type Rect struct {
	Row    int
	Col    int
	Width  int
	Height int
}

// Change describes a committed text mutation.
type Change struct {
	Version int
	Text    string
}

// Options configures a Document.
type Options struct {
	// HistoryLimit caps undo depth. Zero disables history.
	HistoryLimit int
	// TabWidth is the cell width of a tab. Defaults to 4.
	TabWidth int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{HistoryLimit: 200, TabWidth: 4}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
