package format

// Bridge translates toolbar actions into Handle calls. A Bridge built around a
// nil Handle, or asked to act without a selection, does nothing.
type Bridge struct {
	h Handle
}

// NewBridge returns a bridge for h. h may be nil.
func NewBridge(h Handle) Bridge {
	return Bridge{h: h}
}

// Handle returns the wrapped editor handle, or nil.
func (b Bridge) Handle() Handle {
	return b.h
}

// Selection returns the editor's live selection.
func (b Bridge) Selection() (Range, bool) {
	if b.h == nil {
		return Range{}, false
	}
	return b.h.Selection()
}

// Bounds returns the box of r, or false without an editor.
func (b Bridge) Bounds(r Range) (Bounds, bool) {
	if b.h == nil {
		return Bounds{}, false
	}
	return b.h.Bounds(r)
}

// ToggleBold flips bold over the current selection based on the selection's
// current format.
func (b Bridge) ToggleBold() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	bold := b.h.Format(r).Bold
	b.h.SetBold(r, !bold)
}

// ApplyBackground sets the background color over the current selection.
func (b Bridge) ApplyBackground(color string) {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.h.SetBackground(r, color)
}

// Underline adds or removes the comment marker over an explicit range.
func (b Bridge) Underline(r Range, present bool) {
	if b.h == nil {
		return
	}
	b.h.SetUnderline(r, present)
}

// Undo steps the editor history back.
func (b Bridge) Undo() bool {
	if b.h == nil {
		return false
	}
	return b.h.Undo()
}

// Redo re-applies the last undone change.
func (b Bridge) Redo() bool {
	if b.h == nil {
		return false
	}
	return b.h.Redo()
}
