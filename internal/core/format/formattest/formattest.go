// Package formattest provides an in-memory format.Handle for tests.
package formattest

import (
	"fmt"

	"github.com/hay-kot/marginalia/internal/core/format"
)

// Call is a recorded mutating Handle call.
type Call struct {
	Op    string
	Range format.Range
	Value any
}

func (c Call) String() string {
	return fmt.Sprintf("%s[%d:%d]=%v", c.Op, c.Range.Index, c.Range.End(), c.Value)
}

// Handle is a scriptable format.Handle. Selection, bounds and formats are set
// directly by the test; mutating calls are recorded in order.
type Handle struct {
	Sel      format.Range
	HasSel   bool
	Box      format.Bounds
	Attrs    map[format.Range]format.Attributes
	Calls    []Call
	UndoRuns int
	RedoRuns int
}

var _ format.Handle = (*Handle)(nil)

// New returns a handle with no selection.
func New() *Handle {
	return &Handle{Attrs: map[format.Range]format.Attributes{}}
}

// Select sets the live selection and the bounds reported for it.
func (h *Handle) Select(index, length int, box format.Bounds) {
	h.Sel = format.Range{Index: index, Length: length}
	h.HasSel = true
	h.Box = box
}

// ClearSelection drops the selection entirely.
func (h *Handle) ClearSelection() {
	h.Sel = format.Range{}
	h.HasSel = false
}

func (h *Handle) Selection() (format.Range, bool) {
	return h.Sel, h.HasSel
}

func (h *Handle) Bounds(format.Range) (format.Bounds, bool) {
	return h.Box, true
}

func (h *Handle) Format(r format.Range) format.Attributes {
	return h.Attrs[r]
}

func (h *Handle) SetBold(r format.Range, on bool) {
	a := h.Attrs[r]
	a.Bold = on
	h.Attrs[r] = a
	h.Calls = append(h.Calls, Call{Op: "bold", Range: r, Value: on})
}

func (h *Handle) SetBackground(r format.Range, color string) {
	a := h.Attrs[r]
	a.Background = color
	h.Attrs[r] = a
	h.Calls = append(h.Calls, Call{Op: "background", Range: r, Value: color})
}

func (h *Handle) SetUnderline(r format.Range, on bool) {
	a := h.Attrs[r]
	a.Underline = on
	h.Attrs[r] = a
	h.Calls = append(h.Calls, Call{Op: "underline", Range: r, Value: on})
}

func (h *Handle) Undo() bool {
	h.UndoRuns++
	return true
}

func (h *Handle) Redo() bool {
	h.RedoRuns++
	return true
}

// Last returns the most recent recorded call, or a zero Call.
func (h *Handle) Last() Call {
	if len(h.Calls) == 0 {
		return Call{}
	}
	return h.Calls[len(h.Calls)-1]
}
