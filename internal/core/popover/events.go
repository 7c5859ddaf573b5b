package popover

import "github.com/hay-kot/marginalia/internal/core/format"

// Event is an input to Reduce.
type Event interface {
	popoverEvent()
}

// SelectionChanged fires when the editor selection moves. A collapsed range
// hides everything; a non-empty one shows the toolbar above Bounds.
type SelectionChanged struct {
	Range  format.Range
	Bounds format.Bounds
}

// Clicked fires for a click inside the editor. Found and Text carry the
// result of the annotation lookup at the click offset.
type Clicked struct {
	Found  bool
	Text   string
	Bounds format.Bounds
}

// BoldPressed is the toolbar bold action.
type BoldPressed struct{}

// RatePressed is the toolbar rate action.
type RatePressed struct{}

// CommentPressed is the toolbar comment action with the selection to freeze.
type CommentPressed struct {
	Range format.Range
}

// CommentCancelled closes the comment editor without saving.
type CommentCancelled struct{}

// CommentSaved closes the comment editor after a save.
type CommentSaved struct{}

// SliderMoved carries a new rating and the color computed for it.
type SliderMoved struct {
	Value int
	Color string
}

// OutsideClicked is a pointer press outside the toolbar and slider.
type OutsideClicked struct{}

// Dismissed closes whatever is open (escape key).
type Dismissed struct{}

func (SelectionChanged) popoverEvent() {}
func (Clicked) popoverEvent()          {}
func (BoldPressed) popoverEvent()      {}
func (RatePressed) popoverEvent()      {}
func (CommentPressed) popoverEvent()   {}
func (CommentCancelled) popoverEvent() {}
func (CommentSaved) popoverEvent()     {}
func (SliderMoved) popoverEvent()      {}
func (OutsideClicked) popoverEvent()   {}
func (Dismissed) popoverEvent()        {}
