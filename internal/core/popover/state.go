// Package popover models which floating element the editor shows.
//
// The toolbar, rating slider, comment editor and comment tooltip are mutually
// exclusive. Rather than tracking one flag per element, the whole popover
// state is a single State value with a Kind tag, advanced by Reduce.
package popover

import (
	"github.com/hay-kot/marginalia/internal/core/annotation"
	"github.com/hay-kot/marginalia/internal/core/format"
)

// Kind identifies the visible popover.
type Kind int

const (
	KindNone Kind = iota
	KindToolbar
	KindSlider
	KindCommentEditor
	KindTooltip
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindToolbar:
		return "toolbar"
	case KindSlider:
		return "slider"
	case KindCommentEditor:
		return "comment-editor"
	case KindTooltip:
		return "tooltip"
	default:
		return "unknown"
	}
}

// Position is the top-left corner a popover is drawn from.
type Position struct {
	Top  int
	Left int
}

// State is the transient UI state of the editor's floating elements.
type State struct {
	Kind Kind

	// Position is the toolbar-relative origin shared by every popover. The
	// slider and tooltip are drawn at fixed offsets from it (see Layout).
	Position Position
	// Anchor is the box of the selection or click the popover belongs to.
	Anchor format.Bounds

	SliderValue int
	Background  string

	// Frozen is the selection captured when the comment editor opened. The
	// editor's live selection is unreliable once the text input has focus.
	Frozen format.Range

	// Tooltip is the comment text shown while Kind is KindTooltip.
	Tooltip string
}

// Idle returns the resting state: nothing visible, slider and background at
// their defaults.
func Idle() State {
	return State{
		Kind:        KindNone,
		SliderValue: annotation.MinRating,
		Background:  annotation.DefaultBackground,
	}
}

// Visible reports whether k is the active popover.
func (s State) Visible(k Kind) bool {
	return s.Kind == k
}

// IsIdle reports whether no popover is shown.
func (s State) IsIdle() bool {
	return s.Kind == KindNone
}

// Layout holds the vertical offsets used to place popovers.
type Layout struct {
	// ToolbarOffset is added to the anchor top to place the toolbar.
	ToolbarOffset int
	// TooltipOffset is added to Position.Top to place the tooltip.
	TooltipOffset int
	// SliderOffset is added to Position.Top to place the slider.
	SliderOffset int
}

// PixelLayout is the layout for pixel coordinates: the toolbar floats 50px
// above the selection.
func PixelLayout() Layout {
	return Layout{ToolbarOffset: -50, TooltipOffset: 70, SliderOffset: 80}
}

// CellLayout is the layout for terminal cells: the three-row toolbar sits
// directly above the selection and the slider and tooltip directly below.
func CellLayout() Layout {
	return Layout{ToolbarOffset: -3, TooltipOffset: 4, SliderOffset: 4}
}

func (l Layout) origin(b format.Bounds) Position {
	return Position{Top: b.Top + l.ToolbarOffset, Left: b.Left}
}

// Toolbar returns where the toolbar is drawn. When the space above the
// anchor is too short it is drawn directly below the anchor instead.
func (l Layout) Toolbar(s State) Position {
	if s.Position.Top < 0 {
		return Position{Top: s.Anchor.Top + s.Anchor.Height, Left: s.Position.Left}
	}
	return s.Position
}

// Tooltip returns where the tooltip is drawn.
func (l Layout) Tooltip(s State) Position {
	return Position{Top: s.Position.Top + l.TooltipOffset, Left: s.Position.Left}
}

// Slider returns where the slider is drawn.
func (l Layout) Slider(s State) Position {
	return Position{Top: s.Position.Top + l.SliderOffset, Left: s.Position.Left}
}
