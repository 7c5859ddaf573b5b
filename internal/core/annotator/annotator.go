// Package annotator is the annotation component: it owns the comment store and
// the popover state and turns editor events into store updates, formatting
// calls and popover transitions.
//
// All methods are expected to run on the UI event loop. Nothing blocks and
// every call completes within the event that triggered it.
package annotator

import (
	"github.com/rs/zerolog"

	"github.com/hay-kot/marginalia/internal/core/annotation"
	"github.com/hay-kot/marginalia/internal/core/format"
	"github.com/hay-kot/marginalia/internal/core/popover"
)

// Options configures an Annotator.
type Options struct {
	Palette annotation.Palette
	Layout  popover.Layout
	Logger  zerolog.Logger
}

// Annotator binds an editor handle to the annotation store and popovers.
type Annotator struct {
	bridge  format.Bridge
	palette annotation.Palette
	layout  popover.Layout
	log     zerolog.Logger

	store annotation.Store
	state popover.State

	// frozen is the editor handle captured with the comment selection. Saves
	// go through it even if the live handle changes meanwhile.
	frozen format.Bridge
}

// New creates an annotator for h. A nil handle makes every editor-facing
// action a no-op.
func New(h format.Handle, opts Options) *Annotator {
	if len(opts.Palette) == 0 {
		opts.Palette = annotation.DefaultPalette()
	}

	return &Annotator{
		bridge:  format.NewBridge(h),
		palette: opts.Palette,
		layout:  opts.Layout,
		log:     opts.Logger,
		state:   popover.Idle(),
	}
}

// State returns the current popover state.
func (a *Annotator) State() popover.State { return a.state }

// Store returns the current annotation store.
func (a *Annotator) Store() annotation.Store { return a.store }

// Layout returns the popover layout in use.
func (a *Annotator) Layout() popover.Layout { return a.layout }

// Palette returns the rating palette.
func (a *Annotator) Palette() annotation.Palette { return a.palette }

func (a *Annotator) dispatch(ev popover.Event) {
	prev := a.state.Kind
	a.state = popover.Reduce(a.state, ev, a.layout)
	if prev != a.state.Kind {
		a.log.Debug().
			Str("from", prev.String()).
			Str("to", a.state.Kind.String()).
			Type("event", ev).
			Msg("popover transition")
	}
}

// SelectionChanged reads the live selection and shows or hides the toolbar.
func (a *Annotator) SelectionChanged() {
	r, ok := a.bridge.Selection()
	if !ok || r.IsEmpty() {
		a.dispatch(popover.SelectionChanged{Range: r})
		return
	}

	b, ok := a.bridge.Bounds(r)
	if !ok {
		return
	}
	a.dispatch(popover.SelectionChanged{Range: r, Bounds: b})
}

// Click looks up the annotation at the caret and shows its tooltip.
func (a *Annotator) Click() {
	r, ok := a.bridge.Selection()
	if !ok {
		return
	}

	rec, found := a.store.FindAt(r.Index)
	if !found {
		return
	}

	b, ok := a.bridge.Bounds(r)
	if !ok {
		return
	}
	a.dispatch(popover.Clicked{Found: true, Text: rec.Text, Bounds: b})
}

// Bold toggles bold on the current selection.
func (a *Annotator) Bold() {
	a.bridge.ToggleBold()
	a.dispatch(popover.BoldPressed{})
}

// Rate opens the rating slider.
func (a *Annotator) Rate() {
	a.dispatch(popover.RatePressed{})
}

// Comment opens the comment editor over the current selection. The selection
// and the editor handle are frozen for the eventual save.
func (a *Annotator) Comment() {
	r, ok := a.bridge.Selection()
	if !ok {
		return
	}

	a.dispatch(popover.CommentPressed{Range: r})
	if a.state.Kind == popover.KindCommentEditor {
		a.frozen = a.bridge
	}
}

// ExistingComment returns the text of a record anchored exactly at the frozen
// selection, used to pre-fill the comment editor.
func (a *Annotator) ExistingComment() (string, bool) {
	if a.state.Kind != popover.KindCommentEditor {
		return "", false
	}
	rec, ok := a.store.FindAnchor(a.state.Frozen.Index)
	return rec.Text, ok
}

// CancelComment closes the comment editor and discards the input.
func (a *Annotator) CancelComment() {
	if a.state.Kind != popover.KindCommentEditor {
		return
	}
	a.frozen = format.Bridge{}
	a.dispatch(popover.CommentCancelled{})
}

// SaveComment stores text against the frozen selection. Empty text deletes
// the record anchored there. The range is underlined when text is non-empty
// and the underline is removed otherwise.
func (a *Annotator) SaveComment(text string) {
	if a.state.Kind != popover.KindCommentEditor {
		return
	}

	r := a.state.Frozen
	if a.frozen.Handle() != nil {
		a.frozen.Underline(r, text != "")

		before := a.store.Len()
		a.store = a.store.UpsertOrDelete(r.Index, r.Length, text)
		a.log.Info().
			Int("anchor", r.Index).
			Int("length", r.Length).
			Int("records_before", before).
			Int("records_after", a.store.Len()).
			Bool("delete", text == "").
			Msg("comment saved")
	}

	a.frozen = format.Bridge{}
	a.dispatch(popover.CommentSaved{})
}

// Slide sets the rating and applies its color to the current selection.
func (a *Annotator) Slide(value int) {
	if a.state.Kind != popover.KindSlider {
		return
	}

	value = min(max(value, annotation.MinRating), annotation.MaxRating)
	color := a.palette.Color(value)
	a.bridge.ApplyBackground(color)
	a.dispatch(popover.SliderMoved{Value: value, Color: color})
}

// OutsideClick hides the toolbar or slider after a press outside both.
func (a *Annotator) OutsideClick() {
	a.dispatch(popover.OutsideClicked{})
}

// Dismiss closes any popover, abandoning an open comment.
func (a *Annotator) Dismiss() {
	a.frozen = format.Bridge{}
	a.dispatch(popover.Dismissed{})
}

// Undo steps the editor history back. Popover state is untouched.
func (a *Annotator) Undo() bool {
	return a.bridge.Undo()
}

// Redo re-applies an undone change. Popover state is untouched.
func (a *Annotator) Redo() bool {
	return a.bridge.Redo()
}
