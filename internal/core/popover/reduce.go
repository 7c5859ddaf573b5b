package popover

import "github.com/hay-kot/marginalia/internal/core/annotation"

// Reduce returns the state that follows s after ev.
//
// Entering a new kind always starts from Idle, so the slider value and
// background reset and at most one popover is ever visible. While the comment
// editor is open it owns input: only cancel, save and dismiss leave it.
func Reduce(s State, ev Event, l Layout) State {
	if s.Kind == KindCommentEditor {
		switch ev.(type) {
		case CommentCancelled, CommentSaved, Dismissed:
			return Idle()
		default:
			return s
		}
	}

	switch ev := ev.(type) {
	case SelectionChanged:
		if ev.Range.IsEmpty() {
			return Idle()
		}
		next := Idle()
		next.Kind = KindToolbar
		next.Anchor = ev.Bounds
		next.Position = l.origin(ev.Bounds)
		return next

	case Clicked:
		if !ev.Found {
			return s
		}
		next := Idle()
		next.Kind = KindTooltip
		next.Tooltip = ev.Text
		next.Anchor = ev.Bounds
		next.Position = l.origin(ev.Bounds)
		return next

	case BoldPressed:
		return s

	case RatePressed:
		if s.Kind != KindToolbar {
			return s
		}
		next := Idle()
		next.Kind = KindSlider
		next.Anchor = s.Anchor
		next.Position = s.Position
		return next

	case CommentPressed:
		if s.Kind != KindToolbar {
			return s
		}
		next := Idle()
		next.Kind = KindCommentEditor
		next.Anchor = s.Anchor
		next.Position = s.Position
		next.Frozen = ev.Range
		return next

	case SliderMoved:
		if s.Kind != KindSlider {
			return s
		}
		s.SliderValue = min(max(ev.Value, annotation.MinRating), annotation.MaxRating)
		s.Background = ev.Color
		return s

	case OutsideClicked:
		if s.Kind == KindToolbar || s.Kind == KindSlider {
			return Idle()
		}
		return s

	case Dismissed:
		return Idle()

	default:
		// CommentCancelled and CommentSaved outside the editor.
		return s
	}
}
