package popover

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/marginalia/internal/core/annotation"
	"github.com/hay-kot/marginalia/internal/core/format"
)

var box = format.Bounds{Top: 120, Left: 40, Width: 30, Height: 18}

func selected() SelectionChanged {
	return SelectionChanged{Range: format.Range{Index: 5, Length: 5}, Bounds: box}
}

func run(l Layout, events ...Event) State {
	s := Idle()
	for _, ev := range events {
		s = Reduce(s, ev, l)
	}
	return s
}

func TestReduce_SelectionShowsToolbarAboveBounds(t *testing.T) {
	s := run(PixelLayout(), selected())

	assert.Equal(t, KindToolbar, s.Kind)
	assert.Equal(t, Position{Top: 70, Left: 40}, s.Position)
	assert.Equal(t, box, s.Anchor)
}

func TestLayout_ToolbarFlipsBelowNearTop(t *testing.T) {
	l := CellLayout()

	s := run(l, SelectionChanged{
		Range:  format.Range{Index: 0, Length: 5},
		Bounds: format.Bounds{Top: 1, Left: 4, Width: 5, Height: 1},
	})
	assert.Equal(t, Position{Top: -2, Left: 4}, s.Position)
	assert.Equal(t, Position{Top: 2, Left: 4}, l.Toolbar(s))

	s = run(l, SelectionChanged{
		Range:  format.Range{Index: 0, Length: 5},
		Bounds: format.Bounds{Top: 3, Left: 4, Width: 5, Height: 1},
	})
	assert.Equal(t, Position{Top: 0, Left: 4}, l.Toolbar(s))
}

func TestReduce_CollapsedSelectionResets(t *testing.T) {
	l := PixelLayout()
	s := run(l,
		selected(),
		RatePressed{},
		SliderMoved{Value: 80, Color: "#89eb75"},
		SelectionChanged{Range: format.Range{Index: 7}},
	)

	assert.Equal(t, Idle(), s)
	assert.Equal(t, 0, s.SliderValue)
	assert.Equal(t, annotation.DefaultBackground, s.Background)
}

func TestReduce_ClickShowsTooltip(t *testing.T) {
	l := PixelLayout()

	s := run(l, Clicked{Found: true, Text: "needs work", Bounds: box})
	assert.Equal(t, KindTooltip, s.Kind)
	assert.Equal(t, "needs work", s.Tooltip)
	assert.Equal(t, Position{Top: 140, Left: 40}, l.Tooltip(s))

	s = Reduce(s, Clicked{Found: false, Bounds: box}, l)
	assert.Equal(t, KindTooltip, s.Kind, "a miss leaves the state alone")
}

func TestReduce_SelectionClearsTooltip(t *testing.T) {
	s := run(PixelLayout(), Clicked{Found: true, Text: "x", Bounds: box}, selected())

	assert.Equal(t, KindToolbar, s.Kind)
	assert.Empty(t, s.Tooltip)
}

func TestReduce_BoldKeepsState(t *testing.T) {
	l := PixelLayout()
	before := run(l, selected())
	after := Reduce(before, BoldPressed{}, l)

	assert.Equal(t, before, after)
}

func TestReduce_RateShowsSlider(t *testing.T) {
	l := PixelLayout()
	s := run(l, selected(), RatePressed{})

	assert.Equal(t, KindSlider, s.Kind)
	assert.Equal(t, Position{Top: 70, Left: 40}, s.Position)
	assert.Equal(t, Position{Top: 150, Left: 40}, l.Slider(s))
	assert.Equal(t, 0, s.SliderValue)
}

func TestReduce_RateRequiresToolbar(t *testing.T) {
	s := run(PixelLayout(), RatePressed{})
	assert.Equal(t, KindNone, s.Kind)
}

func TestReduce_SliderMoved(t *testing.T) {
	l := PixelLayout()
	s := run(l, selected(), RatePressed{}, SliderMoved{Value: 50, Color: "#f5aa69"})

	assert.Equal(t, KindSlider, s.Kind)
	assert.Equal(t, 50, s.SliderValue)
	assert.Equal(t, "#f5aa69", s.Background)

	s = Reduce(s, SliderMoved{Value: 180, Color: "#1d9c03"}, l)
	assert.Equal(t, 100, s.SliderValue)

	idle := Reduce(Idle(), SliderMoved{Value: 40, Color: "#000000"}, l)
	assert.Equal(t, Idle(), idle, "slider moves are ignored when the slider is hidden")
}

func TestReduce_CommentEditorFreezesSelection(t *testing.T) {
	l := PixelLayout()
	frozen := format.Range{Index: 5, Length: 5}
	s := run(l, selected(), CommentPressed{Range: frozen})

	assert.Equal(t, KindCommentEditor, s.Kind)
	assert.Equal(t, frozen, s.Frozen)

	for _, ev := range []Event{
		SelectionChanged{Range: format.Range{Index: 0}},
		SelectionChanged{Range: format.Range{Index: 1, Length: 3}, Bounds: box},
		Clicked{Found: true, Text: "other", Bounds: box},
		OutsideClicked{},
		RatePressed{},
	} {
		s = Reduce(s, ev, l)
		assert.Equal(t, KindCommentEditor, s.Kind, "%T must not leave the editor", ev)
		assert.Equal(t, frozen, s.Frozen)
	}
}

func TestReduce_CommentEditorExits(t *testing.T) {
	l := PixelLayout()
	for _, ev := range []Event{CommentCancelled{}, CommentSaved{}, Dismissed{}} {
		s := run(l, selected(), CommentPressed{Range: format.Range{Index: 5, Length: 5}}, ev)
		assert.Equal(t, Idle(), s, "%T", ev)
	}
}

func TestReduce_OutsideClick(t *testing.T) {
	l := PixelLayout()

	tests := []struct {
		name   string
		events []Event
		want   Kind
	}{
		{name: "toolbar", events: []Event{selected()}, want: KindNone},
		{name: "slider", events: []Event{selected(), RatePressed{}, SliderMoved{Value: 30, Color: "#ed7066"}}, want: KindNone},
		{name: "tooltip", events: []Event{Clicked{Found: true, Text: "x", Bounds: box}}, want: KindTooltip},
		{name: "idle", events: nil, want: KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := run(l, append(tt.events, OutsideClicked{})...)
			assert.Equal(t, tt.want, s.Kind)
			if tt.want == KindNone {
				assert.Equal(t, Idle(), s)
			}
		})
	}
}

func TestReduce_OnlyOneKindAtATime(t *testing.T) {
	l := CellLayout()
	events := []Event{
		selected(), RatePressed{}, SliderMoved{Value: 90, Color: "#89eb75"},
		selected(), CommentPressed{Range: format.Range{Index: 5, Length: 5}},
		CommentSaved{}, Clicked{Found: true, Text: "t", Bounds: box}, selected(),
		OutsideClicked{}, Dismissed{},
	}

	s := Idle()
	for _, ev := range events {
		s = Reduce(s, ev, l)
		if s.Kind != KindSlider {
			assert.Equal(t, 0, s.SliderValue, "after %T", ev)
			assert.Equal(t, annotation.DefaultBackground, s.Background, "after %T", ev)
		}
		if s.Kind != KindTooltip {
			assert.Empty(t, s.Tooltip, "after %T", ev)
		}
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "comment-editor", KindCommentEditor.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
