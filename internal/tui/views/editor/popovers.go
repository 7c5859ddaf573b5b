package editor

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/marginalia/internal/core/annotation"
	"github.com/hay-kot/marginalia/internal/core/popover"
	"github.com/hay-kot/marginalia/internal/core/styles"
)

const (
	sliderWidth  = 24
	tooltipWidth = 40
)

// box is a rectangle of screen cells.
type box struct {
	x, y, w, h int
}

func (b box) contains(x, y int) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// toolbarAction identifies a toolbar button.
type toolbarAction int

const (
	actionBold toolbarAction = iota
	actionRate
	actionComment
)

type button struct {
	action toolbarAction
	from   int // cell offset inside the toolbar frame
	to     int
}

// placed is a rendered popover and where it goes.
type placed struct {
	content string
	box     box
}

// place clamps content at pos so it stays on screen.
func (v View) place(content string, pos popover.Position) placed {
	w, h := lipgloss.Width(content), lipgloss.Height(content)
	x := min(max(pos.Left, 0), max(v.width-w, 0))
	y := min(max(pos.Top, 0), max(v.height-h, 0))
	return placed{content: content, box: box{x: x, y: y, w: w, h: h}}
}

// toolbar renders the formatting toolbar and the hit ranges of its buttons.
func (v View) toolbar() (placed, []button) {
	st := v.annotator.State()
	bold := false
	if sel, ok := v.handle.Selection(); ok && !sel.IsEmpty() {
		bold = v.handle.Format(sel).Bold
	}

	labels := []struct {
		action toolbarAction
		text   string
		active bool
	}{
		{actionBold, styles.IconBold + " bold", bold},
		{actionRate, styles.IconRate + " rate", false},
		{actionComment, styles.IconComment + " comment", false},
	}

	var (
		parts   []string
		buttons []button
		offset  = 1 // left border
	)
	for _, l := range labels {
		style := styles.ToolbarButtonStyle
		if l.active {
			style = styles.ToolbarActiveStyle
		}
		s := style.Render(l.text)
		w := lipgloss.Width(s)
		buttons = append(buttons, button{action: l.action, from: offset, to: offset + w})
		parts = append(parts, s)
		offset += w
	}

	content := styles.PopoverStyle.Render(strings.Join(parts, ""))
	return v.place(content, v.annotator.Layout().Toolbar(st)), buttons
}

// slider renders the rating slider. The bar starts one cell right of the
// frame's left edge.
func (v View) sliderBox() placed {
	st := v.annotator.State()

	bar := v.slider.ViewAs(float64(st.SliderValue) / float64(annotation.MaxRating))
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(st.Background)).
		Render(strings.Repeat(" ", 2))
	label := styles.SliderLabelStyle.Render(fmt.Sprintf("%3d", st.SliderValue))

	content := styles.PopoverStyle.Render(bar + " " + label + " " + swatch)
	return v.place(content, v.annotator.Layout().Slider(st))
}

// sliderValueAt maps a screen column on the bar to a rating.
func sliderValueAt(b box, x int) (int, bool) {
	col := x - b.x - 1
	if col < 0 || col >= sliderWidth {
		return 0, false
	}
	return col * annotation.MaxRating / (sliderWidth - 1), true
}

func (v View) tooltipBox() placed {
	st := v.annotator.State()
	text := ansi.Wordwrap(st.Tooltip, tooltipWidth, "")
	return v.place(styles.TooltipStyle.Render(text), v.annotator.Layout().Tooltip(st))
}

// overlays returns the visible popovers in drawing order.
func (v View) overlays() []placed {
	switch v.annotator.State().Kind {
	case popover.KindToolbar:
		tb, _ := v.toolbar()
		return []placed{tb}
	case popover.KindSlider:
		return []placed{v.sliderBox()}
	case popover.KindTooltip:
		return []placed{v.tooltipBox()}
	default:
		return nil
	}
}

// renderCenteredModal frames content and centers it on the screen.
func (v View) renderCenteredModal(content string) placed {
	modal := styles.ModalStyle.Render(content)
	w, h := lipgloss.Width(modal), lipgloss.Height(modal)
	return placed{
		content: modal,
		box:     box{x: max((v.width-w)/2, 0), y: max((v.height-h)/2, 0), w: w, h: h},
	}
}

// composite draws layers over background with the lipgloss compositor.
func composite(background string, layers []placed) string {
	if len(layers) == 0 {
		return background
	}

	all := []*lipgloss.Layer{lipgloss.NewLayer(background)}
	for i, l := range layers {
		all = append(all, lipgloss.NewLayer(l.content).X(l.box.x).Y(l.box.y).Z(i+1))
	}
	return lipgloss.NewCompositor(all...).Render()
}
