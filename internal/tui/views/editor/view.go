// Package editor implements the annotating text editor: the document surface,
// mouse and keyboard selection, and the floating toolbar, rating slider,
// comment modal and tooltip.
//
// # Coordinates
//
// The document works in rows and display-cell columns. The view draws a
// one-row header, the text area and a one-row footer. Text starts after a
// line-number gutter, so screen cell (x, y) is document position
// (y - 1 + scroll, x - gutter + left), where left is the horizontal scroll
// that keeps the cursor column on screen. The annotator receives selection bounds in
// screen cells and positions popovers in the same space.
package editor

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/hay-kot/marginalia/internal/core/annotation"
	"github.com/hay-kot/marginalia/internal/core/annotator"
	"github.com/hay-kot/marginalia/internal/core/popover"
	"github.com/hay-kot/marginalia/internal/core/richtext"
	"github.com/hay-kot/marginalia/internal/core/styles"
	"github.com/hay-kot/marginalia/internal/tui/components"
)

const (
	headerRows  = 1
	footerRows  = 1
	wheelStep   = 3
	modalWidth  = 60
	ratingInk   = "#000000" // text drawn over a rating background
	gutterExtra = 3         // marker, rule and space after the line number
)

// Options configures a View.
type Options struct {
	Title      string
	Palette    annotation.Palette
	Layout     popover.Layout
	SliderStep int
	Keys       KeyMap
	Logger     zerolog.Logger
}

type dragState struct {
	active bool
	moved  bool
	anchor int
}

// View is the editor component.
type View struct {
	doc       *richtext.Document
	annotator *annotator.Annotator
	handle    *docHandle
	screen    *screen

	keys   KeyMap
	help   help.Model
	slider progress.Model
	modal  *CommentModal
	drag   dragState

	helpOpen bool
	notice   string

	title  string
	step   int
	width  int
	height int
	log    zerolog.Logger
}

// New creates an editor over doc.
func New(doc *richtext.Document, opts Options) View {
	if opts.SliderStep <= 0 {
		opts.SliderStep = 5
	}
	if len(opts.Keys.Quit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}

	s := &screen{top: headerRows}
	h := newDocHandle(doc, s)

	v := View{
		doc:    doc,
		handle: h,
		screen: s,
		annotator: annotator.New(h, annotator.Options{
			Palette: opts.Palette,
			Layout:  opts.Layout,
			Logger:  opts.Logger,
		}),
		keys:   opts.Keys,
		help:   help.New(),
		slider: progress.New(progress.WithWidth(sliderWidth), progress.WithoutPercentage()),
		title:  opts.Title,
		step:   opts.SliderStep,
		width:  80,
		height: 24,
		log:    opts.Logger,
	}
	v.syncScreen()
	return v
}

// Init implements tea.Model.
func (v View) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.syncScreen()
	v.ensureCursorVisible()
}

// Document returns the edited document.
func (v View) Document() *richtext.Document { return v.doc }

// Annotator returns the annotation component.
func (v View) Annotator() *annotator.Annotator { return v.annotator }

// Keys returns the active key bindings.
func (v View) Keys() KeyMap { return v.keys }

// SetNotice shows a short message in the header. An empty string clears it.
func (v *View) SetNotice(s string) { v.notice = s }

// HasActiveEditor reports whether the comment input holds focus.
func (v View) HasActiveEditor() bool { return v.modal != nil }

// Update handles messages.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if v.helpOpen {
			if key.Matches(msg, v.keys.Dismiss, v.keys.Help) {
				v.helpOpen = false
			}
			return v, nil
		}
		if v.modal != nil {
			return v.updateModal(msg)
		}
		return v.handleKey(msg)

	case tea.MouseClickMsg:
		if v.modal != nil || v.helpOpen {
			return v, nil
		}
		m := msg.Mouse()
		if m.Button == tea.MouseLeft {
			v.handlePress(m.X, m.Y)
		}
		return v, nil

	case tea.MouseMotionMsg:
		if v.modal == nil && v.drag.active {
			m := msg.Mouse()
			v.handleDrag(m.X, m.Y)
		}
		return v, nil

	case tea.MouseReleaseMsg:
		if v.modal == nil && v.drag.active {
			v.handleRelease()
		}
		return v, nil

	case tea.MouseWheelMsg:
		if v.modal != nil {
			return v, nil
		}
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			v.scrollBy(-wheelStep)
		case tea.MouseWheelDown:
			v.scrollBy(wheelStep)
		}
		return v, nil
	}

	if v.modal != nil {
		return v.updateModal(msg)
	}
	return v, nil
}

func (v View) updateModal(msg tea.Msg) (View, tea.Cmd) {
	modal, cmd := v.modal.Update(msg)
	v.modal = &modal

	switch {
	case modal.Submitted():
		v.closeModal()
		v.annotator.SaveComment(modal.Value())
	case modal.Cancelled():
		v.closeModal()
		v.annotator.CancelComment()
	}
	return v, cmd
}

func (v *View) openModal() {
	frozen := v.annotator.State().Frozen
	selected := v.doc.Slice(richtext.Range{Index: frozen.Index, Length: frozen.Length})

	m := NewCommentModal(frozen.Index, frozen.End(), selected, min(v.width, modalWidth))
	text, existing := v.annotator.ExistingComment()
	if existing {
		m.SetExistingComment(text)
	}
	v.log.Debug().
		Int("anchor", frozen.Index).
		Int("length", frozen.Length).
		Bool("existing", existing).
		Msg("comment editor opened")

	v.modal = &m
	v.handle.blurred = true
}

func (v *View) closeModal() {
	v.modal = nil
	v.handle.blurred = false
}

func (v View) handleKey(msg tea.KeyPressMsg) (View, tea.Cmd) {
	st := v.annotator.State()

	if st.Visible(popover.KindSlider) {
		if v.handleSliderKey(msg, st.SliderValue) {
			return v, nil
		}
	}

	switch {
	case key.Matches(msg, v.keys.Help):
		v.helpOpen = true
		return v, nil
	case key.Matches(msg, v.keys.Dismiss):
		v.annotator.Dismiss()
		return v, nil
	case key.Matches(msg, v.keys.Bold):
		v.annotator.Bold()
		return v, nil
	case key.Matches(msg, v.keys.Rate):
		v.annotator.Rate()
		return v, nil
	case key.Matches(msg, v.keys.Comment):
		v.annotator.Comment()
		if v.annotator.State().Visible(popover.KindCommentEditor) {
			v.openModal()
		}
		return v, nil
	case key.Matches(msg, v.keys.Undo):
		v.edit(func() { v.annotator.Undo() })
		return v, nil
	case key.Matches(msg, v.keys.Redo):
		v.edit(func() { v.annotator.Redo() })
		return v, nil
	}

	switch msg.String() {
	case "left", "shift+left":
		v.edit(func() { v.doc.MoveLeft(msg.Mod&tea.ModShift != 0) })
	case "right", "shift+right":
		v.edit(func() { v.doc.MoveRight(msg.Mod&tea.ModShift != 0) })
	case "up", "shift+up":
		v.edit(func() { v.doc.MoveUp(msg.Mod&tea.ModShift != 0) })
	case "down", "shift+down":
		v.edit(func() { v.doc.MoveDown(msg.Mod&tea.ModShift != 0) })
	case "home", "shift+home":
		v.edit(func() { v.doc.LineStart(msg.Mod&tea.ModShift != 0) })
	case "end", "shift+end":
		v.edit(func() { v.doc.LineEnd(msg.Mod&tea.ModShift != 0) })
	case "ctrl+a":
		v.edit(v.doc.SelectAll)
	case "enter":
		v.edit(func() { v.doc.Insert("\n") })
	case "tab":
		v.edit(func() { v.doc.Insert("\t") })
	case "backspace":
		v.edit(v.doc.DeleteBackward)
	case "delete":
		v.edit(v.doc.DeleteForward)
	default:
		if msg.Text != "" && msg.Mod&(tea.ModCtrl|tea.ModAlt) == 0 {
			v.edit(func() { v.doc.Insert(msg.Text) })
		}
	}
	return v, nil
}

// handleSliderKey adjusts the rating. It reports whether the key was used.
func (v *View) handleSliderKey(msg tea.KeyPressMsg, value int) bool {
	switch msg.String() {
	case "left":
		v.annotator.Slide(value - v.step)
	case "right":
		v.annotator.Slide(value + v.step)
	case "home":
		v.annotator.Slide(annotation.MinRating)
	case "end":
		v.annotator.Slide(annotation.MaxRating)
	case "enter":
		v.annotator.Dismiss()
	default:
		return false
	}
	return true
}

// edit runs fn and tells the annotator when the selection moved.
func (v *View) edit(fn func()) {
	before := v.doc.Selection()
	fn()
	v.syncScreen()
	v.ensureCursorVisible()
	if v.doc.Selection() != before {
		v.annotator.SelectionChanged()
	}
}

func (v *View) handlePress(x, y int) {
	st := v.annotator.State()

	if st.Visible(popover.KindToolbar) {
		tb, buttons := v.toolbar()
		if tb.box.contains(x, y) {
			if y == tb.box.y+1 {
				v.pressToolbar(buttons, x-tb.box.x)
			}
			return
		}
	}

	if st.Visible(popover.KindSlider) {
		sb := v.sliderBox()
		if sb.box.contains(x, y) {
			if value, ok := sliderValueAt(sb.box, x); ok && y == sb.box.y+1 {
				v.annotator.Slide(value)
			}
			return
		}
	}

	if st.Visible(popover.KindToolbar) || st.Visible(popover.KindSlider) {
		v.annotator.OutsideClick()
	}

	if y < headerRows {
		v.pressHeader(x)
		return
	}
	if y >= v.height-footerRows {
		return
	}

	offset := v.doc.OffsetAt(v.screen.toDoc(x, y))
	v.drag = dragState{active: true, anchor: offset}
	v.edit(func() { v.doc.SetCursor(offset) })
}

func (v *View) pressToolbar(buttons []button, col int) {
	for _, b := range buttons {
		if col < b.from || col >= b.to {
			continue
		}
		switch b.action {
		case actionBold:
			v.annotator.Bold()
		case actionRate:
			v.annotator.Rate()
		case actionComment:
			v.annotator.Comment()
			if v.annotator.State().Visible(popover.KindCommentEditor) {
				v.openModal()
			}
		}
		return
	}
}

func (v *View) pressHeader(x int) {
	undo, redo := v.headerButtons()
	switch {
	case undo.contains(x, 0) && v.doc.CanUndo():
		v.edit(func() { v.annotator.Undo() })
	case redo.contains(x, 0) && v.doc.CanRedo():
		v.edit(func() { v.annotator.Redo() })
	}
}

func (v *View) handleDrag(x, y int) {
	y = min(max(y, headerRows), v.height-footerRows-1)
	offset := v.doc.OffsetAt(v.screen.toDoc(x, y))
	if offset == v.drag.anchor && !v.drag.moved {
		return
	}
	v.drag.moved = true
	v.doc.Select(v.drag.anchor, offset)
	v.ensureCursorVisible()
}

// handleRelease finishes a press. A drag reports the new selection; a plain
// click asks the annotator for a comment under the caret.
func (v *View) handleRelease() {
	moved := v.drag.moved
	v.drag = dragState{}

	if moved {
		v.annotator.SelectionChanged()
		return
	}
	v.annotator.Click()
}

func (v *View) scrollBy(delta int) {
	maxScroll := max(v.doc.RowCount()-1, 0)
	v.screen.scroll = min(max(v.screen.scroll+delta, 0), maxScroll)
	if v.annotator.State().Visible(popover.KindToolbar) {
		v.annotator.SelectionChanged()
	}
}

func (v View) textHeight() int {
	return max(v.height-headerRows-footerRows, 1)
}

// syncScreen recomputes the gutter after the row count changed.
func (v *View) syncScreen() {
	v.screen.gutter = len(fmt.Sprint(v.doc.RowCount())) + gutterExtra
}

func (v View) textWidth() int {
	return max(v.width-v.screen.gutter, 1)
}

func (v *View) ensureCursorVisible() {
	pos := v.doc.PosAt(v.doc.Cursor())
	h := v.textHeight()
	if pos.Row < v.screen.scroll {
		v.screen.scroll = pos.Row
	}
	if pos.Row >= v.screen.scroll+h {
		v.screen.scroll = pos.Row - h + 1
	}

	w := v.textWidth()
	if pos.Col < v.screen.left {
		v.screen.left = pos.Col
	}
	if pos.Col >= v.screen.left+w {
		v.screen.left = pos.Col - w + 1
	}
}

// View renders the editor.
func (v View) View() string {
	rows := make([]string, 0, v.height)
	rows = append(rows, v.renderHeader())
	rows = append(rows, v.renderBody()...)
	rows = append(rows, v.renderFooter())
	base := strings.Join(rows, "\n")

	layers := v.overlays()
	if v.modal != nil {
		layers = append(layers, v.renderCenteredModal(v.modal.View()))
	}
	if v.helpOpen {
		layers = append(layers, v.renderCenteredModal(v.helpDialog().View()))
	}
	return composite(base, layers)
}

func (v View) helpDialog() *components.HelpDialog {
	k := v.keys
	return components.NewHelpDialog("Keyboard Shortcuts", []components.HelpDialogSection{
		components.SectionFromBindings("Annotate", k.Bold, k.Rate, k.Comment),
		components.SectionFromBindings("History", k.Undo, k.Redo),
		{
			Title: "Editing",
			Entries: []components.HelpEntry{
				{Key: "shift+arrows", Desc: "extend selection"},
				{Key: "ctrl+a", Desc: "select all"},
				{Key: "←/→ home/end", Desc: "adjust rating slider"},
			},
		},
		components.SectionFromBindings("General", k.Dismiss, k.Help, k.Quit),
	})
}

// headerButtons returns the undo and redo button boxes on the header row.
func (v View) headerButtons() (undo, redo box) {
	uw := lipgloss.Width(styles.HeaderButtonStyle.Render(styles.IconUndo + " undo"))
	rw := lipgloss.Width(styles.HeaderButtonStyle.Render(styles.IconRedo + " redo"))
	redo = box{x: v.width - rw, y: 0, w: rw, h: 1}
	undo = box{x: redo.x - 1 - uw, y: 0, w: uw, h: 1}
	return undo, redo
}

// headerButton greys out a button that has nothing to do.
func headerButton(label string, enabled bool) string {
	if enabled {
		return styles.HeaderButtonStyle.Render(label)
	}
	return styles.HeaderButtonOffStyle.Render(label)
}

func (v View) renderHeader() string {
	title := v.title
	if title == "" {
		title = "untitled"
	}

	count := v.annotator.Store().Len()
	noun := "comments"
	if count == 1 {
		noun = "comment"
	}

	left := styles.HeaderStyle.Render("marginalia") + " " +
		styles.TextMutedStyle.Render(fmt.Sprintf("%s · %d %s", title, count, noun))
	if v.notice != "" {
		left += " " + styles.NoticeStyle.Render(v.notice)
	}
	right := headerButton(styles.IconUndo+" undo", v.doc.CanUndo()) + " " +
		headerButton(styles.IconRedo+" redo", v.doc.CanRedo())

	gap := v.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left, max(v.width-lipgloss.Width(right)-1, 0), "…") + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func (v View) renderBody() []string {
	lines := v.doc.Lines()
	sel := v.doc.Selection()
	cursor := v.doc.Cursor()
	cursorRow := v.doc.PosAt(cursor).Row
	marked := v.annotatedRows()

	digits := v.screen.gutter - gutterExtra
	out := make([]string, 0, v.textHeight())
	for i := 0; i < v.textHeight(); i++ {
		row := v.screen.scroll + i
		if row >= len(lines) {
			out = append(out, styles.GutterStyle.Render(strings.Repeat(" ", digits+1)+"│"))
			continue
		}

		gutterStyle := styles.GutterStyle
		if row == cursorRow {
			gutterStyle = styles.GutterActiveStyle
		}
		marker := " "
		if marked[row] {
			marker = "•"
		}
		gutter := gutterStyle.Render(fmt.Sprintf("%*d%s│", digits, row+1, marker)) + " "

		text := ansi.Cut(v.renderLine(lines[row], sel, cursor), v.screen.left, v.screen.left+v.textWidth())
		out = append(out, ansi.Truncate(gutter+text, v.width, ""))
	}
	return out
}

// annotatedRows returns the rows on which a comment starts.
func (v View) annotatedRows() map[int]bool {
	rows := make(map[int]bool)
	for _, rec := range v.annotator.Store().Records() {
		rows[v.doc.PosAt(rec.Anchor).Row] = true
	}
	return rows
}

type cellKey struct {
	attrs    richtext.Attrs
	selected bool
	cursor   bool
}

func cellStyle(k cellKey) lipgloss.Style {
	s := styles.TextStyle
	if k.attrs.Bold {
		s = s.Bold(true)
	}
	if k.attrs.Underline {
		s = s.Underline(true)
	}
	if k.attrs.Background != "" {
		s = s.Background(lipgloss.Color(k.attrs.Background)).
			Foreground(lipgloss.Color(ratingInk))
	}
	if k.selected {
		s = s.Background(styles.ColorSurface).Foreground(styles.ColorForeground)
	}
	if k.cursor {
		s = s.Reverse(true)
	}
	return s
}

// renderLine styles one row, grouping runs of identically styled cells.
func (v View) renderLine(ln richtext.Line, sel richtext.Range, cursor int) string {
	showCursor := v.modal == nil && sel.IsEmpty()

	var (
		b     strings.Builder
		run   strings.Builder
		runAt cellKey
		open  bool
	)
	flush := func() {
		if open {
			b.WriteString(cellStyle(runAt).Render(run.String()))
			run.Reset()
		}
	}

	for i, r := range ln.Runes {
		offset := ln.Start + i
		k := cellKey{
			attrs:    ln.Attrs[i],
			selected: offset >= sel.Index && offset < sel.End(),
			cursor:   showCursor && offset == cursor,
		}
		if !open || k != runAt {
			flush()
			runAt, open = k, true
		}
		if r == '\t' {
			run.WriteString(strings.Repeat(" ", v.doc.CellWidth(r)))
		} else {
			run.WriteRune(r)
		}
	}
	flush()

	if showCursor && cursor == ln.End() {
		b.WriteString(styles.CursorStyle.Render(" "))
	}
	return b.String()
}

func (v View) renderFooter() string {
	left := v.help.ShortHelpView(v.keys.ShortHelp())

	pos := v.doc.PosAt(v.doc.Cursor())
	status := fmt.Sprintf("%d:%d", pos.Row+1, pos.Col+1)
	if sel := v.doc.Selection(); !sel.IsEmpty() {
		status = fmt.Sprintf("%d selected  %s", sel.Length, status)
	}
	right := styles.StatusStyle.Render(status)

	gap := v.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left, max(v.width-lipgloss.Width(right)-1, 0), "…") + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}
