package editor

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/marginalia/internal/core/annotation"
	"github.com/hay-kot/marginalia/internal/core/popover"
	"github.com/hay-kot/marginalia/internal/core/richtext"
	"github.com/hay-kot/marginalia/internal/core/styles"
	"github.com/hay-kot/marginalia/pkg/tuitest"
)

// Two rows, so the gutter is "1•│ " (4 cells) and document row r is screen
// row r+1.
const sample = "hello world\nsecond line"

func newTestView(t *testing.T, text string) View {
	t.Helper()
	doc := richtext.New(text, richtext.DefaultOptions())
	v := New(doc, Options{
		Title:      "draft.txt",
		Layout:     popover.CellLayout(),
		SliderStep: 5,
	})
	v.SetSize(80, 20)
	return v
}

func send(v View, msgs ...tea.Msg) View {
	for _, msg := range msgs {
		v, _ = v.Update(msg)
	}
	return v
}

// cell returns the screen cell of a document position in the sample view.
func cell(row, col int) (int, int) {
	return col + 4, row + 1
}

func dragSelect(v View, row, from, to int) View {
	x1, y := cell(row, from)
	x2, _ := cell(row, to)
	return send(v,
		tuitest.MouseClick(x1, y),
		tuitest.MouseMotion(x2, y),
		tuitest.MouseRelease(x2, y),
	)
}

func shiftRight(n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = tuitest.Shift(tea.KeyRight)
	}
	return msgs
}

func TestView_DragShowsToolbarAboveSelection(t *testing.T) {
	v := newTestView(t, "one\ntwo\nthree\nhello world\nlast")
	v = dragSelect(v, 3, 6, 11)

	assert.Equal(t, richtext.Range{Index: 20, Length: 5}, v.doc.Selection())

	st := v.annotator.State()
	require.Equal(t, popover.KindToolbar, st.Kind)
	assert.Equal(t, popover.Position{Top: 4 - 3, Left: 10}, st.Position)

	lines := tuitest.Lines(v.View())
	assert.Contains(t, lines[2], "B bold")
	assert.Contains(t, lines[2], "rate")
	assert.Contains(t, lines[2], "comment")
	assert.Contains(t, lines[4], "hello world")
}

func TestView_ToolbarBelowSelectionOnFirstRow(t *testing.T) {
	v := newTestView(t, sample)
	v = dragSelect(v, 0, 0, 5)

	require.Equal(t, popover.KindToolbar, v.annotator.State().Kind)
	tb, _ := v.toolbar()
	_, selRow := cell(0, 0)
	assert.Equal(t, selRow+1, tb.box.y)
	assert.False(t, tb.box.contains(2+4, selRow), "toolbar must not cover the selection")

	// the selected text stays clickable
	x, y := cell(0, 2)
	v = send(v, tuitest.MouseClick(x, y), tuitest.MouseRelease(x, y))
	assert.True(t, v.doc.Selection().IsEmpty())
	assert.Equal(t, 2, v.doc.Cursor())
}

func TestView_HorizontalScrollFollowsCursor(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 12) + "closing words"
	v := newTestView(t, long+"\nshort")

	v = send(v, tuitest.KeyPress(tea.KeyEnd))
	require.Equal(t, len(long), v.doc.Cursor())
	assert.Positive(t, v.screen.left)

	lines := tuitest.Lines(v.View())
	assert.Contains(t, lines[1], "closing words")
	assert.True(t, strings.HasPrefix(lines[1], "1 │ "), "gutter stays in place")

	v = send(v, tuitest.Shift(tea.KeyLeft), tuitest.Shift(tea.KeyLeft), tuitest.Shift(tea.KeyLeft))
	st := v.annotator.State()
	require.Equal(t, popover.KindToolbar, st.Kind)
	tb, _ := v.toolbar()
	assert.Equal(t, len(long)-3-v.screen.left+4, st.Position.Left)
	assert.Less(t, st.Position.Left, 80)
	assert.Equal(t, 2, tb.box.y)

	// a click maps through the scroll offset
	v = send(v, tuitest.KeyEsc())
	x, y := cell(0, 10)
	v = send(v, tuitest.MouseClick(x, y), tuitest.MouseRelease(x, y))
	assert.Equal(t, v.screen.left+10, v.doc.Cursor())

	v = send(v, tuitest.KeyPress(tea.KeyHome))
	assert.Zero(t, v.screen.left)
	assert.True(t, strings.HasPrefix(tuitest.Lines(v.View())[1], "1 │ lorem ipsum"))
}

func TestView_KeyboardSelection(t *testing.T) {
	v := newTestView(t, sample)
	v = send(v, shiftRight(5)...)

	assert.Equal(t, richtext.Range{Index: 0, Length: 5}, v.doc.Selection())
	assert.Equal(t, popover.KindToolbar, v.annotator.State().Kind)

	v = send(v, tuitest.KeyPress(tea.KeyRight))
	assert.True(t, v.annotator.State().IsIdle(), "collapsing the selection hides the toolbar")
}

func TestView_CommentSaveAndTooltip(t *testing.T) {
	v := newTestView(t, sample)
	v = send(v, shiftRight(5)...)
	v = send(v, tuitest.Ctrl('t'))

	require.True(t, v.HasActiveEditor())
	require.Equal(t, popover.KindCommentEditor, v.annotator.State().Kind)
	assert.Contains(t, tuitest.StripANSI(v.View()), "Add Comment")

	v.modal.textInput.SetValue("nice opener")
	v = send(v, tuitest.KeyEnter())

	assert.False(t, v.HasActiveEditor())
	assert.True(t, v.annotator.State().IsIdle())
	records := v.annotator.Store().Records()
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].Anchor)
	assert.Equal(t, 5, records[0].Length)
	assert.Equal(t, "nice opener", records[0].Text)
	assert.True(t, v.doc.Format(richtext.Range{Index: 0, Length: 5}).Underline)

	x, y := cell(0, 2)
	v = send(v, tuitest.MouseClick(x, y), tuitest.MouseRelease(x, y))

	st := v.annotator.State()
	require.Equal(t, popover.KindTooltip, st.Kind)
	assert.Equal(t, "nice opener", st.Tooltip)
	assert.Contains(t, tuitest.StripANSI(v.View()), "nice opener")
}

func TestView_ClickOnBoundaryShowsNoTooltip(t *testing.T) {
	v := newTestView(t, sample)
	v = send(v, shiftRight(5)...)
	v = send(v, tuitest.Ctrl('t'))
	v.modal.textInput.SetValue("note")
	v = send(v, tuitest.KeyEnter())

	for _, col := range []int{0, 5} {
		x, y := cell(0, col)
		v = send(v, tuitest.MouseClick(x, y), tuitest.MouseRelease(x, y))
		assert.True(t, v.annotator.State().IsIdle(), "offset %d", col)
	}
}

func TestView_CommentModalPrefillsAndDeletes(t *testing.T) {
	v := newTestView(t, sample)
	v = send(v, shiftRight(5)...)
	v = send(v, tuitest.Ctrl('t'))
	v.modal.textInput.SetValue("first")
	v = send(v, tuitest.KeyEnter())

	v = send(v, tuitest.KeyPress(tea.KeyHome))
	v = send(v, shiftRight(5)...)
	v = send(v, tuitest.Ctrl('t'))
	require.True(t, v.HasActiveEditor())
	assert.Equal(t, "first", v.modal.Value())
	assert.Contains(t, tuitest.StripANSI(v.View()), "Edit Comment")

	v.modal.textInput.SetValue("")
	v = send(v, tuitest.KeyEnter())

	assert.Equal(t, 0, v.annotator.Store().Len())
	assert.False(t, v.doc.Format(richtext.Range{Index: 0, Length: 5}).Underline)
}

func TestView_CommentCancel(t *testing.T) {
	v := newTestView(t, sample)
	v = send(v, shiftRight(5)...)
	v = send(v, tuitest.Ctrl('t'))
	v.modal.textInput.SetValue("draft")
	v = send(v, tuitest.KeyEsc())

	assert.False(t, v.HasActiveEditor())
	assert.True(t, v.annotator.State().IsIdle())
	assert.Equal(t, 0, v.annotator.Store().Len())
	assert.False(t, v.doc.Format(richtext.Range{Index: 0, Length: 5}).Underline)
}

func TestView_ModalIgnoresMouse(t *testing.T) {
	v := newTestView(t, sample)
	v = send(v, shiftRight(5)...)
	v = send(v, tuitest.Ctrl('t'))

	x, y := cell(1, 3)
	v = send(v, tuitest.MouseClick(x, y), tuitest.MouseRelease(x, y))

	assert.True(t, v.HasActiveEditor())
	assert.Equal(t, richtext.Range{Index: 0, Length: 5}, v.doc.Selection())
}

func TestView_RateWithKeys(t *testing.T) {
	v := newTestView(t, sample)
	v = send(v, shiftRight(5)...)
	v = send(v, tuitest.Ctrl('r'))
	require.Equal(t, popover.KindSlider, v.annotator.State().Kind)

	v = send(v, tuitest.KeyPress(tea.KeyRight))
	st := v.annotator.State()
	assert.Equal(t, 5, st.SliderValue)
	assert.Equal(t, "#f71402", st.Background)
	assert.Equal(t, richtext.Range{Index: 0, Length: 5}, v.doc.Selection(), "slider keys do not move the caret")

	v = send(v, tuitest.KeyPress(tea.KeyEnd))
	st = v.annotator.State()
	assert.Equal(t, annotation.MaxRating, st.SliderValue)
	assert.Equal(t, "#1d9c03", v.doc.Format(richtext.Range{Index: 0, Length: 5}).Background)

	v = send(v, tuitest.KeyPress(tea.KeyHome))
	assert.Equal(t, annotation.MinRating, v.annotator.State().SliderValue)
	assert.Equal(t, "#f71402", v.doc.Format(richtext.Range{Index: 0, Length: 5}).Background)
}

func TestView_SliderClick(t *testing.T) {
	v := newTestView(t, sample)
	v = send(v, shiftRight(5)...)
	v = send(v, tuitest.Ctrl('r'))

	sb := v.sliderBox()
	v = send(v, tuitest.MouseClick(sb.box.x+1+sliderWidth-1, sb.box.y+1))

	assert.Equal(t, annotation.MaxRating, v.annotator.State().SliderValue)
	assert.Equal(t, popover.KindSlider, v.annotator.State().Kind)
}

func TestView_ToolbarBoldButton(t *testing.T) {
	v := newTestView(t, sample)
	v = dragSelect(v, 0, 6, 11)

	tb, buttons := v.toolbar()
	require.Len(t, buttons, 3)
	v = send(v, tuitest.MouseClick(tb.box.x+buttons[0].from, tb.box.y+1))

	assert.True(t, v.doc.Format(richtext.Range{Index: 6, Length: 5}).Bold)
	assert.Equal(t, popover.KindToolbar, v.annotator.State().Kind)

	v = send(v, tuitest.Ctrl('z'))
	assert.False(t, v.doc.Format(richtext.Range{Index: 6, Length: 5}).Bold)
	assert.Equal(t, popover.KindToolbar, v.annotator.State().Kind, "undo keeps the popover")

	v = send(v, tuitest.Ctrl('y'))
	assert.True(t, v.doc.Format(richtext.Range{Index: 6, Length: 5}).Bold)
}

func TestView_ToolbarCommentButton(t *testing.T) {
	v := newTestView(t, sample)
	v = dragSelect(v, 1, 0, 6)

	tb, buttons := v.toolbar()
	v = send(v, tuitest.MouseClick(tb.box.x+buttons[2].from, tb.box.y+1))

	require.True(t, v.HasActiveEditor())
	assert.Equal(t, popover.KindCommentEditor, v.annotator.State().Kind)
	assert.Equal(t, 12, v.annotator.State().Frozen.Index)
}

func TestView_OutsideClickHidesToolbar(t *testing.T) {
	v := newTestView(t, sample)
	v = dragSelect(v, 0, 6, 11)
	require.Equal(t, popover.KindToolbar, v.annotator.State().Kind)

	x, y := cell(1, 0)
	v = send(v, tuitest.MouseClick(x, y), tuitest.MouseRelease(x, y))

	assert.True(t, v.annotator.State().IsIdle())
	assert.Equal(t, 12, v.doc.Cursor())
}

func TestView_EscapeDismisses(t *testing.T) {
	v := newTestView(t, sample)
	v = send(v, shiftRight(3)...)
	v = send(v, tuitest.Ctrl('r'))
	v = send(v, tuitest.KeyEsc())

	assert.True(t, v.annotator.State().IsIdle())
}

func TestView_Typing(t *testing.T) {
	v := newTestView(t, "")
	v = send(v, tuitest.Type("hi")...)
	v = send(v, tuitest.KeyEnter())
	v = send(v, tuitest.Type("yo")...)
	v = send(v, tuitest.KeyPress(tea.KeyBackspace))

	assert.Equal(t, "hi\ny", v.doc.Text())
	assert.Equal(t, 4, v.doc.Cursor())
}

func TestView_HeaderUndoButton(t *testing.T) {
	v := newTestView(t, sample)
	v = send(v, shiftRight(5)...)
	v = send(v, tuitest.Ctrl('b'))
	require.True(t, v.doc.Format(richtext.Range{Index: 0, Length: 5}).Bold)

	undo, _ := v.headerButtons()
	v = send(v, tuitest.MouseClick(undo.x, 0))

	assert.False(t, v.doc.Format(richtext.Range{Index: 0, Length: 5}).Bold)
	assert.True(t, v.annotator.State().IsIdle(), "a press outside the toolbar hides it")
}

func TestView_HeaderButtonsFollowHistory(t *testing.T) {
	v := newTestView(t, sample)
	undoOff := styles.HeaderButtonOffStyle.Render(styles.IconUndo + " undo")
	redoOff := styles.HeaderButtonOffStyle.Render(styles.IconRedo + " redo")

	assert.Contains(t, v.renderHeader(), undoOff)
	assert.Contains(t, v.renderHeader(), redoOff)

	v = send(v, tuitest.KeyText("x"))
	assert.NotContains(t, v.renderHeader(), undoOff)
	assert.Contains(t, v.renderHeader(), redoOff)

	undo, redo := v.headerButtons()
	v = send(v, tuitest.MouseClick(undo.x, 0))
	assert.Equal(t, sample, v.doc.Text())
	assert.Contains(t, v.renderHeader(), undoOff)
	assert.NotContains(t, v.renderHeader(), redoOff)

	v = send(v, tuitest.MouseClick(redo.x, 0))
	assert.Equal(t, "x"+sample, v.doc.Text())
}

func TestView_RenderHeaderAndGutter(t *testing.T) {
	v := newTestView(t, sample)
	lines := tuitest.Lines(v.View())

	require.Len(t, lines, 20)
	assert.True(t, strings.HasPrefix(lines[0], "marginalia draft.txt · 0 comments"))
	assert.Contains(t, lines[0], "undo")
	assert.Equal(t, "1 │ hello world", lines[1])
	assert.Equal(t, "2 │ second line", lines[2])
	assert.Contains(t, lines[19], "1:1")
}

func TestView_GutterMarksAnnotatedRows(t *testing.T) {
	v := newTestView(t, sample)
	v = send(v, tuitest.KeyPress(tea.KeyDown), tuitest.KeyPress(tea.KeyHome))
	v = send(v, shiftRight(6)...)
	v = send(v, tuitest.Ctrl('t'))
	v.modal.textInput.SetValue("verb?")
	v = send(v, tuitest.KeyEnter())

	lines := tuitest.Lines(v.View())
	assert.Equal(t, "2•│ second line", lines[2])
	assert.Contains(t, lines[0], "1 comment")
}

func TestView_ScrollKeepsCursorVisible(t *testing.T) {
	rows := make([]string, 40)
	for i := range rows {
		rows[i] = "line"
	}
	v := newTestView(t, strings.Join(rows, "\n"))

	for range 30 {
		v = send(v, tuitest.KeyDown())
	}

	assert.Equal(t, 30, v.doc.PosAt(v.doc.Cursor()).Row)
	assert.Equal(t, 30-v.textHeight()+1, v.screen.scroll)
	lines := tuitest.Lines(v.View())
	assert.True(t, strings.HasPrefix(lines[v.textHeight()], "31"))
}

func TestView_HelpDialog(t *testing.T) {
	v := newTestView(t, sample)

	v = send(v, tuitest.KeyPress(tea.KeyF1))
	require.True(t, v.helpOpen)
	assert.Contains(t, tuitest.StripANSI(v.View()), "Keyboard Shortcuts")
	assert.Contains(t, tuitest.StripANSI(v.View()), "extend selection")

	v = send(v, tuitest.KeyText("x"))
	assert.Equal(t, sample, v.doc.Text(), "keys do not reach the document while help is open")

	v = send(v, tuitest.KeyEsc())
	assert.False(t, v.helpOpen)
	assert.NotContains(t, tuitest.StripANSI(v.View()), "Keyboard Shortcuts")
}
