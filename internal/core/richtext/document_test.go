package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(text string) *Document {
	return New(text, DefaultOptions())
}

func TestDocument_Selection(t *testing.T) {
	d := newDoc("hello world")

	d.Select(8, 3)
	assert.Equal(t, Range{Index: 3, Length: 5}, d.Selection())
	assert.Equal(t, 3, d.Cursor())
	assert.True(t, d.HasSelection())

	d.SetCursor(100)
	assert.Equal(t, Range{Index: 11}, d.Selection())
	assert.False(t, d.HasSelection())
}

func TestDocument_MoveExtend(t *testing.T) {
	d := newDoc("abcdef")
	d.SetCursor(2)

	d.MoveRight(true)
	d.MoveRight(true)
	assert.Equal(t, Range{Index: 2, Length: 2}, d.Selection())

	d.MoveLeft(false)
	assert.Equal(t, Range{Index: 2}, d.Selection(), "left collapses to selection start")

	d.Select(1, 4)
	d.MoveRight(false)
	assert.Equal(t, Range{Index: 4}, d.Selection(), "right collapses to selection end")
}

func TestDocument_MoveVerticalKeepsColumn(t *testing.T) {
	d := newDoc("abcdef\nab\nabcdef")
	d.SetCursor(5)

	d.MoveDown(false)
	assert.Equal(t, Pos{Row: 1, Col: 2}, d.PosAt(d.Cursor()))

	d.MoveDown(false)
	assert.Equal(t, Pos{Row: 2, Col: 5}, d.PosAt(d.Cursor()))

	d.MoveDown(false)
	assert.Equal(t, d.Len(), d.Cursor())

	d.SetCursor(3)
	d.MoveUp(true)
	assert.Equal(t, Range{Index: 0, Length: 3}, d.Selection())
}

func TestDocument_LineStartEnd(t *testing.T) {
	d := newDoc("one\ntwo three\nfour")
	d.SetCursor(6)

	d.LineEnd(true)
	assert.Equal(t, "o three", d.Slice(d.Selection()))

	d.LineStart(false)
	assert.Equal(t, 4, d.Cursor())
}

func TestDocument_InsertReplacesSelectionAndInherits(t *testing.T) {
	d := newDoc("hello world")
	d.SetBold(Range{Index: 0, Length: 5}, true)
	d.Select(5, 11)

	d.Insert("!")

	assert.Equal(t, "hello!", d.Text())
	assert.Equal(t, 6, d.Cursor())
	_, a, ok := d.RuneAt(5)
	require.True(t, ok)
	assert.True(t, a.Bold)
}

func TestDocument_Delete(t *testing.T) {
	d := newDoc("abc")
	d.SetCursor(0)
	d.DeleteBackward()
	assert.Equal(t, "abc", d.Text())

	d.DeleteForward()
	assert.Equal(t, "bc", d.Text())

	d.SetCursor(2)
	d.DeleteBackward()
	assert.Equal(t, "b", d.Text())
	d.DeleteForward()
	assert.Equal(t, "b", d.Text())

	d.SelectAll()
	d.DeleteBackward()
	assert.Equal(t, "", d.Text())
}

func TestDocument_OnChange(t *testing.T) {
	d := newDoc("ab")

	var got []Change
	d.OnChange(func(c Change) { got = append(got, c) })

	d.SetCursor(2)
	d.Insert("c")
	d.SetBold(Range{Index: 0, Length: 3}, true)
	d.DeleteBackward()

	require.Len(t, got, 2, "attribute changes do not notify")
	assert.Equal(t, Change{Version: 1, Text: "abc"}, got[0])
	assert.Equal(t, Change{Version: 2, Text: "ab"}, got[1])
}

func TestDocument_Format(t *testing.T) {
	d := newDoc("ab\ncd")
	d.SetBold(Range{Index: 0, Length: 5}, true)
	d.SetBackground(Range{Index: 0, Length: 2}, "#ff0000")
	d.SetUnderline(Range{Index: 3, Length: 1}, true)

	all := d.Format(Range{Index: 0, Length: 5})
	assert.True(t, all.Bold, "newline is skipped")
	assert.Empty(t, all.Background)
	assert.False(t, all.Underline)

	first := d.Format(Range{Index: 0, Length: 2})
	assert.Equal(t, Attrs{Bold: true, Background: "#ff0000"}, first)

	caret := d.Format(Range{Index: 4})
	assert.Equal(t, Attrs{Bold: true, Underline: true}, caret)

	_, nl, _ := d.RuneAt(2)
	assert.Equal(t, Attrs{}, nl, "newlines never carry attributes")
}

func TestDocument_UndoRedo(t *testing.T) {
	d := newDoc("abc")
	d.SetCursor(3)
	d.Insert("d")
	d.SetBold(Range{Index: 0, Length: 2}, true)

	require.True(t, d.Undo())
	assert.False(t, d.Format(Range{Index: 0, Length: 2}).Bold)
	assert.Equal(t, "abcd", d.Text())

	require.True(t, d.Undo())
	assert.Equal(t, "abc", d.Text())
	assert.False(t, d.Undo())

	require.True(t, d.Redo())
	assert.Equal(t, "abcd", d.Text())
	require.True(t, d.Redo())
	assert.True(t, d.Format(Range{Index: 0, Length: 2}).Bold)
	assert.False(t, d.Redo())
}

func TestDocument_UndoClearsRedoOnNewEdit(t *testing.T) {
	d := newDoc("")
	d.Insert("a")
	d.Undo()
	require.True(t, d.CanRedo())

	d.Insert("b")
	assert.False(t, d.CanRedo())
}

func TestDocument_HistoryLimit(t *testing.T) {
	d := New("", Options{HistoryLimit: 2})
	d.Insert("a")
	d.Insert("b")
	d.Insert("c")

	assert.True(t, d.Undo())
	assert.True(t, d.Undo())
	assert.False(t, d.Undo())
	assert.Equal(t, "a", d.Text())

	off := New("", Options{})
	off.Insert("x")
	assert.False(t, off.CanUndo())
}

func TestDocument_NoopFormatSkipsHistory(t *testing.T) {
	d := newDoc("abc")
	d.SetBold(Range{Index: 0, Length: 3}, false)
	assert.False(t, d.CanUndo())
}
