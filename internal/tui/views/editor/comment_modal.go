package editor

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/marginalia/internal/core/styles"
)

const previewLines = 3

// CommentModal handles comment entry for the frozen selection.
type CommentModal struct {
	textInput textinput.Model
	rangeInfo string // e.g., "Offsets 5-10"
	preview   string // first lines of the selected text
	editing   bool
	submitted bool
	cancelled bool
}

// NewCommentModal creates a comment modal for the selection [start, end).
func NewCommentModal(start, end int, selected string, width int) CommentModal {
	ti := textinput.New()
	ti.Placeholder = "Write a comment..."
	ti.Focus()
	ti.SetWidth(max(width-10, 10)) // Account for padding and borders

	return CommentModal{
		textInput: ti,
		rangeInfo: fmt.Sprintf("Offsets %d-%d", start, end),
		preview:   formatPreview(selected, max(width-10, 10)),
	}
}

// formatPreview keeps the first few lines of text, each cut to width cells.
func formatPreview(text string, width int) string {
	lines := strings.Split(text, "\n")
	more := len(lines) > previewLines
	if more {
		lines = lines[:previewLines]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	if more {
		lines = append(lines, "…")
	}
	return strings.Join(lines, "\n")
}

// Update handles messages. Enter submits even when the input is empty; an
// empty comment removes the one stored at the selection.
func (m CommentModal) Update(msg tea.Msg) (CommentModal, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.submitted = true
			return m, nil
		case "esc":
			m.cancelled = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View renders the modal body; the caller adds the frame.
func (m CommentModal) View() string {
	title := "Add Comment"
	if m.editing {
		title = "Edit Comment"
	}

	help := "enter: save • esc: cancel"
	if m.editing {
		help = "enter: save (empty removes) • esc: cancel"
	}

	return strings.Join([]string{
		styles.ModalTitleStyle.Render(title),
		styles.TextMutedStyle.Render(m.rangeInfo),
		styles.ModalContextStyle.Render(m.preview),
		m.textInput.View(),
		styles.ModalHelpStyle.Render(help),
	}, "\n")
}

// Submitted returns true if the comment was submitted.
func (m CommentModal) Submitted() bool {
	return m.submitted
}

// Cancelled returns true if the modal was cancelled.
func (m CommentModal) Cancelled() bool {
	return m.cancelled
}

// Value returns the entered comment text.
func (m CommentModal) Value() string {
	return m.textInput.Value()
}

// SetExistingComment pre-fills the modal with existing comment text for editing.
func (m *CommentModal) SetExistingComment(text string) {
	m.editing = true
	m.textInput.SetValue(text)
	m.textInput.CursorEnd()
}
