// Package components provides reusable TUI components.
package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/marginalia/internal/core/styles"
)

const helpKeyWidth = 14

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// SectionFromBindings builds a section from enabled key bindings.
func SectionFromBindings(title string, bindings ...key.Binding) HelpDialogSection {
	s := HelpDialogSection{Title: title}
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		s.Entries = append(s.Entries, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return s
}

// HelpDialog lists keyboard shortcuts. The caller frames and places it.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a new help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{title: title, sections: sections}
}

// View renders the dialog content.
func (h *HelpDialog) View() string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.ColorPrimary).Bold(true)
	separator := styles.DividerStyle.Render(strings.Repeat("─", 28))

	lines := []string{styles.ModalTitleStyle.Render(h.title)}
	for i, section := range h.sections {
		if len(section.Entries) == 0 {
			continue
		}
		if section.Title != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, styles.CommandHeaderStyle.Render(section.Title), separator)
		}
		for _, e := range section.Entries {
			pad := max(helpKeyWidth-lipgloss.Width(e.Key), 1)
			lines = append(lines, keyStyle.Render(e.Key)+strings.Repeat(" ", pad)+styles.TextStyle.Render(e.Desc))
		}
	}

	lines = append(lines, styles.ModalHelpStyle.Render("esc close"))
	return strings.Join(lines, "\n")
}
