// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// views can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	var result []string
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " ")
		result = append(result, trimmed)
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// Lines returns the plain-text rows of a rendered view.
func Lines(s string) []string {
	return strings.Split(StripANSI(s), "\n")
}

// KeyPress creates a key press message for a single key code.
func KeyPress(key rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: key})
}

// KeyText creates a key press message that types s.
func KeyText(s string) tea.Msg {
	r := []rune(s)
	if len(r) == 0 {
		return nil
	}
	return tea.KeyPressMsg(tea.Key{Code: r[0], Text: s})
}

// Type returns one key press per rune of s.
func Type(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, KeyText(string(r)))
	}
	return msgs
}

// Ctrl creates a ctrl+<key> press message.
func Ctrl(key rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: key, Mod: tea.ModCtrl})
}

// Shift creates a shift+<key> press message for a special key such as
// tea.KeyLeft.
func Shift(key rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: key, Mod: tea.ModShift})
}

// KeyDown creates a down arrow key press message.
func KeyDown() tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
}

// KeyUp creates an up arrow key press message.
func KeyUp() tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
}

// KeyEnter creates an enter key press message.
func KeyEnter() tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
}

// KeyEsc creates an escape key press message.
func KeyEsc() tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
}

// MouseClick creates a left button press at x, y.
func MouseClick(x, y int) tea.Msg {
	return tea.MouseClickMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft})
}

// MouseMotion creates a drag motion event at x, y.
func MouseMotion(x, y int) tea.Msg {
	return tea.MouseMotionMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft})
}

// MouseRelease creates a left button release at x, y.
func MouseRelease(x, y int) tea.Msg {
	return tea.MouseReleaseMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft})
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
