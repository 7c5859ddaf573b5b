// Package tui is the root bubbletea model wrapping the editor.
package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/hay-kot/marginalia/internal/core/annotation"
	"github.com/hay-kot/marginalia/internal/core/popover"
	"github.com/hay-kot/marginalia/internal/core/richtext"
	"github.com/hay-kot/marginalia/internal/tui/views/editor"
)

// Options configures the application model.
type Options struct {
	Title      string
	Text       string
	Document   richtext.Options
	Palette    annotation.Palette
	Layout     popover.Layout
	SliderStep int
	Keys       editor.KeyMap
	Logger     zerolog.Logger

	// Watcher, when set, flags external changes to the file in the header.
	Watcher *FileWatcher
}

// Model is the root model: it sizes the editor and handles quitting.
type Model struct {
	editor   editor.View
	watcher  *FileWatcher
	quit     key.Binding
	log      zerolog.Logger
	width    int
	height   int
	quitting bool
}

// New creates the application model over a fresh document holding opts.Text.
func New(opts Options) Model {
	doc := richtext.New(opts.Text, opts.Document)

	ed := editor.New(doc, editor.Options{
		Title:      opts.Title,
		Palette:    opts.Palette,
		Layout:     opts.Layout,
		SliderStep: opts.SliderStep,
		Keys:       opts.Keys,
		Logger:     opts.Logger,
	})

	doc.OnChange(func(c richtext.Change) {
		opts.Logger.Debug().
			Int("version", c.Version).
			Int("runes", len([]rune(c.Text))).
			Msg("document changed")
	})

	return Model{
		editor:  ed,
		watcher: opts.Watcher,
		quit:    ed.Keys().Quit,
		log:     opts.Logger,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return tea.Batch(m.editor.Init(), m.watcher.Watch())
	}
	return m.editor.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetSize(msg.Width, msg.Height)
		return m, nil

	case fileChangedMsg:
		m.log.Info().Str("path", msg.path).Msg("document changed on disk")
		m.editor.SetNotice("changed on disk")
		return m, m.watcher.Watch()

	case tea.KeyPressMsg:
		if key.Matches(msg, m.quit) {
			m.log.Debug().
				Int("comments", m.editor.Annotator().Store().Len()).
				Msg("quit requested")
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.editor.View())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// Document returns the edited document.
func (m Model) Document() *richtext.Document {
	return m.editor.Document()
}

// Records returns the comments held when the program exited.
func (m Model) Records() []annotation.Record {
	return m.editor.Annotator().Store().Records()
}

// Palette returns the rating palette in use.
func (m Model) Palette() annotation.Palette {
	return m.editor.Annotator().Palette()
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}
