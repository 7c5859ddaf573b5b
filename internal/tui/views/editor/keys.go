package editor

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/hay-kot/marginalia/internal/core/config"
)

// KeyMap holds the editor's configurable bindings.
type KeyMap struct {
	Bold    key.Binding
	Rate    key.Binding
	Comment key.Binding
	Undo    key.Binding
	Redo    key.Binding
	Quit    key.Binding
	Dismiss key.Binding
	Help    key.Binding
}

// NewKeyMap builds bindings from the key configuration.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Bold:    binding(keys.Bold, "bold"),
		Rate:    binding(keys.Rate, "rate"),
		Comment: binding(keys.Comment, "comment"),
		Undo:    binding(keys.Undo, "undo"),
		Redo:    binding(keys.Redo, "redo"),
		Quit:    binding(keys.Quit, "quit"),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	}
}

// DefaultKeyMap returns the bindings of the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Bold, k.Rate, k.Comment, k.Undo, k.Redo, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Bold, k.Rate, k.Comment},
		{k.Undo, k.Redo},
		{k.Dismiss, k.Help, k.Quit},
	}
}
