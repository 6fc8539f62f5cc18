package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/shinypath/shinypath/internal/ui/layout"
)

// KeyMap holds every key binding used by the screens.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PrevSection  key.Binding
	NextSection  key.Binding
	Select       key.Binding
	Toggle       key.Binding
	Achievements key.Binding
	History      key.Binding
	Restart      key.Binding
	Back         key.Binding
	Quit         key.Binding
}

// Keys is the application key map.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓", "Navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	PrevSection: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("Shift+Tab", "Prev section"),
	),
	NextSection: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("Tab", "Section"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("space", "x"),
		key.WithHelp("Space", "Flag line"),
	),
	Achievements: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("A", "Achievements"),
	),
	History: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("S", "Sessions"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("R", "Restart"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	),
}

// Hints converts bindings into footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// WithDesc returns a copy of b with a different help description.
func WithDesc(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
