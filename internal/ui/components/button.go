package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/shinypath/shinypath/internal/ui/theme"
)

// Button fires once. After a press it shows DoneLabel and ignores input.
type Button struct {
	Label     string
	DoneLabel string
	Binding   key.Binding
	Done      bool
	OnPress   func() tea.Msg
}

// NewButton creates a button triggered by binding.
func NewButton(label, doneLabel string, binding key.Binding, onPress func() tea.Msg) Button {
	return Button{
		Label:     label,
		DoneLabel: doneLabel,
		Binding:   binding,
		OnPress:   onPress,
	}
}

// Update marks the button done and emits OnPress when the binding matches.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if b.Done {
		return b, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(kmsg, b.Binding) {
		return b, nil
	}

	b.Done = true
	if b.OnPress == nil {
		return b, nil
	}
	return b, b.OnPress
}

func (b Button) View() string {
	if b.Done {
		return theme.ButtonInactive.Render("  ✓ " + b.DoneLabel + " ")
	}
	return theme.ButtonActive.Render("  ▸ " + b.Label + " ")
}
