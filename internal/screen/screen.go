package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/shinypath/shinypath/internal/ui/layout"
)

// Screen is one page of the path UI. The app draws the header and footer;
// a screen only renders the area between them.
type Screen interface {
	Init() tea.Cmd

	// Update may return a different screen to replace itself in place.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders into a width x height content area.
	View(width, height int) string

	// Title is shown in the middle of the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusHider is implemented by screens shown before a run starts.
// When HideStatus reports true the header omits lives, points and streak.
type StatusHider interface {
	HideStatus() bool
}
