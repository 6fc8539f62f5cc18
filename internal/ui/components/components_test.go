package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	space = tea.KeyPressMsg{Code: tea.KeySpace}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	up    = tea.KeyPressMsg{Code: tea.KeyUp}
)

func TestMultiChoice_NavigateAndSubmit(t *testing.T) {
	mc := NewMultiChoice("Pick one", []string{"a", "b", "c"}, 1)

	mc, _ = mc.Update(up)
	assert.Equal(t, 0, mc.Selected)

	mc, _ = mc.Update(down)
	mc, _ = mc.Update(press('j'))
	mc, _ = mc.Update(down)
	assert.Equal(t, 2, mc.Selected)

	mc, _ = mc.Update(up)
	mc, _ = mc.Update(enter)
	assert.True(t, mc.Submitted)
	assert.Equal(t, 1, mc.ChosenIndex)
	assert.True(t, mc.IsCorrect())

	mc, _ = mc.Update(down)
	assert.Equal(t, 1, mc.Selected, "input ignored after submit")
}

func TestMultiChoice_View(t *testing.T) {
	mc := NewMultiChoice("Pick one", []string{"first", "second"}, 0)
	out := ansi.Strip(mc.View())
	assert.Contains(t, out, "Pick one")
	assert.Contains(t, out, "▸ A)  first")
	assert.Contains(t, out, "B)  second")
}

func TestLineSelector_ToggleAndSubmit(t *testing.T) {
	ls := NewLineSelector([]string{"one", "two", "three"}, []int{2})

	ls, _ = ls.Update(enter)
	assert.False(t, ls.Submitted, "nothing flagged yet")

	ls, _ = ls.Update(down)
	ls, _ = ls.Update(space)
	ls, _ = ls.Update(down)
	ls, _ = ls.Update(press('x'))
	assert.Equal(t, []int{2, 3}, ls.Selected())

	ls, _ = ls.Update(press('x'))
	assert.Equal(t, []int{2}, ls.Selected())

	ls, _ = ls.Update(enter)
	assert.True(t, ls.Submitted)

	out := ansi.Strip(ls.View())
	assert.Contains(t, out, "✓ two")
}

func TestLineSelector_MarksMissedLines(t *testing.T) {
	ls := NewLineSelector([]string{"one", "two"}, []int{1, 2})
	ls, _ = ls.Update(space)
	ls, _ = ls.Update(enter)

	lines := strings.Split(ansi.Strip(ls.View()), "\n")
	assert.Contains(t, lines[0], "✓ one")
	assert.Contains(t, lines[1], "! two")
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var picked string
	m := NewMenu([]MenuItem{
		{Label: "locked", Disabled: true},
		{Label: "open", Action: func() tea.Cmd { picked = "open"; return nil }},
		{Label: "closed", Disabled: true},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(down)
	assert.Equal(t, 1, m.Selected)
	m, _ = m.Update(up)
	assert.Equal(t, 1, m.Selected)

	m.Update(enter)
	assert.Equal(t, "open", picked)
}

func TestProgressBar_Fraction(t *testing.T) {
	assert.Equal(t, 0.0, NewProgressBar("", 1, 0, 20).Fraction())
	assert.Equal(t, 0.5, NewProgressBar("", 3, 6, 20).Fraction())
	assert.Equal(t, 1.0, NewProgressBar("", 9, 6, 20).Fraction())
	assert.Contains(t, ansi.Strip(NewProgressBar("Variables", 3, 7, 40).View()), "3/7")
}

func TestHints_UsesBindingHelp(t *testing.T) {
	hints := Hints(Keys.Select, WithDesc(Keys.Back, "Path"))
	assert.Len(t, hints, 2)
	assert.Equal(t, "Enter", hints[0].Key)
	assert.Equal(t, "Path", hints[1].Description)
	assert.Equal(t, "Back", Keys.Back.Help().Desc)
}

func TestButton_FiresOnce(t *testing.T) {
	type pressed struct{}
	b := NewButton("Mark as read", "Read", Keys.Select, func() tea.Msg { return pressed{} })

	b, cmd := b.Update(press('x'))
	assert.Nil(t, cmd)
	assert.False(t, b.Done)

	b, cmd = b.Update(enter)
	if assert.NotNil(t, cmd) {
		assert.IsType(t, pressed{}, cmd())
	}
	assert.True(t, b.Done)
	assert.Contains(t, ansi.Strip(b.View()), "✓ Read")

	_, cmd = b.Update(enter)
	assert.Nil(t, cmd)
}
