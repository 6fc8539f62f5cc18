package components

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shinypath/shinypath/internal/ui/theme"
)

// LineSelector shows a code snippet and lets the learner flag lines.
// Line numbers are 1-based.
type LineSelector struct {
	Lines      []string
	ErrorLines []int
	Cursor     int
	Flagged    map[int]bool
	Submitted  bool
}

// NewLineSelector creates a selector over lines.
func NewLineSelector(lines []string, errorLines []int) LineSelector {
	return LineSelector{
		Lines:      lines,
		ErrorLines: errorLines,
		Flagged:    make(map[int]bool),
	}
}

// Update moves the cursor, toggles flags and submits on Enter when at
// least one line is flagged.
func (l LineSelector) Update(msg tea.Msg) (LineSelector, tea.Cmd) {
	if l.Submitted {
		return l, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if l.Cursor > 0 {
			l.Cursor--
		}
	case key.Matches(kmsg, Keys.Down):
		if l.Cursor < len(l.Lines)-1 {
			l.Cursor++
		}
	case key.Matches(kmsg, Keys.Toggle):
		line := l.Cursor + 1
		if l.Flagged[line] {
			delete(l.Flagged, line)
		} else {
			l.Flagged[line] = true
		}
	case key.Matches(kmsg, Keys.Select):
		if len(l.Flagged) > 0 {
			l.Submitted = true
		}
	}
	return l, nil
}

// Selected returns the flagged line numbers in ascending order.
func (l LineSelector) Selected() []int {
	out := make([]int, 0, len(l.Flagged))
	for line := range l.Flagged {
		out = append(out, line)
	}
	slices.Sort(out)
	return out
}

// View renders the snippet with a gutter. After submission each line is
// marked against the designated error lines.
func (l LineSelector) View() string {
	width := len(fmt.Sprint(len(l.Lines)))

	var b strings.Builder
	for i, text := range l.Lines {
		line := i + 1
		cursor := "  "
		if i == l.Cursor && !l.Submitted {
			cursor = "▸ "
		}

		mark, style := l.mark(line)
		gutter := theme.CodeGutter.Render(fmt.Sprintf("%s%*d │", cursor, width, line))
		b.WriteString(fmt.Sprintf("%s %s %s\n", gutter, mark, style.Render(text)))
	}
	return b.String()
}

func (l LineSelector) mark(line int) (string, lipgloss.Style) {
	flagged := l.Flagged[line]
	if !l.Submitted {
		if flagged {
			return theme.CodeFlagged.Render("●"), theme.CodeFlagged
		}
		return " ", theme.CodeLine
	}

	isError := slices.Contains(l.ErrorLines, line)
	switch {
	case isError && flagged:
		return theme.Correct.Render("✓"), theme.Correct
	case isError:
		return theme.Incorrect.Render("!"), lipgloss.NewStyle().Foreground(theme.Accent)
	case flagged:
		return theme.Incorrect.Render("✗"), theme.Incorrect
	default:
		return " ", lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}
