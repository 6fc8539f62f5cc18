package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shinypath/shinypath/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label     string
	Done      int
	Total     int
	ShowCount bool
	Width     int
}

// NewProgressBar creates a progress bar for done out of total.
func NewProgressBar(label string, done, total int, width int) ProgressBar {
	return ProgressBar{
		Label:     label,
		Done:      done,
		Total:     total,
		ShowCount: true,
		Width:     width,
	}
}

// Fraction returns done/total clamped to [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return max(0, min(1, float64(p.Done)/float64(p.Total)))
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	count := ""
	if p.ShowCount {
		count = fmt.Sprintf("  %d/%d", p.Done, p.Total)
	}

	barWidth := max(4, p.Width-lipgloss.Width(result)-lipgloss.Width(count))
	filled := int(float64(barWidth) * p.Fraction())
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Success).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowCount {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
	}

	return result
}
