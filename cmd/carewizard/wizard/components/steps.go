package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/carewizard/internal/onboarding"
)

var (
	stepDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35"))

	stepCurrentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("35")).
				Bold(true).
				Underline(true)

	stepTodoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// StepIndicator renders the step labels with the current one highlighted, e.g.
// "✓ Basic Info  > Symptoms  History  Willingness".
func StepIndicator(steps []onboarding.StepDefinition, current int) string {
	parts := make([]string, len(steps))
	for i, st := range steps {
		switch {
		case i < current:
			parts[i] = stepDoneStyle.Render("✓ " + st.Label)
		case i == current:
			parts[i] = stepCurrentStyle.Render("> " + st.Label)
		default:
			parts[i] = stepTodoStyle.Render(st.Label)
		}
	}
	return strings.Join(parts, "  ")
}

// StepCounter renders "Step 2 of 4".
func StepCounter(current, total int) string {
	return fmt.Sprintf("Step %d of %d", current+1, total)
}

// ProgressBar renders the checkup progress bar for fraction in [0, 1].
func ProgressBar(fraction float64, width int) string {
	if width < 20 {
		width = 20
	}
	if width > 60 {
		width = 60
	}
	bar := progress.New(
		progress.WithSolidFill("35"),
		progress.WithWidth(width),
	)
	return bar.ViewAs(fraction)
}
