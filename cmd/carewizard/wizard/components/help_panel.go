package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/carewizard/cmd/carewizard/wizard/help"
	"github.com/mrsinham/carewizard/internal/onboarding"
)

var (
	helpPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("35")).
			Padding(1, 2).
			Width(60)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35")).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpDetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	helpStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// HelpPanel explains the focused question and the step that asks it.
type HelpPanel struct {
	field onboarding.Field
	step  int
	known bool

	width  int
	height int
}

// NewHelpPanel creates a new help panel
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{
		width:  60,
		height: 10,
	}
}

// SetField selects the question from a form field key. Keys that are not checkup
// fields clear the panel.
func (h *HelpPanel) SetField(key string) {
	f, err := onboarding.ParseField(key)
	if err != nil {
		h.known = false
		return
	}
	h.field = f
	h.step, h.known = onboarding.StepOf(f)
}

// SetSize updates panel dimensions
func (h *HelpPanel) SetSize(width, height int) {
	if width < 30 {
		width = 30
	}
	h.width = width
	h.height = height
}

// View renders the help panel
func (h *HelpPanel) View() string {
	style := helpPanelStyle.Width(h.width - 4)

	if !h.known {
		return style.Render("Move to a question to see why we ask it")
	}

	text, ok := help.Texts[string(h.field)]
	if !ok {
		text = help.HelpText{Title: strings.ToUpper(string(h.field))}
	}

	var sb strings.Builder
	sb.WriteString(helpTitleStyle.Render(text.Title))
	if text.Description != "" {
		sb.WriteString("\n\n")
		sb.WriteString(helpDescStyle.Render(text.Description))
	}
	if text.Details != "" {
		sb.WriteString("\n\n")
		sb.WriteString(helpDetailStyle.Render(text.Details))
	}

	def := onboarding.Steps()[h.step]
	sb.WriteString("\n\n")
	sb.WriteString(helpStepStyle.Render(
		fmt.Sprintf("Asked in step %d of %d (%s)", h.step+1, onboarding.StepCount, def.Label)))

	return style.Render(sb.String())
}
