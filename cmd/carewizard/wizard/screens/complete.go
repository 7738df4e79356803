package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/carewizard/cmd/carewizard/wizard/components"
	"github.com/mrsinham/carewizard/internal/recommend"
	"github.com/mrsinham/carewizard/internal/reports"
)

var errRecorderClosed = errors.New("report recorder stopped")

// CompletionAction is what the user chose after submitting
type CompletionAction int

const (
	CompletionActionNone CompletionAction = iota
	CompletionActionChat
	CompletionActionExit
)

var (
	completionTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("35")).
				Bold(true)

	completionLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Width(18)

	completionValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	recTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35")).
			Bold(true)

	recCategoryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

// CompletionScreen shows the health summary once the checkup is submitted
type CompletionScreen struct {
	spinner spinner.Model
	canChat bool

	report  *reports.Report
	err     error
	action  CompletionAction
	width   int
	height  int
	waiting bool
}

// NewCompletionScreen creates the screen, waiting for the recorded report.
// canChat enables the hand-off to the advisor.
func NewCompletionScreen(canChat bool) *CompletionScreen {
	return &CompletionScreen{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		canChat: canChat,
		waiting: true,
	}
}

// Init implements tea.Model
func (s *CompletionScreen) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update implements tea.Model
func (s *CompletionScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ReportMsg:
		s.waiting = false
		if msg.Err != nil {
			s.err = msg.Err
		}
		r := msg.Report
		s.report = &r
		return s, nil

	case spinner.TickMsg:
		if !s.waiting {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			s.action = CompletionActionExit
			return s, tea.Quit
		case "enter", "a":
			if s.waiting {
				return s, nil
			}
			if s.canChat {
				s.action = CompletionActionChat
				return s, nil
			}
			s.action = CompletionActionExit
			return s, tea.Quit
		}

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *CompletionScreen) View() string {
	var sb strings.Builder

	sb.WriteString(completionTitleStyle.Render("✓ Checkup submitted"))
	sb.WriteString("\n\n")

	if s.waiting {
		sb.WriteString(s.spinner.View())
		sb.WriteString(" Preparing your health summary...")
		return sb.String()
	}

	if s.err != nil {
		sb.WriteString(components.ErrorStyle.Render("Your summary could not be saved: " + s.err.Error()))
		sb.WriteString("\n\n")
	}

	if s.report != nil {
		s.writeReport(&sb, *s.report)
	}

	sb.WriteString(components.DisclaimerStyle.Render(reports.Disclaimer))
	sb.WriteString("\n\n")

	if s.canChat {
		sb.WriteString(components.HintStyle.Render("Enter: Talk to the advisor | q: Exit"))
	} else {
		sb.WriteString(components.HintStyle.Render("Press Enter or q to exit"))
	}
	return sb.String()
}

func (s *CompletionScreen) writeReport(sb *strings.Builder, r reports.Report) {
	sb.WriteString(components.TitleStyle.Render("Health Summary - " + r.DisplayDate()))
	sb.WriteString("\n")

	symptoms := strings.Join(r.Symptoms, ", ")
	if symptoms == "" {
		symptoms = "none selected"
	}
	rows := []struct{ label, value string }{
		{"Name", r.Name},
		{"Symptoms", symptoms},
		{"Other symptoms", r.OtherSymptoms},
		{"Cure preference", r.CurePreference},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		sb.WriteString(completionLabelStyle.Render(row.label))
		sb.WriteString(completionValueStyle.Render(row.value))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(components.TitleStyle.Render("Suggestions"))
	sb.WriteString("\n")
	for _, rec := range recommend.ForSymptoms(r.Symptoms) {
		sb.WriteString("  ")
		sb.WriteString(recTitleStyle.Render(rec.Title))
		sb.WriteString(" ")
		sb.WriteString(recCategoryStyle.Render(fmt.Sprintf("(%s)", rec.Category)))
		sb.WriteString("\n    ")
		sb.WriteString(rec.Description)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// Action returns what the user chose
func (s *CompletionScreen) Action() CompletionAction {
	return s.action
}

// ErrorScreen displays an error that stopped the wizard
type ErrorScreen struct {
	err    error
	done   bool
	width  int
	height int
}

// NewErrorScreen creates a new error screen
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{
		err: err,
	}
}

// Init implements tea.Model
func (s *ErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *ErrorScreen) View() string {
	var sb strings.Builder

	sb.WriteString(components.ErrorStyle.Render("✗ Something went wrong"))
	sb.WriteString("\n\n")
	sb.WriteString(components.TitleStyle.Render("Error:"))
	sb.WriteString("\n  ")
	sb.WriteString(s.err.Error())
	sb.WriteString("\n\n")
	sb.WriteString(components.HintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished
func (s *ErrorScreen) Done() bool {
	return s.done
}
