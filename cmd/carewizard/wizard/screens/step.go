package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/carewizard/cmd/carewizard/wizard/components"
	"github.com/mrsinham/carewizard/internal/onboarding"
)

// StepScreen is one page of the checkup. Its form is pre-filled from the recorded
// answers and the wizard reads the edited values back through Values and Symptoms.
type StepScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	steps     []onboarding.StepDefinition
	step      int
	progress  float64

	// huh binds to strings, one per scalar field of the step
	text     map[onboarding.Field]*string
	symptoms *[]string

	width     int
	height    int
	done      bool
	back      bool
	cancelled bool
}

// NewStepScreen creates the screen for step, showing progress as a fraction in [0, 1].
func NewStepScreen(step int, answers onboarding.AnswerRecord, progress float64) *StepScreen {
	s := &StepScreen{
		helpPanel: components.NewHelpPanel(),
		steps:     onboarding.Steps(),
		step:      step,
		progress:  progress,
		text:      make(map[onboarding.Field]*string),
	}

	var group *huh.Group
	switch step {
	case onboarding.StepBasicInfo:
		group = s.basicInfoGroup(answers)
	case onboarding.StepSymptoms:
		group = s.symptomsGroup(answers)
	case onboarding.StepHistory:
		group = s.historyGroup(answers)
	default:
		group = s.willingnessGroup(answers)
	}

	s.form = huh.NewForm(group).WithShowHelp(false).WithShowErrors(true)

	if fields := s.steps[step].Fields; len(fields) > 0 {
		s.helpPanel.SetField(string(fields[0]))
	}
	return s
}

// bind returns a string bound to f, pre-filled with the recorded answer.
func (s *StepScreen) bind(answers onboarding.AnswerRecord, f onboarding.Field) *string {
	v, _ := answers.Value(f)
	s.text[f] = &v
	return &v
}

// Init implements tea.Model
func (s *StepScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *StepScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.back = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/2, msg.Height/3)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *StepScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	def := s.steps[s.step]
	title := components.TitleStyle.Render("CAREWIZARD CHECKUP - " + def.Label)

	width := s.width / 2
	header := lipgloss.JoinVertical(lipgloss.Left,
		components.StepIndicator(s.steps, s.step),
		components.StepCounter(s.step, len(s.steps))+"  "+components.ProgressBar(s.progress, width),
	)

	hints := []string{"Tab: Next question", "Esc: Back", "Ctrl+C: Quit"}
	if s.step == len(s.steps)-1 {
		hints = append([]string{"Enter: Submit"}, hints...)
	} else {
		hints = append([]string{"Enter: Continue"}, hints...)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		header,
		"",
		components.SubtitleStyle.Render(def.Description),
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.HintStyle.Render(strings.Join(hints, " | ")),
	)
}

// Step returns the index of the step shown
func (s *StepScreen) Step() int {
	return s.step
}

// Values returns the current value of every scalar field of the step
func (s *StepScreen) Values() map[onboarding.Field]string {
	out := make(map[onboarding.Field]string, len(s.text))
	for f, v := range s.text {
		out[f] = strings.TrimSpace(*v)
	}
	return out
}

// Symptoms returns the selected symptoms when the step has the symptom list
func (s *StepScreen) Symptoms() ([]string, bool) {
	if s.symptoms == nil {
		return nil, false
	}
	return append([]string(nil), *s.symptoms...), true
}

// Done returns true if the form was completed
func (s *StepScreen) Done() bool {
	return s.done
}

// Back returns true if the user asked for the previous step
func (s *StepScreen) Back() bool {
	return s.back
}

// Cancelled returns true if the user cancelled
func (s *StepScreen) Cancelled() bool {
	return s.cancelled
}
