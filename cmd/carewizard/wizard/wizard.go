package wizard

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mrsinham/carewizard/cmd/carewizard/wizard/screens"
	"github.com/mrsinham/carewizard/internal/advisor"
	"github.com/mrsinham/carewizard/internal/onboarding"
	"github.com/mrsinham/carewizard/internal/reports"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

// The first four phases follow the checkup steps, in the same order.
const (
	PhaseBasicInfo Phase = iota
	PhaseSymptoms
	PhaseHistory
	PhaseWillingness
	PhaseComplete
	PhaseAdvisor
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseBasicInfo:
		return "basic-info"
	case PhaseSymptoms:
		return "symptoms"
	case PhaseHistory:
		return "history"
	case PhaseWillingness:
		return "willingness"
	case PhaseComplete:
		return "complete"
	case PhaseAdvisor:
		return "advisor"
	case PhaseError:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Options wires the wizard to the engine and its collaborators.
type Options struct {
	// Session drives the checkup. Its completion handler records the report.
	Session *onboarding.Session
	// Results delivers the recorded report after submit. When nil the summary is
	// built from the submitted answers.
	Results <-chan reports.Result
	// Conversation enables the hand-off to the advisor after submit.
	Conversation *advisor.Conversation
	Logger       *zap.Logger
}

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	ctx     context.Context
	session *onboarding.Session
	results <-chan reports.Result
	conv    *advisor.Conversation
	logger  *zap.Logger

	// Current phase
	phase Phase

	// Screen instances
	stepScreen       *screens.StepScreen
	completionScreen *screens.CompletionScreen
	chatScreen       *screens.ChatScreen
	errorScreen      *screens.ErrorScreen

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a wizard showing the current step of opts.Session.
func NewWizard(ctx context.Context, opts Options) *Wizard {
	w := newWizard(ctx, opts.Logger)
	w.session = opts.Session
	w.results = opts.Results
	w.conv = opts.Conversation
	w.showStep()
	return w
}

// NewAdvisor creates a wizard that goes straight to the advisor chat.
func NewAdvisor(ctx context.Context, conv *advisor.Conversation, logger *zap.Logger) *Wizard {
	w := newWizard(ctx, logger)
	w.conv = conv
	w.phase = PhaseAdvisor
	w.chatScreen = screens.NewChatScreen(ctx, conv)
	return w
}

func newWizard(ctx context.Context, logger *zap.Logger) *Wizard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wizard{ctx: ctx, logger: logger}
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	switch w.phase {
	case PhaseAdvisor:
		return w.chatScreen.Init()
	case PhaseComplete:
		return w.completionScreen.Init()
	case PhaseError:
		return w.errorScreen.Init()
	default:
		return w.stepScreen.Init()
	}
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size for all phases
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseBasicInfo, PhaseSymptoms, PhaseHistory, PhaseWillingness:
		return w.updateStep(msg)
	case PhaseComplete:
		return w.updateComplete(msg)
	case PhaseAdvisor:
		return w.updateAdvisor(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseBasicInfo, PhaseSymptoms, PhaseHistory, PhaseWillingness:
		return w.stepScreen.View()
	case PhaseComplete:
		return w.completionScreen.View()
	case PhaseAdvisor:
		return w.chatScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// showStep builds the screen for the session's current step.
func (w *Wizard) showStep() tea.Cmd {
	step := w.session.Step()
	w.phase = Phase(step)
	w.stepScreen = screens.NewStepScreen(step, w.session.Answers(), w.session.ProgressFraction())
	if w.width > 0 {
		w.stepScreen.Update(tea.WindowSizeMsg{Width: w.width, Height: w.height})
	}
	return w.stepScreen.Init()
}

// updateStep handles updates in the checkup step phases.
func (w *Wizard) updateStep(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.stepScreen.Update(msg)
	if ss, ok := model.(*screens.StepScreen); ok {
		w.stepScreen = ss
	}

	if w.stepScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	symptoms, hasSymptoms := w.stepScreen.Symptoms()
	if err := applyAnswers(w.session, w.stepScreen.Values(), symptoms, hasSymptoms); err != nil {
		return w.fail(err)
	}

	if w.stepScreen.Back() {
		w.session.Retreat()
		return w, w.showStep()
	}

	if w.stepScreen.Done() {
		if w.session.IsFinalStep() {
			return w.submit()
		}
		w.session.Advance()
		return w, w.showStep()
	}

	return w, cmd
}

// applyAnswers pushes the values edited on a screen into the session. Unchanged fields
// are skipped and the symptom selection is applied as toggles.
func applyAnswers(s *onboarding.Session, values map[onboarding.Field]string, symptoms []string, hasSymptoms bool) error {
	current := s.Answers()

	for _, f := range onboarding.AllFields {
		v, ok := values[f]
		if !ok {
			continue
		}
		if old, _ := current.Value(f); old == v {
			continue
		}
		if err := s.UpdateField(f, v); err != nil {
			return fmt.Errorf("updating %s: %w", f, err)
		}
	}

	if !hasSymptoms {
		return nil
	}
	selected := make(map[string]bool, len(symptoms))
	for _, sym := range symptoms {
		selected[sym] = true
	}
	for _, sym := range onboarding.SymptomCatalog {
		if current.HasSymptom(sym) == selected[sym] {
			continue
		}
		if err := s.ToggleSymptom(sym); err != nil {
			return fmt.Errorf("updating symptoms: %w", err)
		}
	}
	return nil
}

// submit ends the session and waits for the recorded report.
func (w *Wizard) submit() (tea.Model, tea.Cmd) {
	if err := w.session.Submit(w.ctx); err != nil {
		return w.fail(err)
	}
	w.logger.Info("checkup submitted", zap.String("session", w.session.ID()))

	w.phase = PhaseComplete
	w.completionScreen = screens.NewCompletionScreen(w.conv != nil)

	wait := screens.WaitForReport(w.results)
	if w.results == nil {
		report := reports.FromAnswers(w.session.ID(), time.Now(), w.session.Answers())
		wait = func() tea.Msg { return screens.ReportMsg{Report: report} }
	}
	return w, tea.Batch(w.completionScreen.Init(), wait)
}

// updateComplete handles updates in the completion phase.
func (w *Wizard) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if rm, ok := msg.(screens.ReportMsg); ok && rm.Err != nil {
		w.logger.Warn("checkup report not saved", zap.Error(rm.Err))
	}

	model, cmd := w.completionScreen.Update(msg)
	if cs, ok := model.(*screens.CompletionScreen); ok {
		w.completionScreen = cs
	}

	switch w.completionScreen.Action() {
	case screens.CompletionActionExit:
		w.finished = true
		return w, tea.Quit
	case screens.CompletionActionChat:
		return w.transitionToAdvisor()
	}

	return w, cmd
}

// transitionToAdvisor opens the chat with the submitted answers as context.
func (w *Wizard) transitionToAdvisor() (tea.Model, tea.Cmd) {
	if w.session != nil {
		w.conv.WithIntake(advisor.IntakeSummary(w.session.Answers()))
	}
	w.phase = PhaseAdvisor
	w.chatScreen = screens.NewChatScreen(w.ctx, w.conv)
	if w.width > 0 {
		w.chatScreen.Update(tea.WindowSizeMsg{Width: w.width, Height: w.height})
	}
	return w, w.chatScreen.Init()
}

// updateAdvisor handles updates in the advisor phase.
func (w *Wizard) updateAdvisor(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.chatScreen.Update(msg)
	if cs, ok := model.(*screens.ChatScreen); ok {
		w.chatScreen = cs
	}

	if w.chatScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// fail shows err and stops the checkup.
func (w *Wizard) fail(err error) (tea.Model, tea.Cmd) {
	w.logger.Error("wizard stopped", zap.Stringer("phase", w.phase), zap.Error(err))
	w.err = err
	w.phase = PhaseError
	w.errorScreen = screens.NewErrorScreen(err)
	return w, nil
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// Phase returns the current phase.
func (w *Wizard) Phase() Phase {
	return w.phase
}

// Cancelled reports whether the user quit before finishing.
func (w *Wizard) Cancelled() bool {
	return w.cancelled
}

// Err returns the error that stopped the wizard, if any.
func (w *Wizard) Err() error {
	return w.err
}

// Run runs the checkup, then the advisor chat when opts.Conversation is set.
func Run(ctx context.Context, opts Options) error {
	return run(ctx, NewWizard(ctx, opts))
}

// RunAdvisor runs the advisor chat on its own.
func RunAdvisor(ctx context.Context, conv *advisor.Conversation, logger *zap.Logger) error {
	return run(ctx, NewAdvisor(ctx, conv, logger))
}

func run(ctx context.Context, w *Wizard) error {
	p := tea.NewProgram(w, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	// Check final state
	if fw, ok := finalModel.(*Wizard); ok {
		if fw.cancelled {
			return nil // User cancelled, not an error
		}
		if fw.err != nil {
			return fw.err
		}
	}

	return nil
}
