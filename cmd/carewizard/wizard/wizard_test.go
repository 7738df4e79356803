package wizard

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrsinham/carewizard/cmd/carewizard/wizard/screens"
	"github.com/mrsinham/carewizard/internal/advisor"
	"github.com/mrsinham/carewizard/internal/onboarding"
	"github.com/mrsinham/carewizard/internal/reports"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// drain runs cmd and feeds what it produces back into the wizard until nothing is left.
// Commands that do not return quickly, such as cursor blinks and spinner ticks, are dropped.
func drain(t *testing.T, w *Wizard, cmd tea.Cmd) {
	t.Helper()
	cmdType := reflect.TypeOf((*tea.Cmd)(nil)).Elem()

	queue := []tea.Cmd{cmd}
	for n := 0; len(queue) > 0; n++ {
		if n > 1000 {
			t.Fatalf("Commands did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := runCmd(next)
		if !ok || msg == nil {
			continue
		}
		if _, quit := msg.(tea.QuitMsg); quit {
			continue
		}

		// batches and sequences are both slices of commands
		if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
			for i := 0; i < v.Len(); i++ {
				if c, ok := v.Index(i).Interface().(tea.Cmd); ok {
					queue = append(queue, c)
				}
			}
			continue
		}

		_, produced := w.Update(msg)
		queue = append(queue, produced)
	}
}

func runCmd(cmd tea.Cmd) (tea.Msg, bool) {
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	select {
	case msg := <-out:
		return msg, true
	case <-time.After(50 * time.Millisecond):
		return nil, false
	}
}

func TestWizard_EnterWalksEveryStepToSubmit(t *testing.T) {
	s := onboarding.New(nil)
	w := NewWizard(context.Background(), Options{Session: s})
	drain(t, w, w.Init())

	_, cmd := w.Update(keyMsg("Asha"))
	drain(t, w, cmd)

	visited := []Phase{w.Phase()}
	for i := 0; i < 20 && w.Phase() != PhaseComplete; i++ {
		if w.Phase() == PhaseSymptoms && !s.Answers().HasSymptom(onboarding.SymptomCatalog[0]) {
			_, cmd = w.Update(keyMsg("x"))
			drain(t, w, cmd)
		}

		_, cmd = w.Update(keyMsg("enter"))
		drain(t, w, cmd)
		if p := w.Phase(); p != visited[len(visited)-1] {
			visited = append(visited, p)
		}
	}

	want := []Phase{PhaseBasicInfo, PhaseSymptoms, PhaseHistory, PhaseWillingness, PhaseComplete}
	if !reflect.DeepEqual(visited, want) {
		t.Fatalf("Expected phases %v, got %v", want, visited)
	}
	if !s.Ended() {
		t.Errorf("Expected session to be ended")
	}

	a := s.Answers()
	if a.Name != "Asha" {
		t.Errorf("Expected name Asha, got %q", a.Name)
	}
	if !a.HasSymptom(onboarding.SymptomCatalog[0]) {
		t.Errorf("Expected %s to be selected", onboarding.SymptomCatalog[0])
	}
	if w.completionScreen == nil {
		t.Errorf("Expected the completion screen")
	}
}

func TestApplyAnswers_FieldsAndSymptoms(t *testing.T) {
	s := onboarding.New(nil)
	if err := s.ToggleSymptom("Cough"); err != nil {
		t.Fatalf("ToggleSymptom failed: %v", err)
	}

	values := map[onboarding.Field]string{
		onboarding.FieldName:     "Asha",
		onboarding.FieldAge:      "34",
		onboarding.FieldGender:   "female",
		onboarding.FieldCurePref: "natural",
	}
	if err := applyAnswers(s, values, []string{"Fever", "Headache"}, true); err != nil {
		t.Fatalf("applyAnswers failed: %v", err)
	}

	a := s.Answers()
	if a.Name != "Asha" {
		t.Errorf("Expected name Asha, got %q", a.Name)
	}
	if a.Age != "34" {
		t.Errorf("Expected age 34, got %q", a.Age)
	}
	if a.Gender != onboarding.GenderFemale {
		t.Errorf("Expected gender female, got %q", a.Gender)
	}
	if a.CurePreference != onboarding.CureNatural {
		t.Errorf("Expected cure preference natural, got %q", a.CurePreference)
	}

	got := a.Symptoms()
	want := []string{"Headache", "Fever"}
	if len(got) != len(want) {
		t.Fatalf("Expected symptoms %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected symptom %d to be %s, got %s", i, want[i], got[i])
		}
	}
}

func TestApplyAnswers_WithoutSymptomListKeepsSelection(t *testing.T) {
	s := onboarding.New(nil)
	_ = s.ToggleSymptom("Insomnia")

	if err := applyAnswers(s, map[onboarding.Field]string{onboarding.FieldAllergies: "pollen"}, nil, false); err != nil {
		t.Fatalf("applyAnswers failed: %v", err)
	}

	a := s.Answers()
	if !a.HasSymptom("Insomnia") {
		t.Errorf("Expected Insomnia to stay selected")
	}
	if a.Allergies != "pollen" {
		t.Errorf("Expected allergies pollen, got %q", a.Allergies)
	}
}

func TestApplyAnswers_InvalidValue(t *testing.T) {
	s := onboarding.New(nil)

	err := applyAnswers(s, map[onboarding.Field]string{onboarding.FieldGender: "robot"}, nil, false)
	if !errors.Is(err, onboarding.ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue, got %v", err)
	}
}

func TestWizard_StartsOnSessionStep(t *testing.T) {
	s := onboarding.New(nil)
	s.Advance()
	s.Advance()

	w := NewWizard(context.Background(), Options{Session: s})
	if w.Phase() != PhaseHistory {
		t.Errorf("Expected phase %s, got %s", PhaseHistory, w.Phase())
	}
	if w.View() == "" {
		t.Errorf("Expected a rendered step")
	}
}

func TestWizard_BackRetreatsAndClamps(t *testing.T) {
	s := onboarding.New(nil)
	s.Advance()

	w := NewWizard(context.Background(), Options{Session: s})
	if w.Phase() != PhaseSymptoms {
		t.Fatalf("Expected phase %s, got %s", PhaseSymptoms, w.Phase())
	}

	w.Update(keyMsg("esc"))
	if s.Step() != onboarding.StepBasicInfo {
		t.Errorf("Expected step 0 after back, got %d", s.Step())
	}
	if w.Phase() != PhaseBasicInfo {
		t.Errorf("Expected phase %s, got %s", PhaseBasicInfo, w.Phase())
	}

	// back on the first step stays there
	w.Update(keyMsg("esc"))
	if s.Step() != onboarding.StepBasicInfo {
		t.Errorf("Expected step to clamp at 0, got %d", s.Step())
	}
}

func TestWizard_BackKeepsAnswers(t *testing.T) {
	s := onboarding.New(nil)
	_ = s.UpdateField(onboarding.FieldName, "Asha")
	_ = s.ToggleSymptom("Fatigue")
	s.Advance()

	w := NewWizard(context.Background(), Options{Session: s})
	w.Update(keyMsg("esc"))

	a := s.Answers()
	if a.Name != "Asha" {
		t.Errorf("Expected name to survive navigation, got %q", a.Name)
	}
	if !a.HasSymptom("Fatigue") {
		t.Errorf("Expected Fatigue to survive navigation")
	}
}

func TestWizard_CtrlCCancels(t *testing.T) {
	w := NewWizard(context.Background(), Options{Session: onboarding.New(nil)})

	_, cmd := w.Update(keyMsg("ctrl+c"))
	if !w.Cancelled() {
		t.Errorf("Expected wizard to be cancelled")
	}
	if cmd == nil {
		t.Errorf("Expected quit command")
	}
}

func TestWizard_SubmitRecordsAndOpensAdvisor(t *testing.T) {
	store := reports.NewMemoryStore()
	rec := reports.NewRecorder(store, nil)
	defer rec.Close()

	s := onboarding.New(rec)
	_ = s.UpdateField(onboarding.FieldName, "Asha")
	_ = s.ToggleSymptom("Headache")
	for !s.IsFinalStep() {
		s.Advance()
	}

	conv := advisor.NewConversation(advisor.CannedResponder{Text: "Drink water."}, nil)
	w := NewWizard(context.Background(), Options{Session: s, Results: rec.Results(), Conversation: conv})

	w.submit()
	if !s.Ended() {
		t.Fatalf("Expected session to be ended")
	}
	if w.Phase() != PhaseComplete {
		t.Fatalf("Expected phase %s, got %s", PhaseComplete, w.Phase())
	}

	res := <-rec.Results()
	if res.Err != nil {
		t.Fatalf("Expected report to be saved, got %v", res.Err)
	}
	w.Update(screens.ReportMsg{Report: res.Report})

	if _, err := store.Get(context.Background(), s.ID()); err != nil {
		t.Errorf("Expected report %s in store: %v", s.ID(), err)
	}

	w.Update(keyMsg("enter"))
	if w.Phase() != PhaseAdvisor {
		t.Fatalf("Expected phase %s, got %s", PhaseAdvisor, w.Phase())
	}

	w.Update(keyMsg("hello"))
	w.Update(keyMsg("enter"))
	conv.Wait()

	msgs := conv.Messages()
	if len(msgs) != 3 {
		t.Fatalf("Expected greeting, question and answer, got %d messages", len(msgs))
	}
	if msgs[1].Content != "hello" {
		t.Errorf("Expected user message 'hello', got %q", msgs[1].Content)
	}
	if msgs[2].Content != "Drink water." {
		t.Errorf("Expected canned answer, got %q", msgs[2].Content)
	}
}

func TestWizard_SubmitWithoutAdvisorExits(t *testing.T) {
	s := onboarding.New(nil)
	for !s.IsFinalStep() {
		s.Advance()
	}

	w := NewWizard(context.Background(), Options{Session: s})
	w.submit()
	w.Update(screens.ReportMsg{Report: reports.FromAnswers(s.ID(), time.Now(), s.Answers())})

	_, cmd := w.Update(keyMsg("enter"))
	if cmd == nil {
		t.Errorf("Expected quit command")
	}
	if !w.finished {
		t.Errorf("Expected wizard to be finished")
	}
}

func TestWizard_SubmitTwiceFails(t *testing.T) {
	s := onboarding.New(nil)
	for !s.IsFinalStep() {
		s.Advance()
	}
	if err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	w := NewWizard(context.Background(), Options{Session: s})
	w.submit()

	if w.Phase() != PhaseError {
		t.Errorf("Expected phase %s, got %s", PhaseError, w.Phase())
	}
	if !errors.Is(w.Err(), onboarding.ErrSessionEnded) {
		t.Errorf("Expected ErrSessionEnded, got %v", w.Err())
	}
}

func TestAdvisorOnly_EmptyMessageIgnored(t *testing.T) {
	conv := advisor.NewConversation(advisor.CannedResponder{}, nil)
	w := NewAdvisor(context.Background(), conv, nil)

	if w.Phase() != PhaseAdvisor {
		t.Fatalf("Expected phase %s, got %s", PhaseAdvisor, w.Phase())
	}

	w.Update(keyMsg("enter"))
	conv.Wait()
	if n := len(conv.Messages()); n != 1 {
		t.Errorf("Expected only the greeting, got %d messages", n)
	}

	_, cmd := w.Update(keyMsg("esc"))
	if cmd == nil || !w.finished {
		t.Errorf("Expected esc to leave the advisor")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseSymptoms.String() != "symptoms" {
		t.Errorf("Expected symptoms, got %s", PhaseSymptoms.String())
	}
	if Phase(42).String() != "phase(42)" {
		t.Errorf("Expected phase(42), got %s", Phase(42).String())
	}
}
