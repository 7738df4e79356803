package onboarding

import (
	"context"
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"
)

// recordingHandler captures every completion it receives.
type recordingHandler struct {
	calls []AnswerRecord
	ids   []string
}

func (h *recordingHandler) Complete(_ context.Context, id string, answers AnswerRecord) {
	h.ids = append(h.ids, id)
	h.calls = append(h.calls, answers)
}

func TestNew_StartsEmptyAtFirstStep(t *testing.T) {
	s := New(nil)

	if s.Step() != 0 {
		t.Errorf("Expected step 0, got %d", s.Step())
	}
	if s.ID() == "" {
		t.Error("Expected a session ID")
	}
	if !s.Answers().IsEmpty() {
		t.Errorf("Expected empty answers, got %+v", s.Answers())
	}
	if got := s.Answers().Symptoms(); len(got) != 0 {
		t.Errorf("Expected no symptoms, got %v", got)
	}
	if s.CurrentStep().Label != "Basic Info" {
		t.Errorf("Expected first step 'Basic Info', got %q", s.CurrentStep().Label)
	}
}

func TestAdvanceRetreat_StaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	s := New(nil)

	for i := 0; i < 1000; i++ {
		var got int
		if rng.IntN(2) == 0 {
			got = s.Advance()
		} else {
			got = s.Retreat()
		}
		if got < 0 || got > StepCount-1 {
			t.Fatalf("step %d out of bounds after %d moves", got, i+1)
		}
		if got != s.Step() {
			t.Fatalf("returned step %d differs from Step() %d", got, s.Step())
		}
	}
}

func TestAdvanceRetreat_ClampAtEdges(t *testing.T) {
	s := New(nil)

	if got := s.Retreat(); got != 0 {
		t.Errorf("Retreat at first step = %d, want 0", got)
	}
	for i := 0; i < StepCount+2; i++ {
		s.Advance()
	}
	if got := s.Step(); got != StepCount-1 {
		t.Errorf("Step after overshooting = %d, want %d", got, StepCount-1)
	}
	if !s.IsFinalStep() {
		t.Error("Expected final step")
	}
}

func TestProgressFraction_Sequence(t *testing.T) {
	s := New(nil)
	want := []float64{0.25, 0.50, 0.75, 1.00}

	for i, w := range want {
		if got := s.ProgressFraction(); got != w {
			t.Errorf("progress at step %d = %v, want %v", i, got, w)
		}
		s.Advance()
	}
	if got := s.ProgressFraction(); got != 1.0 {
		t.Errorf("progress after extra advance = %v, want 1", got)
	}
}

func TestUpdateField_ReadBack(t *testing.T) {
	tests := []struct {
		field Field
		value string
		want  string
	}{
		{FieldName, "Asha", "Asha"},
		{FieldAge, "34", "34"},
		{FieldGender, "female", "female"},
		{FieldGender, "Other", "other"},
		{FieldOtherSymptoms, "tingling in fingers", "tingling in fingers"},
		{FieldMedicalHistory, "appendectomy 2015", "appendectomy 2015"},
		{FieldAllergies, "penicillin", "penicillin"},
		{FieldWillingness, "why am I tired", "why am I tired"},
		{FieldCurePref, "natural", "natural"},
		{FieldCurePref, "Combination of both", "combination"},
		{FieldConcerns, "sleep", "sleep"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field)+"="+tt.value, func(t *testing.T) {
			s := New(nil)
			if err := s.UpdateField(tt.field, tt.value); err != nil {
				t.Fatalf("UpdateField failed: %v", err)
			}
			got, err := s.Answers().Value(tt.field)
			if err != nil {
				t.Fatalf("Value failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestUpdateField_ReplacesPriorValue(t *testing.T) {
	s := New(nil)
	_ = s.UpdateField(FieldName, "Asha")
	_ = s.UpdateField(FieldName, "Ravi")

	if got := s.Answers().Name; got != "Ravi" {
		t.Errorf("Expected 'Ravi', got %q", got)
	}
}

func TestUpdateField_ContractViolations(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		value   string
		wantErr error
	}{
		{"unknown field", Field("bloodType"), "O+", ErrUnknownField},
		{"symptoms via update", FieldSymptoms, "Fever", ErrUnknownField},
		{"bad gender", FieldGender, "robot", ErrInvalidValue},
		{"bad cure preference", FieldCurePref, "surgery", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			err := s.UpdateField(tt.field, tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if !s.Answers().IsEmpty() {
				t.Errorf("Expected record untouched, got %+v", s.Answers())
			}
		})
	}
}

func TestUpdateField_EmptyEnumUnsets(t *testing.T) {
	s := New(nil)
	_ = s.UpdateField(FieldGender, "male")
	if err := s.UpdateField(FieldGender, ""); err != nil {
		t.Fatalf("UpdateField failed: %v", err)
	}
	if s.Answers().Gender != GenderUnset {
		t.Errorf("Expected unset gender, got %q", s.Answers().Gender)
	}
}

func TestToggleSymptom_SelfInverse(t *testing.T) {
	s := New(nil)
	_ = s.ToggleSymptom("Cough")
	before := s.Answers().Symptoms()

	for _, symptom := range SymptomCatalog {
		if err := s.ToggleSymptom(symptom); err != nil {
			t.Fatalf("ToggleSymptom(%q) failed: %v", symptom, err)
		}
		if err := s.ToggleSymptom(symptom); err != nil {
			t.Fatalf("ToggleSymptom(%q) failed: %v", symptom, err)
		}
		if got := s.Answers().Symptoms(); !reflect.DeepEqual(got, before) {
			t.Errorf("after double toggle of %q: got %v, want %v", symptom, got, before)
		}
	}
}

func TestToggleSymptom_HeadacheFever(t *testing.T) {
	s := New(nil)
	_ = s.ToggleSymptom("Headache")
	_ = s.ToggleSymptom("Fever")
	_ = s.ToggleSymptom("Headache")

	got := s.Answers().Symptoms()
	if !reflect.DeepEqual(got, []string{"Fever"}) {
		t.Errorf("Expected [Fever], got %v", got)
	}
}

func TestToggleSymptom_CatalogOrder(t *testing.T) {
	s := New(nil)
	for _, symptom := range []string{"Anxiety", "Headache", "Nausea", "Fever"} {
		_ = s.ToggleSymptom(symptom)
	}

	want := []string{"Headache", "Fever", "Nausea", "Anxiety"}
	if got := s.Answers().Symptoms(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got, _ := s.Answers().Value(FieldSymptoms); got != "Headache, Fever, Nausea, Anxiety" {
		t.Errorf("Expected joined symptoms, got %q", got)
	}
}

func TestToggleSymptom_Unknown(t *testing.T) {
	s := New(nil)
	if err := s.ToggleSymptom("Hiccups"); !errors.Is(err, ErrUnknownSymptom) {
		t.Errorf("Expected ErrUnknownSymptom, got %v", err)
	}
}

func TestNavigation_PreservesOtherSteps(t *testing.T) {
	s := New(nil)
	_ = s.UpdateField(FieldName, "Asha")
	_ = s.UpdateField(FieldAge, "29")
	_ = s.UpdateField(FieldGender, "female")
	stepOne := s.Answers()

	s.Advance()
	_ = s.ToggleSymptom("Insomnia")
	_ = s.UpdateField(FieldOtherSymptoms, "restless legs")
	s.Retreat()

	got := s.Answers()
	if got.Name != stepOne.Name || got.Age != stepOne.Age || got.Gender != stepOne.Gender {
		t.Errorf("step one values changed: got %+v, want %+v", got, stepOne)
	}
	if !got.HasSymptom("Insomnia") || got.OtherSymptoms != "restless legs" {
		t.Errorf("step two values lost after retreat: %+v", got)
	}
}

func TestAnswers_IsSnapshot(t *testing.T) {
	s := New(nil)
	_ = s.ToggleSymptom("Fever")

	snap := s.Answers()
	_ = s.ToggleSymptom("Cough")
	snap.Name = "changed"

	if snap.HasSymptom("Cough") {
		t.Error("snapshot observed a later toggle")
	}
	if s.Answers().Name != "" {
		t.Error("session observed a change made to the snapshot")
	}
}

func TestSubmit_EndToEnd(t *testing.T) {
	h := &recordingHandler{}
	s := New(h)

	if err := s.UpdateField(FieldName, "Asha"); err != nil {
		t.Fatalf("UpdateField failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		s.Advance()
	}
	if !s.IsFinalStep() {
		t.Fatal("Expected final step after three advances")
	}
	if err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if len(h.calls) != 1 {
		t.Fatalf("Expected 1 completion, got %d", len(h.calls))
	}
	if h.ids[0] != s.ID() {
		t.Errorf("Expected session ID %q, got %q", s.ID(), h.ids[0])
	}
	want := New(nil).Answers()
	want.Name = "Asha"
	if !reflect.DeepEqual(h.calls[0], want) {
		t.Errorf("Expected %+v, got %+v", want, h.calls[0])
	}
}

func TestSubmit_PermissiveWithEmptyRecord(t *testing.T) {
	h := &recordingHandler{}
	s := New(h)
	for i := 0; i < StepCount-1; i++ {
		s.Advance()
	}

	if err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit of empty record failed: %v", err)
	}
	if len(h.calls) != 1 || !h.calls[0].IsEmpty() {
		t.Errorf("Expected one empty record, got %+v", h.calls)
	}
}

func TestSubmit_NotFinalStep(t *testing.T) {
	h := &recordingHandler{}
	s := New(h)
	s.Advance()

	if err := s.Submit(context.Background()); !errors.Is(err, ErrNotFinalStep) {
		t.Errorf("Expected ErrNotFinalStep, got %v", err)
	}
	if s.Ended() {
		t.Error("session should stay open after a rejected submit")
	}
	if len(h.calls) != 0 {
		t.Errorf("handler called %d times", len(h.calls))
	}
}

func TestSubmit_EndsSession(t *testing.T) {
	h := &recordingHandler{}
	s := New(h)
	for i := 0; i < StepCount-1; i++ {
		s.Advance()
	}
	_ = s.Submit(context.Background())

	if err := s.Submit(context.Background()); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("second Submit: expected ErrSessionEnded, got %v", err)
	}
	if err := s.UpdateField(FieldName, "late"); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("UpdateField: expected ErrSessionEnded, got %v", err)
	}
	if err := s.ToggleSymptom("Fever"); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("ToggleSymptom: expected ErrSessionEnded, got %v", err)
	}
	if got := s.Retreat(); got != StepCount-1 {
		t.Errorf("Retreat on ended session moved to %d", got)
	}
	if len(h.calls) != 1 {
		t.Errorf("Expected exactly 1 completion, got %d", len(h.calls))
	}
}

func TestSubmit_NilHandler(t *testing.T) {
	s := New(nil)
	for i := 0; i < StepCount-1; i++ {
		s.Advance()
	}
	if err := s.Submit(context.Background()); err != nil {
		t.Errorf("Submit with nil handler failed: %v", err)
	}
}

func TestCompletionFunc(t *testing.T) {
	var got string
	s := New(CompletionFunc(func(_ context.Context, _ string, a AnswerRecord) {
		got = a.Name
	}))
	_ = s.UpdateField(FieldName, "Mei")
	for i := 0; i < StepCount-1; i++ {
		s.Advance()
	}
	_ = s.Submit(context.Background())

	if got != "Mei" {
		t.Errorf("Expected 'Mei', got %q", got)
	}
}
