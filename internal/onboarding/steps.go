package onboarding

// Step indices of the onboarding flow.
const (
	StepBasicInfo = iota
	StepSymptoms
	StepHistory
	StepWillingness
)

// StepCount is the number of steps in the flow.
const StepCount = 4

// StepDefinition describes one screen of the wizard and the fields it edits.
type StepDefinition struct {
	Label       string
	Description string
	Fields      []Field
}

var steps = [StepCount]StepDefinition{
	{
		Label:       "Basic Info",
		Description: "Let's start with some basic information about you.",
		Fields:      []Field{FieldName, FieldAge, FieldGender},
	},
	{
		Label:       "Symptoms",
		Description: "Tell us what you're experiencing, select all that apply.",
		Fields:      []Field{FieldSymptoms, FieldOtherSymptoms},
	},
	{
		Label:       "History",
		Description: "Share any relevant medical history so we can assist you better.",
		Fields:      []Field{FieldMedicalHistory, FieldAllergies},
	},
	{
		Label:       "Willingness",
		Description: "Help us understand what you'd like to know and how we can help.",
		Fields:      []Field{FieldWillingness, FieldCurePref, FieldConcerns},
	},
}

// Steps returns the step definitions in order.
func Steps() []StepDefinition {
	out := make([]StepDefinition, StepCount)
	for i, s := range steps {
		out[i] = StepDefinition{
			Label:       s.Label,
			Description: s.Description,
			Fields:      append([]Field(nil), s.Fields...),
		}
	}
	return out
}

// StepOf returns the index of the step that edits f.
func StepOf(f Field) (int, bool) {
	for i, s := range steps {
		for _, sf := range s.Fields {
			if sf == f {
				return i, true
			}
		}
	}
	return 0, false
}
