package screens

import (
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/carewizard/internal/onboarding"
)

func (s *StepScreen) symptomsGroup(answers onboarding.AnswerRecord) *huh.Group {
	selected := answers.Symptoms()
	s.symptoms = &selected

	return huh.NewGroup(
		huh.NewMultiSelect[string]().
			Key(string(onboarding.FieldSymptoms)).
			Title("Common Symptoms").
			Options(huh.NewOptions(onboarding.SymptomCatalog...)...).
			Height(9).
			Value(s.symptoms),

		huh.NewText().
			Key(string(onboarding.FieldOtherSymptoms)).
			Title("Other Symptoms").
			Placeholder("Describe any other symptoms...").
			Lines(3).
			Value(s.bind(answers, onboarding.FieldOtherSymptoms)),
	)
}
