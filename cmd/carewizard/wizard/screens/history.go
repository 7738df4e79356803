package screens

import (
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/carewizard/internal/onboarding"
)

func (s *StepScreen) historyGroup(answers onboarding.AnswerRecord) *huh.Group {
	return huh.NewGroup(
		huh.NewText().
			Key(string(onboarding.FieldMedicalHistory)).
			Title("Past Medical Conditions").
			Placeholder("Any past illnesses, surgeries, or ongoing conditions...").
			Lines(4).
			Value(s.bind(answers, onboarding.FieldMedicalHistory)),

		huh.NewInput().
			Key(string(onboarding.FieldAllergies)).
			Title("Allergies").
			Placeholder("Any known allergies (food, medication, etc.)").
			Value(s.bind(answers, onboarding.FieldAllergies)),
	)
}
