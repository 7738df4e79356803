package screens

import (
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/carewizard/internal/onboarding"
)

func (s *StepScreen) willingnessGroup(answers onboarding.AnswerRecord) *huh.Group {
	cureOptions := []huh.Option[string]{huh.NewOption("No preference", string(onboarding.CureUnset))}
	for _, c := range onboarding.CurePreferences {
		cureOptions = append(cureOptions, huh.NewOption(c.Label(), string(c)))
	}

	return huh.NewGroup(
		huh.NewText().
			Key(string(onboarding.FieldWillingness)).
			Title("What would you like to learn or change?").
			Placeholder("e.g., I want to understand what's causing my headaches and find natural remedies...").
			Lines(3).
			Value(s.bind(answers, onboarding.FieldWillingness)),

		huh.NewSelect[string]().
			Key(string(onboarding.FieldCurePref)).
			Title("Preferred approach to treatment").
			Options(cureOptions...).
			Value(s.bind(answers, onboarding.FieldCurePref)),

		huh.NewText().
			Key(string(onboarding.FieldConcerns)).
			Title("Any specific concerns?").
			Placeholder("Anything else you'd like us to know...").
			Lines(3).
			Value(s.bind(answers, onboarding.FieldConcerns)),
	)
}
