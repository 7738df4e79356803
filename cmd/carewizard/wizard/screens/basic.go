package screens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mrsinham/carewizard/internal/onboarding"
)

func (s *StepScreen) basicInfoGroup(answers onboarding.AnswerRecord) *huh.Group {
	genderOptions := []huh.Option[string]{huh.NewOption("Prefer not to say", string(onboarding.GenderUnset))}
	for _, g := range onboarding.Genders {
		genderOptions = append(genderOptions, huh.NewOption(g.Label(), string(g)))
	}

	return huh.NewGroup(
		huh.NewInput().
			Key(string(onboarding.FieldName)).
			Title("Full Name").
			Placeholder("Enter your name").
			Value(s.bind(answers, onboarding.FieldName)),

		huh.NewInput().
			Key(string(onboarding.FieldAge)).
			Title("Age").
			Placeholder("Enter your age").
			Value(s.bind(answers, onboarding.FieldAge)).
			Validate(validateAge),

		huh.NewSelect[string]().
			Key(string(onboarding.FieldGender)).
			Title("Gender").
			Options(genderOptions...).
			Value(s.bind(answers, onboarding.FieldGender)),
	)
}

// validateAge accepts an empty answer or a whole number of years.
func validateAge(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 || n > 130 {
		return fmt.Errorf("must be between 0 and 130")
	}
	return nil
}
