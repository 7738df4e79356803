package onboarding

import (
	"fmt"
	"strings"
)

// SymptomCatalog is the fixed list of selectable symptoms, in display order.
var SymptomCatalog = []string{
	"Headache", "Fever", "Fatigue", "Cough", "Chest Pain",
	"Back Pain", "Nausea", "Dizziness", "Joint Pain", "Skin Issues",
	"Breathing Difficulty", "Stomach Pain", "Insomnia", "Anxiety",
}

// symptomOrder maps a catalog symptom to its position in SymptomCatalog.
var symptomOrder = func() map[string]int {
	m := make(map[string]int, len(SymptomCatalog))
	for i, s := range SymptomCatalog {
		m[s] = i
	}
	return m
}()

// IsCatalogSymptom reports whether s is one of the selectable symptoms.
func IsCatalogSymptom(s string) bool {
	_, ok := symptomOrder[s]
	return ok
}

// Gender is the self-reported gender. The zero value means unset.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the selectable genders in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Label returns the display label of the gender.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return ""
	}
}

// ParseGender parses a gender value. The empty string yields GenderUnset.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return GenderUnset, nil
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	case "other":
		return GenderOther, nil
	default:
		return GenderUnset, fmt.Errorf("%w: gender %q (valid: male, female, other)", ErrInvalidValue, s)
	}
}

// CurePreference is the kind of remedy the user is open to. The zero value means unset.
type CurePreference string

const (
	CureUnset       CurePreference = ""
	CureNatural     CurePreference = "natural"
	CureMedication  CurePreference = "medication"
	CureCombination CurePreference = "combination"
	CureOpen        CurePreference = "open"
)

// CurePreferences lists the selectable preferences in display order.
var CurePreferences = []CurePreference{CureNatural, CureMedication, CureCombination, CureOpen}

// Label returns the display label of the preference.
func (c CurePreference) Label() string {
	switch c {
	case CureNatural:
		return "Natural / Home Remedies"
	case CureMedication:
		return "Medication-based"
	case CureCombination:
		return "Combination of both"
	case CureOpen:
		return "Open to any suggestion"
	default:
		return ""
	}
}

// ParseCurePreference accepts either a preference value or its display label.
func ParseCurePreference(s string) (CurePreference, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return CureUnset, nil
	}
	for _, c := range CurePreferences {
		if strings.EqualFold(trimmed, string(c)) || strings.EqualFold(trimmed, c.Label()) {
			return c, nil
		}
	}
	return CureUnset, fmt.Errorf("%w: cure preference %q (valid: natural, medication, combination, open)", ErrInvalidValue, s)
}
