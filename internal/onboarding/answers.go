package onboarding

import (
	"fmt"
	"sort"
	"strings"
)

// Field names an editable entry of the AnswerRecord.
type Field string

const (
	FieldName           Field = "name"
	FieldAge            Field = "age"
	FieldGender         Field = "gender"
	FieldSymptoms       Field = "symptoms"
	FieldOtherSymptoms  Field = "otherSymptoms"
	FieldMedicalHistory Field = "medicalHistory"
	FieldAllergies      Field = "allergies"
	FieldWillingness    Field = "willingness"
	FieldCurePref       Field = "curePref"
	FieldConcerns       Field = "concerns"
)

// AllFields lists every field in step order.
var AllFields = []Field{
	FieldName, FieldAge, FieldGender,
	FieldSymptoms, FieldOtherSymptoms,
	FieldMedicalHistory, FieldAllergies,
	FieldWillingness, FieldCurePref, FieldConcerns,
}

// ParseField resolves a field name sent by the presentation layer.
func ParseField(s string) (Field, error) {
	for _, f := range AllFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// AnswerRecord holds every value collected across the wizard steps.
//
// The selected symptoms are kept as a set; use ToggleSymptom on the session to change them.
type AnswerRecord struct {
	Name   string
	Age    string
	Gender Gender

	symptoms      map[string]struct{}
	OtherSymptoms string

	MedicalHistory string
	Allergies      string

	Willingness    string
	CurePreference CurePreference
	Concerns       string
}

// Symptoms returns the selected symptoms in catalog order.
func (r AnswerRecord) Symptoms() []string {
	out := make([]string, 0, len(r.symptoms))
	for s := range r.symptoms {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return symptomOrder[out[i]] < symptomOrder[out[j]]
	})
	return out
}

// HasSymptom reports whether the symptom is selected.
func (r AnswerRecord) HasSymptom(s string) bool {
	_, ok := r.symptoms[s]
	return ok
}

// Value returns the textual value of a field. Symptoms are joined with ", ".
func (r AnswerRecord) Value(f Field) (string, error) {
	switch f {
	case FieldName:
		return r.Name, nil
	case FieldAge:
		return r.Age, nil
	case FieldGender:
		return string(r.Gender), nil
	case FieldSymptoms:
		return strings.Join(r.Symptoms(), ", "), nil
	case FieldOtherSymptoms:
		return r.OtherSymptoms, nil
	case FieldMedicalHistory:
		return r.MedicalHistory, nil
	case FieldAllergies:
		return r.Allergies, nil
	case FieldWillingness:
		return r.Willingness, nil
	case FieldCurePref:
		return string(r.CurePreference), nil
	case FieldConcerns:
		return r.Concerns, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
}

// IsEmpty reports whether no field has been filled in.
func (r AnswerRecord) IsEmpty() bool {
	return r.Name == "" && r.Age == "" && r.Gender == GenderUnset &&
		len(r.symptoms) == 0 && r.OtherSymptoms == "" &&
		r.MedicalHistory == "" && r.Allergies == "" &&
		r.Willingness == "" && r.CurePreference == CureUnset && r.Concerns == ""
}

// Clone returns a copy that shares no state with r.
func (r AnswerRecord) Clone() AnswerRecord {
	c := r
	c.symptoms = make(map[string]struct{}, len(r.symptoms))
	for s := range r.symptoms {
		c.symptoms[s] = struct{}{}
	}
	return c
}

// set replaces the value of a scalar field.
func (r *AnswerRecord) set(f Field, value string) error {
	switch f {
	case FieldName:
		r.Name = value
	case FieldAge:
		r.Age = value
	case FieldGender:
		g, err := ParseGender(value)
		if err != nil {
			return err
		}
		r.Gender = g
	case FieldSymptoms:
		return fmt.Errorf("%w: %q is a multi-select, use ToggleSymptom", ErrUnknownField, f)
	case FieldOtherSymptoms:
		r.OtherSymptoms = value
	case FieldMedicalHistory:
		r.MedicalHistory = value
	case FieldAllergies:
		r.Allergies = value
	case FieldWillingness:
		r.Willingness = value
	case FieldCurePref:
		c, err := ParseCurePreference(value)
		if err != nil {
			return err
		}
		r.CurePreference = c
	case FieldConcerns:
		r.Concerns = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}

// toggle adds the symptom if absent and removes it if present.
func (r *AnswerRecord) toggle(symptom string) error {
	if !IsCatalogSymptom(symptom) {
		return fmt.Errorf("%w: %q", ErrUnknownSymptom, symptom)
	}
	if r.symptoms == nil {
		r.symptoms = make(map[string]struct{})
	}
	if _, ok := r.symptoms[symptom]; ok {
		delete(r.symptoms, symptom)
	} else {
		r.symptoms[symptom] = struct{}{}
	}
	return nil
}
