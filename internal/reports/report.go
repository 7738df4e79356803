// Package reports turns completed checkups into advisory health summaries and stores them.
package reports

import (
	"time"

	"github.com/mrsinham/carewizard/internal/onboarding"
	"github.com/mrsinham/carewizard/internal/recommend"
)

// Disclaimer accompanies every report.
const Disclaimer = "These reports are advisory in nature and do not constitute a medical diagnosis. " +
	"Please consult a qualified healthcare provider for professional medical advice."

// Report is the health summary produced from one checkup.
type Report struct {
	ID              string    `yaml:"id"`
	CreatedAt       time.Time `yaml:"created_at"`
	Name            string    `yaml:"name,omitempty"`
	Symptoms        []string  `yaml:"symptoms"`
	OtherSymptoms   string    `yaml:"other_symptoms,omitempty"`
	Willingness     string    `yaml:"willingness,omitempty"`
	CurePreference  string    `yaml:"cure_preference,omitempty"`
	Recommendations []string  `yaml:"recommendations"`
}

// FromAnswers builds the report for a submitted checkup.
func FromAnswers(id string, at time.Time, a onboarding.AnswerRecord) Report {
	symptoms := a.Symptoms()

	recs := recommend.ForSymptoms(symptoms)
	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}

	return Report{
		ID:              id,
		CreatedAt:       at,
		Name:            a.Name,
		Symptoms:        symptoms,
		OtherSymptoms:   a.OtherSymptoms,
		Willingness:     a.Willingness,
		CurePreference:  a.CurePreference.Label(),
		Recommendations: titles,
	}
}

// SampleReports returns the example reports shown to first-time users.
func SampleReports() []Report {
	return []Report{
		{
			ID:              "sample-1",
			CreatedAt:       time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC),
			Symptoms:        []string{"Headache", "Fatigue", "Insomnia"},
			Willingness:     "Wants to understand root causes, open to lifestyle changes",
			Recommendations: []string{"Improve sleep hygiene", "Reduce screen time before bed", "Consider magnesium supplements"},
		},
		{
			ID:              "sample-2",
			CreatedAt:       time.Date(2026, time.February, 15, 9, 0, 0, 0, time.UTC),
			Symptoms:        []string{"Back Pain", "Joint Pain"},
			Willingness:     "Prefers natural remedies, concerned about medication side effects",
			Recommendations: []string{"Daily stretching routine", "Warm compresses", "Anti-inflammatory foods"},
		},
	}
}

// DisplayDate formats the report date the way it is shown in listings.
func (r Report) DisplayDate() string {
	return r.CreatedAt.Format("Jan 2, 2006")
}
