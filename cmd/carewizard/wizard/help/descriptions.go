package help

// HelpText contains information about a checkup question
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help for every checkup question, keyed by field name
var Texts = map[string]HelpText{
	"name": {
		Title:       "NAME",
		Description: "How the advisor should address you.",
		Details:     "A first name or nickname is enough. It only appears on your reports.",
	},
	"age": {
		Title:       "AGE",
		Description: "Your age in years.",
		Details:     "Some suggestions differ for children, adults and older adults. Leave empty to skip.",
	},
	"gender": {
		Title:       "GENDER",
		Description: "Optional.",
		Details:     "Choose \"Prefer not to say\" to leave it out of your summary.",
	},
	"symptoms": {
		Title:       "SYMPTOMS",
		Description: "Select every symptom you are experiencing.",
		Details: `Space: select or unselect
Up/Down: move through the list
Selections can be changed until you submit.`,
	},
	"otherSymptoms": {
		Title:       "OTHER SYMPTOMS",
		Description: "Anything that is not in the list above.",
		Details:     "Describe it in your own words, including when it started.",
	},
	"medicalHistory": {
		Title:       "MEDICAL HISTORY",
		Description: "Past conditions, surgeries or ongoing treatments.",
		Details:     "Include current medication so suggestions can avoid conflicts.",
	},
	"allergies": {
		Title:       "ALLERGIES",
		Description: "Known allergies to food, medication or the environment.",
		Details:     "Write \"none\" if you have none.",
	},
	"willingness": {
		Title:       "WILLINGNESS",
		Description: "What you are ready to change or try.",
		Details:     "For example diet, sleep routine, exercise or supplements.",
	},
	"curePref": {
		Title:       "CURE PREFERENCE",
		Description: "The kind of remedies you would rather start with.",
		Details: `Natural / Home Remedies
Medication-based
Combination of both
Open to any suggestion`,
	},
	"concerns": {
		Title:       "CONCERNS",
		Description: "Anything worrying you about your health or treatment.",
		Details:     "The advisor takes these into account when answering.",
	},
}
