package onboarding

import "errors"

// Contract violations between the presentation layer and the engine.
var (
	ErrUnknownField   = errors.New("unknown answer field")
	ErrInvalidValue   = errors.New("invalid answer value")
	ErrUnknownSymptom = errors.New("symptom is not in the catalog")
	ErrNotFinalStep   = errors.New("submit is only allowed from the final step")
	ErrSessionEnded   = errors.New("wizard session has ended")
)
