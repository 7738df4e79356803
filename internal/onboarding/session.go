// Package onboarding implements the step-wizard engine behind the health checkup.
//
// A Session owns the current step index and a single AnswerRecord. Navigation clamps at
// the first and last step instead of failing, field edits are applied immediately, and
// Submit hands a copy of the record to a CompletionHandler exactly once.
package onboarding

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CompletionHandler receives the finished answers when a session is submitted.
// Implementations must not block: the engine does not wait for the outcome.
type CompletionHandler interface {
	Complete(ctx context.Context, sessionID string, answers AnswerRecord)
}

// CompletionFunc adapts a function to CompletionHandler.
type CompletionFunc func(ctx context.Context, sessionID string, answers AnswerRecord)

// Complete calls f.
func (f CompletionFunc) Complete(ctx context.Context, sessionID string, answers AnswerRecord) {
	f(ctx, sessionID, answers)
}

// Session is one run through the onboarding flow.
type Session struct {
	id      string
	step    int
	answers AnswerRecord
	handler CompletionHandler
	ended   bool
}

// New starts a session at the first step with an empty record.
// A nil handler discards the submitted answers.
func New(handler CompletionHandler) *Session {
	return &Session{
		id:      uuid.NewString(),
		handler: handler,
		answers: AnswerRecord{symptoms: make(map[string]struct{})},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Step returns the current 0-based step index.
func (s *Session) Step() int { return s.step }

// CurrentStep returns the definition of the current step.
func (s *Session) CurrentStep() StepDefinition { return Steps()[s.step] }

// Ended reports whether the session was submitted.
func (s *Session) Ended() bool { return s.ended }

// Answers returns a snapshot of the record.
func (s *Session) Answers() AnswerRecord { return s.answers.Clone() }

// UpdateField replaces the value of a scalar field.
func (s *Session) UpdateField(f Field, value string) error {
	if s.ended {
		return ErrSessionEnded
	}
	return s.answers.set(f, value)
}

// ToggleSymptom selects the symptom if it is not selected and deselects it otherwise.
func (s *Session) ToggleSymptom(symptom string) error {
	if s.ended {
		return ErrSessionEnded
	}
	return s.answers.toggle(symptom)
}

// Advance moves to the next step. It is a no-op on the last step.
func (s *Session) Advance() int {
	if !s.ended && s.step < StepCount-1 {
		s.step++
	}
	return s.step
}

// Retreat moves to the previous step. It is a no-op on the first step.
func (s *Session) Retreat() int {
	if !s.ended && s.step > 0 {
		s.step--
	}
	return s.step
}

// ProgressFraction returns (step+1)/StepCount, in (0, 1].
func (s *Session) ProgressFraction() float64 {
	return float64(s.step+1) / float64(StepCount)
}

// IsFinalStep reports whether the session is on the last step.
func (s *Session) IsFinalStep() bool {
	return s.step == StepCount-1
}

// Submit ends the session and passes a copy of the answers to the completion handler.
// No field is required.
func (s *Session) Submit(ctx context.Context) error {
	if s.ended {
		return ErrSessionEnded
	}
	if !s.IsFinalStep() {
		return fmt.Errorf("%w: on step %d of %d", ErrNotFinalStep, s.step+1, StepCount)
	}
	s.ended = true
	if s.handler != nil {
		s.handler.Complete(ctx, s.id, s.answers.Clone())
	}
	return nil
}
