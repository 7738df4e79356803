package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mrsinham/carewizard/internal/onboarding"
)

// DefaultReply is the fixed answer of the CannedResponder.
const DefaultReply = "Thank you for sharing that. I understand your concern. Let me help guide you with some wellness advice based on what you've told me."

// CannedResponder answers every message with the same text.
type CannedResponder struct {
	Text string
}

// Respond returns the canned text, or DefaultReply if none is set.
func (r CannedResponder) Respond(ctx context.Context, _ Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.Text == "" {
		return DefaultReply, nil
	}
	return r.Text, nil
}

// systemPrompt frames every GenAI conversation.
const systemPrompt = `You are a caring wellness advisor. Offer general wellness guidance only.
You do not diagnose conditions or prescribe medication. When symptoms sound severe,
persistent, or worsening, advise the user to consult a qualified healthcare provider.
Keep answers short and friendly.`

// DefaultModel is used when no GenAI model is configured.
const DefaultModel = "gemini-2.0-flash"

// GenAIResponder answers using Google's Gemini API.
type GenAIResponder struct {
	client *genai.Client
	model  string
}

// NewGenAIResponder creates a responder for the given API key and model.
func NewGenAIResponder(ctx context.Context, apiKey, model string) (*GenAIResponder, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating GenAI client: %w", err)
	}

	return &GenAIResponder{client: client, model: model}, nil
}

// Respond sends the transcript to the model and returns its text answer.
func (r *GenAIResponder) Respond(ctx context.Context, req Request) (string, error) {
	resp, err := r.client.Models.GenerateContent(ctx, r.model, toContents(req.History), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instructions(req.Intake), genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func instructions(intake string) string {
	if intake == "" {
		return systemPrompt
	}
	return systemPrompt + "\n\nThe user completed a health checkup:\n" + intake
}

// toContents maps the transcript to GenAI turns. The opening greeting is skipped
// because the model must see a user turn first.
func toContents(history []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case RoleUser:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		case RoleAssistant:
			if len(contents) == 0 {
				continue
			}
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		}
	}
	return contents
}

// IntakeSummary renders the filled-in checkup answers as plain text lines.
func IntakeSummary(a onboarding.AnswerRecord) string {
	var lines []string
	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", label, value))
		}
	}

	add("Name", a.Name)
	add("Age", a.Age)
	add("Gender", a.Gender.Label())
	add("Symptoms", strings.Join(a.Symptoms(), ", "))
	add("Other symptoms", a.OtherSymptoms)
	add("Medical history", a.MedicalHistory)
	add("Allergies", a.Allergies)
	add("Wants to know", a.Willingness)
	add("Cure preference", a.CurePreference.Label())
	add("Other concerns", a.Concerns)

	return strings.Join(lines, "\n")
}
