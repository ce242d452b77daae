// Package ai drafts exam questions through an external text-completion provider.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studyhub/internal/model"
)

const systemPrompt = "You are a helpful educational assistant that creates exam questions."

// DefaultCount is the number of questions requested when none is given.
const DefaultCount = 5

// Completer sends one prompt to a completion model and returns its text reply.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Request describes the questions to draft.
type Request struct {
	Subject    string
	Topic      string
	Difficulty string
	Type       string
	Count      int
}

// Generator turns a Request into questions using a Completer.
type Generator struct {
	completer Completer
}

// NewGenerator creates a generator backed by the given completer.
func NewGenerator(completer Completer) *Generator {
	return &Generator{completer: completer}
}

// Generate asks the provider for questions and decodes its reply.
// The items are returned as the provider wrote them; nothing is retried.
func (g *Generator) Generate(ctx context.Context, req Request) ([]model.Question, error) {
	if req.Count <= 0 {
		req.Count = DefaultCount
	}
	content, err := g.completer.Complete(ctx, systemPrompt, BuildPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("completion: %w", err)
	}
	questions, err := ParseQuestions(content)
	if err != nil {
		return nil, fmt.Errorf("parse completion: %w", err)
	}
	return questions, nil
}

// BuildPrompt embeds the request parameters and the expected JSON shape.
func BuildPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d %s difficulty %s questions about %s in %s.\n",
		req.Count, req.Difficulty, req.Type, req.Topic, req.Subject)
	b.WriteString("Format the response as JSON with this structure:\n")
	b.WriteString("{\n  \"questions\": [\n    {\n")
	fmt.Fprintf(&b, "      \"type\": %q,\n", req.Type)
	fmt.Fprintf(&b, "      \"subject\": %q,\n", req.Subject)
	fmt.Fprintf(&b, "      \"topic\": %q,\n", req.Topic)
	fmt.Fprintf(&b, "      \"difficulty\": %q,\n", req.Difficulty)
	b.WriteString("      \"question\": \"question text\",\n")
	b.WriteString("      \"options\": [\"option1\", \"option2\", ...] (only for multiple_choice),\n")
	b.WriteString("      \"correctAnswer\": \"correct answer\",\n")
	b.WriteString("      \"explanation\": \"brief explanation\"\n")
	b.WriteString("    }\n  ]\n}\n")
	return b.String()
}

type completionPayload struct {
	Questions []struct {
		Type          string   `json:"type"`
		Subject       string   `json:"subject"`
		Topic         string   `json:"topic"`
		Difficulty    string   `json:"difficulty"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	} `json:"questions"`
}

// ParseQuestions decodes a {"questions": [...]} reply. A surrounding
// markdown code fence is tolerated.
func ParseQuestions(content string) ([]model.Question, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	var payload completionPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, err
	}

	questions := make([]model.Question, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		questions = append(questions, model.Question{
			Type:          model.QuestionType(q.Type),
			Subject:       q.Subject,
			Topic:         q.Topic,
			Difficulty:    model.Difficulty(q.Difficulty),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return questions, nil
}
