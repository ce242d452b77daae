package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyhub/internal/model"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	args := m.Called(ctx, system, prompt)
	return args.String(0), args.Error(1)
}

const reply = `{"questions":[
  {"type":"multiple_choice","subject":"Biology","topic":"Cells","difficulty":"easy",
   "question":"Powerhouse of the cell?","options":["Nucleus","Mitochondria"],
   "correctAnswer":"Mitochondria","explanation":"It makes ATP."},
  {"type":"multiple_choice","subject":"Biology","topic":"Cells","difficulty":"easy",
   "question":"Cells have walls in?","options":["Plants","Animals"],"correctAnswer":"Plants"}
]}`

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(Request{Subject: "Biology", Topic: "Cells", Difficulty: "hard", Type: "true_false", Count: 3})

	assert.Contains(t, prompt, "Generate 3 hard difficulty true_false questions about Cells in Biology.")
	assert.Contains(t, prompt, `"type": "true_false"`)
	assert.Contains(t, prompt, `"correctAnswer"`)
}

func TestParseQuestions(t *testing.T) {
	questions, err := ParseQuestions(reply)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, model.QuestionMultipleChoice, questions[0].Type)
	assert.Equal(t, []string{"Nucleus", "Mitochondria"}, []string(questions[0].Options))
	assert.Equal(t, "Mitochondria", questions[0].CorrectAnswer)
}

func TestParseQuestionsCodeFence(t *testing.T) {
	questions, err := ParseQuestions("```json\n" + reply + "\n```")
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestParseQuestionsMalformed(t *testing.T) {
	_, err := ParseQuestions("Sure! Here are your questions:")
	assert.Error(t, err)
}

func TestGenerator_DefaultsCount(t *testing.T) {
	m := new(MockCompleter)
	m.On("Complete", mock.Anything, systemPrompt, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Generate 5 easy")
	})).Return(reply, nil)

	questions, err := NewGenerator(m).Generate(context.Background(), Request{Subject: "Biology", Topic: "Cells", Difficulty: "easy", Type: "multiple_choice"})
	require.NoError(t, err)
	assert.Len(t, questions, 2)
	m.AssertExpectations(t)
}

func TestGenerator_ProviderError(t *testing.T) {
	m := new(MockCompleter)
	m.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	_, err := NewGenerator(m).Generate(context.Background(), Request{Count: 1})
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestOpenAICompleter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": reply}, "finish_reason": "stop"},
			},
		})
	}))
	defer srv.Close()

	c := NewOpenAICompleter("test-key", "test-model", srv.URL)
	content, err := c.Complete(context.Background(), systemPrompt, "prompt")
	require.NoError(t, err)
	assert.Equal(t, reply, content)
}
