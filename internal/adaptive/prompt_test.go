package adaptive

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sampleContext() UserContext {
	return UserContext{
		SessionID:         uuid.New(),
		Topic:             "Quadratic Equations",
		Subject:           "Mathematics",
		Mastery:           64,
		Gaps:              []string{"Application problems", "Multi-step solutions"},
		CorrectCount:      7,
		TotalCount:        11,
		CurrentDifficulty: Medium,
	}
}

func TestChatPrompt_WithContent(t *testing.T) {
	c := NewComposer(DefaultPolicy())
	prompt := c.ChatPrompt(sampleContext(), []string{"Roots come from factoring.", "Discriminant decides root type."})

	assert.True(t, strings.HasPrefix(prompt, "AVAILABLE CURRICULUM CONTENT:"))
	assert.Contains(t, prompt, "[Content 1]: Roots come from factoring.")
	assert.Contains(t, prompt, "[Content 2]: Discriminant decides root type.")
	assert.NotContains(t, prompt, "No curriculum content found")
	assert.Contains(t, prompt, "- Mastery level: 64%")
	assert.Contains(t, prompt, "- Knowledge gaps: Application problems, Multi-step solutions")
	assert.Contains(t, prompt, "- Recent performance: 7/11 correct")
	assert.Contains(t, prompt, "- Current difficulty level: medium")
	assert.Contains(t, prompt, "Socratic")
}

func TestChatPrompt_WithoutContentRedirects(t *testing.T) {
	c := NewComposer(DefaultPolicy())
	prompt := c.ChatPrompt(sampleContext(), nil)

	assert.True(t, strings.HasPrefix(prompt, "CURRICULUM STATUS: No curriculum content found"))
	assert.Contains(t, prompt, `session topic "Quadratic Equations"`)
	assert.NotContains(t, prompt, "AVAILABLE CURRICULUM CONTENT")
}

func TestChatPrompt_KeepsLastTurnsInOrder(t *testing.T) {
	uc := sampleContext()
	for i := 1; i <= 8; i++ {
		role := "user"
		if i%2 == 0 {
			role = "assistant"
		}
		uc.ConversationHistory = append(uc.ConversationHistory, Turn{Role: role, Content: fmt.Sprintf("msg-%d", i)})
	}
	before := len(uc.ConversationHistory)

	prompt := NewComposer(DefaultPolicy()).ChatPrompt(uc, nil)

	assert.NotContains(t, prompt, "msg-1\n")
	assert.NotContains(t, prompt, "msg-2\n")
	assert.Contains(t, prompt, "Student: msg-3\nTutor: msg-4\nStudent: msg-5\nTutor: msg-6\nStudent: msg-7\nTutor: msg-8")
	assert.Len(t, uc.ConversationHistory, before)
}

func TestChatPrompt_Deterministic(t *testing.T) {
	c := NewComposer(DefaultPolicy())
	uc := sampleContext()
	assert.Equal(t, c.ChatPrompt(uc, []string{"a"}), c.ChatPrompt(uc, []string{"a"}))
}

func TestChatRequest_AppendsQuestion(t *testing.T) {
	c := NewComposer(DefaultPolicy())
	req := c.ChatRequest(sampleContext(), nil, "How do I factor x^2+5x+6?")
	assert.True(t, strings.HasSuffix(req, "Student Question: How do I factor x^2+5x+6?\n\nTutor Response:"))
}

func TestQuizPrompt(t *testing.T) {
	qc := QuizContext{UserContext: sampleContext(), ConsecutiveCorrect: 2}
	qc.CurrentDifficulty = Hard

	prompt := NewComposer(DefaultPolicy()).QuizPrompt(qc)

	assert.Contains(t, prompt, "- Consecutive correct: 2")
	assert.Contains(t, prompt, "- Consecutive wrong: 0")
	assert.Contains(t, prompt, "- Adaptive difficulty: hard")
	assert.Contains(t, prompt, "Improving - ready for harder questions")
	assert.Contains(t, prompt, "- Multi-step complex problems")
	assert.Contains(t, prompt, "QUESTION: [Clear, specific question about Quadratic Equations]")
	for _, label := range []string{"\nA) ", "\nB) ", "\nC) ", "\nD) ", "\nANSWER: ", "\nEXPLANATION: "} {
		assert.Contains(t, prompt, label)
	}
}

func TestQuizRequest_ContentSection(t *testing.T) {
	c := NewComposer(DefaultPolicy())
	qc := QuizContext{UserContext: sampleContext()}

	with := c.QuizRequest(qc, []string{"Vertex form"})
	assert.True(t, strings.HasPrefix(with, "CURRICULUM CONTENT:\n[Content 1]: Vertex form"))
	assert.True(t, strings.HasSuffix(with, "Generate a medium difficulty question now:"))

	without := c.QuizRequest(qc, nil)
	assert.True(t, strings.HasPrefix(without, "You are an adaptive quiz generator"))
}

func TestDifficultyGuidelines(t *testing.T) {
	assert.Contains(t, DifficultyGuidelines(Medium, "Polynomials"), "- Combine multiple concepts within Polynomials")
	assert.Contains(t, DifficultyGuidelines(Easy, "Polynomials"), "- Single-step problems with clear solutions")
	assert.Equal(t, "- Standard curriculum level questions", DifficultyGuidelines(Difficulty("x"), "Polynomials"))
}

func TestNewComposer_FillsPolicyDefaults(t *testing.T) {
	c := NewComposer(Policy{Region: "Kenyan"})
	assert.Equal(t, "Class 10 CBSE", c.Policy.Level)
	assert.Equal(t, "Kenyan", c.Policy.Region)
}
