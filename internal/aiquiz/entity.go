package aiquiz

import "github.com/saulo-duarte/adaptive-tutor/internal/adaptive"

type Question struct {
	Question      string              `json:"question"`
	Options       []string            `json:"options"`
	CorrectAnswer string              `json:"correctAnswer"`
	Explanation   string              `json:"explanation"`
	Difficulty    adaptive.Difficulty `json:"difficulty"`
}

const OptionCount = 4

// Values used when the model output cannot be turned into a usable question.
const (
	FallbackQuestion    = "What are the solutions to x² + 5x + 6 = 0?"
	FallbackAnswer      = "A"
	FallbackExplanation = "Using factoring method: x² + 5x + 6 = (x + 2)(x + 3) = 0, so x = -2 or x = -3"
	NoExplanation       = "No explanation provided."
)

func FallbackOptions() []string {
	return []string{"x = -2, -3", "x = -1, -6", "x = 2, 3", "x = 1, 6"}
}
