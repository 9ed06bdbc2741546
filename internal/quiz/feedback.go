package quiz

import "github.com/saulo-duarte/adaptive-tutor/internal/adaptive"

// Accuracy is the running percentage of correct answers, 0 before any answer.
func Accuracy(correct, total int) int {
	return adaptive.Percent(correct, total)
}

func FeedbackMessage(isCorrect bool, accuracy int) string {
	if isCorrect {
		switch {
		case accuracy >= 80:
			return "Excellent! You're mastering this topic. Ready for a challenge?"
		case accuracy >= 60:
			return "Good job! You're building strong understanding."
		default:
			return "Correct! You're on the right track."
		}
	}

	switch {
	case accuracy < 40:
		return "Don't worry! Let's focus on the basics. You're learning!"
	case accuracy < 60:
		return "Not quite right, but you're making progress. Keep practicing!"
	default:
		return "Close! Let's review this concept together."
	}
}

var nextDifficultyHints = map[bool]map[adaptive.Difficulty]string{
	true: {
		adaptive.Easy:   "Keep this up and we'll try medium questions!",
		adaptive.Medium: "Great progress! Hard questions coming soon.",
		adaptive.Hard:   "Excellent mastery! You're at the highest level.",
	},
	false: {
		adaptive.Easy:   "Focus on understanding fundamentals first.",
		adaptive.Medium: "Let's review basics with easier questions.",
		adaptive.Hard:   "Let's try some medium level questions to build confidence.",
	},
}

// NextDifficultyHint tells the student where the next question is heading.
// An unknown level is treated as hard when correct and easy when wrong.
func NextDifficultyHint(isCorrect bool, current adaptive.Difficulty) string {
	if hint, ok := nextDifficultyHints[isCorrect][current]; ok {
		return hint
	}
	if isCorrect {
		return nextDifficultyHints[true][adaptive.Hard]
	}
	return nextDifficultyHints[false][adaptive.Easy]
}
