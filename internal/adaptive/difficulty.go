package adaptive

import "strings"

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var AllDifficulties = []Difficulty{Easy, Medium, Hard}

// StreakThreshold is the run length that moves the level one step.
const StreakThreshold = 2

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	return d, d.IsValid()
}

func (d Difficulty) stepDown() Difficulty {
	switch d {
	case Hard:
		return Medium
	default:
		return Easy
	}
}

func (d Difficulty) stepUp() Difficulty {
	switch d {
	case Easy:
		return Medium
	default:
		return Hard
	}
}

// NextDifficulty applies the streak rules. The wrong-streak rule wins when both
// thresholds are met.
func NextDifficulty(consecutiveCorrect, consecutiveWrong int, current Difficulty) Difficulty {
	if !current.IsValid() {
		current = Medium
	}
	if consecutiveWrong >= StreakThreshold {
		return current.stepDown()
	}
	if consecutiveCorrect >= StreakThreshold {
		return current.stepUp()
	}
	return current
}

// Streak counts the run of identical results starting at the newest one.
// results must be ordered newest first.
func Streak(results []bool) (consecutiveCorrect, consecutiveWrong int) {
	if len(results) == 0 {
		return 0, 0
	}
	run := 1
	for _, r := range results[1:] {
		if r != results[0] {
			break
		}
		run++
	}
	if results[0] {
		return run, 0
	}
	return 0, run
}

// FromMastery maps a mastery percentage to a starting level.
func FromMastery(mastery int) Difficulty {
	switch {
	case mastery < 40:
		return Easy
	case mastery < 75:
		return Medium
	default:
		return Hard
	}
}
