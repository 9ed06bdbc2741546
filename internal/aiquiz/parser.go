package aiquiz

import (
	"regexp"
	"strings"

	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
)

var (
	questionLabel    = regexp.MustCompile(`(?i)^question\s*:\s*`)
	numberedLine     = regexp.MustCompile(`^\d+\.\s+`)
	actionWord       = regexp.MustCompile(`(?i)solve|find|calculate|what|which|how`)
	optionParen      = regexp.MustCompile(`(?i)^[A-D]\)\s*(.+)`)
	optionAlt        = regexp.MustCompile(`(?i)^[A-D][.:]\s*(.+)`)
	answerLabel      = regexp.MustCompile(`(?i)^answer\s*:\s*(.*)`)
	explanationLabel = regexp.MustCompile(`(?i)^explanation\s*:\s*(.+)`)
)

// questionExtractor returns the question text found in lines, or "".
type questionExtractor func(lines []string) string

// questionExtractors run in order; the first non-empty result wins.
var questionExtractors = []questionExtractor{
	labelledQuestion,
	numberedQuestion,
	interrogativeQuestion,
	actionQuestion,
	substantialLine,
}

func labelledQuestion(lines []string) string {
	for _, l := range lines {
		if questionLabel.MatchString(l) {
			return strings.TrimSpace(questionLabel.ReplaceAllString(l, ""))
		}
	}
	return ""
}

func numberedQuestion(lines []string) string {
	for _, l := range lines {
		if numberedLine.MatchString(l) {
			return strings.TrimSpace(numberedLine.ReplaceAllString(l, ""))
		}
	}
	return ""
}

func interrogativeQuestion(lines []string) string {
	for _, l := range lines {
		if strings.HasSuffix(l, "?") {
			return l
		}
	}
	return ""
}

func actionQuestion(lines []string) string {
	for _, l := range lines {
		if len(l) > 10 && actionWord.MatchString(l) {
			return l
		}
	}
	return ""
}

func substantialLine(lines []string) string {
	for _, l := range lines {
		lower := strings.ToLower(l)
		if len(l) > 10 &&
			!optionParen.MatchString(l) &&
			!optionAlt.MatchString(l) &&
			!strings.Contains(lower, "answer") &&
			!strings.Contains(lower, "explanation") {
			return l
		}
	}
	return ""
}

func extractOptions(lines []string) []string {
	var options []string
	for _, l := range lines {
		if m := optionParen.FindStringSubmatch(l); m != nil {
			options = append(options, strings.TrimSpace(m[1]))
		}
	}
	if len(options) >= OptionCount {
		return options
	}

	seen := make(map[string]struct{}, len(options))
	for _, o := range options {
		seen[o] = struct{}{}
	}
	for _, l := range lines {
		m := optionAlt.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[1])
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		options = append(options, text)
	}
	return options
}

func extractAnswer(lines []string) string {
	for _, l := range lines {
		m := answerLabel.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		v := strings.TrimSpace(m[1])
		if v == "" {
			return FallbackAnswer
		}
		letter := strings.ToUpper(v[:1])
		if !strings.Contains("ABCD", letter) {
			return FallbackAnswer
		}
		return letter
	}
	return FallbackAnswer
}

func extractExplanation(lines []string) string {
	for _, l := range lines {
		if m := explanationLabel.FindStringSubmatch(l); m != nil {
			if e := strings.TrimSpace(m[1]); e != "" {
				return e
			}
		}
	}
	return NoExplanation
}

func splitLines(raw string) []string {
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		l = strings.TrimSpace(strings.ReplaceAll(l, "**", ""))
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Parse turns free model output into a Question. It never fails: when fewer
// than four options can be recovered the whole fallback question is returned.
func Parse(raw string, difficulty adaptive.Difficulty) Question {
	lines := splitLines(raw)

	options := extractOptions(lines)
	if len(options) < OptionCount {
		return Question{
			Question:      FallbackQuestion,
			Options:       FallbackOptions(),
			CorrectAnswer: FallbackAnswer,
			Explanation:   FallbackExplanation,
			Difficulty:    difficulty,
		}
	}

	question := ""
	for _, extract := range questionExtractors {
		if question = extract(lines); question != "" {
			break
		}
	}
	if question == "" {
		question = FallbackQuestion
	}

	return Question{
		Question:      question,
		Options:       options[:OptionCount],
		CorrectAnswer: extractAnswer(lines),
		Explanation:   extractExplanation(lines),
		Difficulty:    difficulty,
	}
}
