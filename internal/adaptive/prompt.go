package adaptive

import (
	"fmt"
	"strings"
)

// PromptHistoryTurns is how many of the loaded messages reach the chat prompt.
const PromptHistoryTurns = 6

// Policy carries the curriculum framing used by every prompt.
type Policy struct {
	Level  string
	Region string
}

func DefaultPolicy() Policy {
	return Policy{Level: "Class 10 CBSE", Region: "Indian"}
}

type Composer struct {
	Policy Policy
}

func NewComposer(p Policy) *Composer {
	if p.Level == "" {
		p.Level = DefaultPolicy().Level
	}
	if p.Region == "" {
		p.Region = DefaultPolicy().Region
	}
	return &Composer{Policy: p}
}

var difficultyGuidelines = map[Difficulty][]string{
	Easy: {
		"Focus on basic definitions and simple calculations",
		"Use direct application of formulas",
		"Single-step problems with clear solutions",
		"Avoid complex multi-part questions",
	},
	Medium: {
		"Include 2-3 step problem solving",
		"Combine multiple concepts within %s",
		"Include some application-based word problems",
		"Require understanding beyond memorization",
	},
	Hard: {
		"Multi-step complex problems",
		"Integration of multiple concepts",
		"Real-world application scenarios",
		"Require deep conceptual understanding and analysis",
	},
}

// OutputGrammar is the reply format the quiz prompt asks the model to follow.
const OutputGrammar = `QUESTION: [Clear, specific question about %s]
A) [First option]
B) [Second option]
C) [Third option]
D) [Fourth option]
ANSWER: [A, B, C, or D]
EXPLANATION: [Clear explanation connecting to the curriculum, mentioning why other options are incorrect]`

// DifficultyGuidelines renders the authoring constraints for a level.
func DifficultyGuidelines(d Difficulty, topic string) string {
	lines, ok := difficultyGuidelines[d]
	if !ok {
		return "- Standard curriculum level questions"
	}
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		if strings.Contains(line, "%s") {
			b.WriteString(fmt.Sprintf(line, topic))
		} else {
			b.WriteString(line)
		}
	}
	return b.String()
}

func contentSection(content []string, heading string) string {
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	for i, c := range content {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[Content %d]: %s", i+1, c)
	}
	return b.String()
}

func conversationWindow(history []Turn) string {
	start := 0
	if len(history) > PromptHistoryTurns {
		start = len(history) - PromptHistoryTurns
	}
	lines := make([]string, 0, len(history)-start)
	for _, turn := range history[start:] {
		speaker := "Tutor"
		if turn.Role == "user" {
			speaker = "Student"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, turn.Content))
	}
	return strings.Join(lines, "\n")
}

// ChatPrompt builds the tutor system prompt. The content-unavailable branch
// tells the model to redirect instead of answering.
func (c *Composer) ChatPrompt(uc UserContext, content []string) string {
	var b strings.Builder
	p := c.Policy

	if len(content) > 0 {
		b.WriteString(contentSection(content, "AVAILABLE CURRICULUM CONTENT:"))
		b.WriteString("\n\nIMPORTANT: Only use the above content if it's directly relevant to the student's question.\n\n")
	} else {
		b.WriteString("CURRICULUM STATUS: No curriculum content found for this question.\n\n")
		fmt.Fprintf(&b, "IMPORTANT: This likely means the student is asking about a topic different from the selected session topic %q. You MUST redirect them appropriately.\n\n", uc.Topic)
	}

	fmt.Fprintf(&b, "You are a supportive AI tutor helping a %s student learn %s in %s.\n\n", p.Level, uc.Topic, uc.Subject)

	b.WriteString("STUDENT CONTEXT:\n")
	fmt.Fprintf(&b, "- Mastery level: %d%%\n", uc.Mastery)
	fmt.Fprintf(&b, "- Knowledge gaps: %s\n", strings.Join(uc.Gaps, ", "))
	fmt.Fprintf(&b, "- Recent performance: %d/%d correct\n", uc.CorrectCount, uc.TotalCount)
	fmt.Fprintf(&b, "- Current difficulty level: %s\n\n", uc.CurrentDifficulty)

	b.WriteString("TEACHING APPROACH:\n")
	b.WriteString("1. For struggling students (mastery < 50%): Focus on fundamentals, use simple examples\n")
	b.WriteString("2. For average students (mastery 50-80%): Provide balanced explanations with practice\n")
	b.WriteString("3. For advanced students (mastery > 80%): Challenge with complex problems and connections\n")
	b.WriteString("4. Use the Socratic method - guide discovery through questions, don't give direct answers\n")
	fmt.Fprintf(&b, "5. Use %s context in examples (local sports scores for statistics, festival dates for calculations, everyday situations)\n", p.Region)
	b.WriteString("6. Connect concepts to real-world applications students can relate to\n")
	fmt.Fprintf(&b, "7. If no relevant curriculum content is available, give general guidance based on %s standards\n\n", p.Level)

	b.WriteString("RESPONSE GUIDELINES:\n")
	b.WriteString("- Keep responses concise (2-3 sentences for simple questions, 4-5 for complex explanations)\n")
	b.WriteString("- Use encouraging, patient language especially for struggling students\n")
	b.WriteString("- Adjust complexity based on mastery level\n")
	b.WriteString("- If the student seems confused, break concepts into smaller steps\n")
	b.WriteString("- Celebrate progress and correct understanding\n\n")

	b.WriteString("CRITICAL RULE - TOPIC BOUNDARIES:\n")
	fmt.Fprintf(&b, "If no curriculum content was found (see the status above), the student is asking about something other than %q. In this case you MUST:\n", uc.Topic)
	b.WriteString("1. NOT provide a detailed answer to the off-topic question\n")
	fmt.Fprintf(&b, "2. Politely acknowledge the question and explain that this session is focused on %q\n", uc.Topic)
	b.WriteString("3. Suggest they either change their topic selection to match the question, or ask about ")
	fmt.Fprintf(&b, "%q instead\n\n", uc.Topic)
	b.WriteString("Example response for off-topic questions:\n")
	fmt.Fprintf(&b, "\"I see you're asking about [different topic], but our current session is focused on %s. To get help with [different topic], please change your topic selection above, or feel free to ask me anything about %s!\"\n\n", uc.Topic, uc.Topic)

	b.WriteString("CONVERSATION HISTORY:\n")
	b.WriteString(conversationWindow(uc.ConversationHistory))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Remember: guide the student to understand concepts deeply rather than memorize formulas, at a level appropriate for %s.", p.Level)
	return b.String()
}

// ChatRequest is the full prompt sent for a chat turn.
func (c *Composer) ChatRequest(uc UserContext, content []string, message string) string {
	return fmt.Sprintf("%s\n\nStudent Question: %s\n\nTutor Response:", c.ChatPrompt(uc, content), message)
}

// QuizPrompt builds the quiz-generation prompt for qc.CurrentDifficulty, which
// callers set to the already-adapted level.
func (c *Composer) QuizPrompt(qc QuizContext) string {
	var b strings.Builder
	p := c.Policy
	d := qc.CurrentDifficulty

	fmt.Fprintf(&b, "You are an adaptive quiz generator for %s %s, specifically for %s.\n\n", p.Level, qc.Subject, qc.Topic)

	b.WriteString("STUDENT PERFORMANCE ANALYSIS:\n")
	fmt.Fprintf(&b, "- Current mastery: %d%%\n", qc.Mastery)
	fmt.Fprintf(&b, "- Consecutive correct: %d\n", qc.ConsecutiveCorrect)
	fmt.Fprintf(&b, "- Consecutive wrong: %d\n", qc.ConsecutiveWrong)
	fmt.Fprintf(&b, "- Adaptive difficulty: %s\n", d)
	fmt.Fprintf(&b, "- Performance trend: %s\n\n", PerformanceTrend(qc))

	b.WriteString("ADAPTIVE DIFFICULTY RULES:\n")
	fmt.Fprintf(&b, "- Current level: %s\n", d)
	b.WriteString("- 2+ correct answers -> increase difficulty (easy->medium->hard)\n")
	b.WriteString("- 2+ wrong answers -> decrease difficulty (hard->medium->easy)\n")
	fmt.Fprintf(&b, "- Questions should match %s level complexity\n\n", d)

	b.WriteString("QUESTION GENERATION GUIDELINES:\n")
	fmt.Fprintf(&b, "For %s difficulty:\n", d)
	b.WriteString(DifficultyGuidelines(d, qc.Topic))
	b.WriteString("\n\n")

	b.WriteString("QUESTION FORMAT:\n")
	b.WriteString("Generate a multiple-choice question following this EXACT format:\n\n")
	fmt.Fprintf(&b, OutputGrammar, qc.Topic)
	b.WriteString("\n\n")

	b.WriteString("IMPORTANT:\n")
	fmt.Fprintf(&b, "- Ensure the question aligns with the %s %s syllabus\n", p.Level, qc.Subject)
	fmt.Fprintf(&b, "- Use %s context in word problems (local currency, sports, festivals)\n", p.Region)
	b.WriteString("- Make incorrect options plausible but clearly wrong\n")
	b.WriteString("- The explanation should reinforce learning, not just state the answer\n")
	b.WriteString("- For struggling students, include helpful hints in the explanation")
	return b.String()
}

// QuizRequest is the full prompt sent to generate one question.
func (c *Composer) QuizRequest(qc QuizContext, content []string) string {
	var b strings.Builder
	if len(content) > 0 {
		b.WriteString(contentSection(content, "CURRICULUM CONTENT:"))
		b.WriteString("\n\n")
	}
	b.WriteString(c.QuizPrompt(qc))
	fmt.Fprintf(&b, "\n\nGenerate a %s difficulty question now:", qc.CurrentDifficulty)
	return b.String()
}
