package adaptive

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// HistoryWindow is how many chat messages are loaded into a context.
	HistoryWindow = 10
	// MasteryWindow is how many recent quiz sessions count towards mastery.
	MasteryWindow = 5
	// StreakWindow is how many recent answers are scanned for a streak.
	StreakWindow = 5
)

type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type UserContext struct {
	SessionID           uuid.UUID
	Topic               string
	Subject             string
	Mastery             int
	Gaps                []string
	CorrectCount        int
	TotalCount          int
	CurrentDifficulty   Difficulty
	ConversationHistory []Turn
}

type QuizContext struct {
	UserContext
	ConsecutiveCorrect int
	ConsecutiveWrong   int
}

// DefaultContext is the zero-mastery view used whenever performance data
// cannot be loaded.
func DefaultContext(sessionID uuid.UUID, topic string) UserContext {
	return UserContext{
		SessionID:         sessionID,
		Topic:             topic,
		Subject:           SubjectForTopic(topic),
		Mastery:           0,
		Gaps:              []string{"Basic concepts"},
		CurrentDifficulty: Easy,
	}
}

// Percent is round(100*correct/total), 0 when total is 0.
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(correct) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

var (
	mathTopics    = []string{"quadratic", "polynomial", "algebra", "geometry", "trigonometry", "statistics", "probability"}
	scienceTopics = []string{"chemical", "physics", "biology", "chemistry"}
)

func SubjectForTopic(topic string) string {
	t := strings.ToLower(topic)
	for _, k := range mathTopics {
		if strings.Contains(t, k) {
			return "Mathematics"
		}
	}
	for _, k := range scienceTopics {
		if strings.Contains(t, k) {
			return "Science"
		}
	}
	return "General Studies"
}

func KnowledgeGaps(mastery int) []string {
	switch {
	case mastery < 30:
		return []string{"Basic concepts", "Fundamental formulas", "Simple calculations"}
	case mastery < 60:
		return []string{"Application problems", "Multi-step solutions"}
	case mastery < 85:
		return []string{"Complex problem-solving", "Concept connections"}
	default:
		return []string{"Advanced applications", "Examination techniques"}
	}
}

func PerformanceTrend(qc QuizContext) string {
	switch {
	case qc.ConsecutiveCorrect >= StreakThreshold:
		return "Improving - ready for harder questions"
	case qc.ConsecutiveWrong >= StreakThreshold:
		return "Struggling - needs concept reinforcement"
	case qc.Mastery > 80:
		return "Strong - maintaining high performance"
	case qc.Mastery < 40:
		return "Developing - building foundational skills"
	default:
		return "Steady - consistent learning progress"
	}
}
