package adaptive

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/adaptive-tutor/internal/config"
	"github.com/sirupsen/logrus"
)

// Loader derives fresh contexts from the stored history on every call.
type Loader struct {
	repo Repository
}

func NewLoader(repo Repository) *Loader {
	return &Loader{repo: repo}
}

func (l *Loader) ChatContext(ctx context.Context, sessionID uuid.UUID, topic string) UserContext {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"session_id": sessionID, "topic": topic})

	history, err := l.repo.RecentMessages(ctx, sessionID, HistoryWindow)
	if err != nil {
		log.WithError(err).Warn("Failed to load conversation history, using default context")
		return DefaultContext(sessionID, topic)
	}

	uc, err := l.performance(ctx, sessionID, topic)
	if err != nil {
		log.WithError(err).Warn("Failed to load quiz performance, using default context")
		return DefaultContext(sessionID, topic)
	}
	uc.ConversationHistory = history
	return uc
}

// QuizContext builds the quiz view. current is the level stored on the quiz
// session; when it is unset the level is derived from mastery.
func (l *Loader) QuizContext(ctx context.Context, sessionID uuid.UUID, topic string, current Difficulty) QuizContext {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"session_id": sessionID, "topic": topic})

	uc, err := l.performance(ctx, sessionID, topic)
	if err != nil {
		log.WithError(err).Warn("Failed to load quiz performance, using default context")
		uc = DefaultContext(sessionID, topic)
	}
	if current.IsValid() {
		uc.CurrentDifficulty = current
	}

	qc := QuizContext{UserContext: uc}
	results, err := l.repo.RecentResults(ctx, topic, StreakWindow)
	if err != nil {
		log.WithError(err).Warn("Failed to load recent answers, assuming no streak")
		return qc
	}
	qc.ConsecutiveCorrect, qc.ConsecutiveWrong = Streak(results)
	return qc
}

func (l *Loader) performance(ctx context.Context, sessionID uuid.UUID, topic string) (UserContext, error) {
	correct, total, err := l.repo.RecentQuizTotals(ctx, topic, MasteryWindow)
	if err != nil {
		return UserContext{}, err
	}

	mastery := Percent(correct, total)
	return UserContext{
		SessionID:         sessionID,
		Topic:             topic,
		Subject:           SubjectForTopic(topic),
		Mastery:           mastery,
		Gaps:              KnowledgeGaps(mastery),
		CorrectCount:      correct,
		TotalCount:        total,
		CurrentDifficulty: FromMastery(mastery),
	}, nil
}
