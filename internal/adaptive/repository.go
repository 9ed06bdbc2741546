package adaptive

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository reads the performance history behind a derived context.
type Repository interface {
	RecentMessages(ctx context.Context, sessionID uuid.UUID, limit int) ([]Turn, error)
	RecentQuizTotals(ctx context.Context, topic string, sessions int) (correct, total int, err error)
	RecentResults(ctx context.Context, topic string, limit int) ([]bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// RecentMessages returns the newest messages in conversation order.
func (r *repository) RecentMessages(ctx context.Context, sessionID uuid.UUID, limit int) ([]Turn, error) {
	var rows []struct {
		Role      string
		Content   string
		CreatedAt time.Time
	}
	if err := r.db.WithContext(ctx).
		Table("chat_messages").
		Select("role, content, created_at").
		Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	turns := make([]Turn, len(rows))
	for i, row := range rows {
		turns[len(rows)-1-i] = Turn{Role: row.Role, Content: row.Content, CreatedAt: row.CreatedAt}
	}
	return turns, nil
}

func (r *repository) RecentQuizTotals(ctx context.Context, topic string, sessions int) (int, int, error) {
	var rows []struct {
		CorrectAnswers int
		TotalQuestions int
	}
	if err := r.db.WithContext(ctx).
		Table("quiz_sessions").
		Select("correct_answers, total_questions").
		Where("topic = ?", topic).
		Order("created_at DESC").
		Limit(sessions).
		Scan(&rows).Error; err != nil {
		return 0, 0, err
	}

	var correct, total int
	for _, row := range rows {
		correct += row.CorrectAnswers
		total += row.TotalQuestions
	}
	return correct, total, nil
}

// RecentResults returns answer correctness for the topic, newest first.
func (r *repository) RecentResults(ctx context.Context, topic string, limit int) ([]bool, error) {
	var rows []struct {
		IsCorrect bool
	}
	if err := r.db.WithContext(ctx).
		Table("quiz_answers AS qa").
		Select("qa.is_correct").
		Joins("JOIN quiz_sessions qs ON qa.session_id = qs.id").
		Where("qs.topic = ?", topic).
		Order("qa.created_at DESC, qa.id DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]bool, len(rows))
	for i, row := range rows {
		results[i] = row.IsCorrect
	}
	return results, nil
}
