package topic

import (
	"context"
	"testing"

	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/saulo-duarte/adaptive-tutor/internal/chat"
	"github.com/saulo-duarte/adaptive-tutor/internal/content"
	"github.com/saulo-duarte/adaptive-tutor/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&content.Item{}, &chat.Session{}, &chat.Message{}, &quiz.Session{}, &quiz.Answer{}))
	return db
}

func seed(t *testing.T, db *gorm.DB, topic string) {
	t.Helper()
	require.NoError(t, db.Create(&content.Item{Topic: topic, Type: content.TypeExplanation, Difficulty: adaptive.Medium, Content: "c"}).Error)

	cs := &chat.Session{Topic: topic}
	require.NoError(t, db.Create(cs).Error)
	require.NoError(t, db.Create(&chat.Message{SessionID: cs.ID, Role: chat.RoleUser, Content: "hi"}).Error)

	qs := &quiz.Session{Topic: topic, Difficulty: adaptive.Easy}
	require.NoError(t, db.Create(qs).Error)
	require.NoError(t, db.Create(&quiz.Answer{SessionID: qs.ID, Question: "q", UserAnswer: "A", CorrectAnswer: "A", IsCorrect: true, Difficulty: adaptive.Easy}).Error)
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestRemove_Cascades(t *testing.T) {
	db := setupDB(t)
	seed(t, db, "Polynomials")
	seed(t, db, "Probability")
	svc := NewService(db)

	removed, err := svc.Remove(context.Background(), "Polynomials")
	require.NoError(t, err)
	assert.Equal(t, &Removed{ContentItems: 1, ChatSessions: 1, ChatMessages: 1, QuizSessions: 1, QuizAnswers: 1}, removed)

	assert.EqualValues(t, 1, count(t, db, &content.Item{}))
	assert.EqualValues(t, 1, count(t, db, &chat.Session{}))
	assert.EqualValues(t, 1, count(t, db, &chat.Message{}))
	assert.EqualValues(t, 1, count(t, db, &quiz.Session{}))
	assert.EqualValues(t, 1, count(t, db, &quiz.Answer{}))
}

func TestRemove_UnknownTopic(t *testing.T) {
	svc := NewService(setupDB(t))
	_, err := svc.Remove(context.Background(), "Nope")
	assert.ErrorIs(t, err, ErrTopicNotFound)
}

func TestRename(t *testing.T) {
	db := setupDB(t)
	seed(t, db, "Polynomials")
	seed(t, db, "Probability")
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.Rename(ctx, "Missing", "Anything")
	assert.ErrorIs(t, err, ErrTopicNotFound)

	_, err = svc.Rename(ctx, "Polynomials", "Probability")
	assert.ErrorIs(t, err, ErrTopicExists)

	moved, err := svc.Rename(ctx, "Polynomials", "Algebra")
	require.NoError(t, err)
	assert.EqualValues(t, 1, moved)

	var n int64
	require.NoError(t, db.Model(&chat.Session{}).Where("topic = ?", "Algebra").Count(&n).Error)
	assert.EqualValues(t, 1, n)
	require.NoError(t, db.Model(&quiz.Session{}).Where("topic = ?", "Algebra").Count(&n).Error)
	assert.EqualValues(t, 1, n)
	require.NoError(t, db.Model(&quiz.Session{}).Where("topic = ?", "Polynomials").Count(&n).Error)
	assert.Zero(t, n)
}

func TestClear(t *testing.T) {
	db := setupDB(t)
	seed(t, db, "Polynomials")
	svc := NewService(db)

	require.NoError(t, svc.Clear(context.Background()))

	for _, model := range []interface{}{&content.Item{}, &chat.Session{}, &chat.Message{}, &quiz.Session{}, &quiz.Answer{}} {
		assert.Zero(t, count(t, db, model))
	}
}
