package topic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saulo-duarte/adaptive-tutor/internal/chat"
	"github.com/saulo-duarte/adaptive-tutor/internal/config"
	"github.com/saulo-duarte/adaptive-tutor/internal/content"
	"github.com/saulo-duarte/adaptive-tutor/internal/quiz"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrTopicExists   = errors.New("topic already exists")
)

type Summary struct {
	Topic      string    `json:"topic"`
	Count      int64     `json:"count"`
	FirstAdded time.Time `json:"first_added"`
	LastAdded  time.Time `json:"last_added"`
}

// Removed counts the rows deleted for a topic.
type Removed struct {
	ContentItems int64
	ChatSessions int64
	ChatMessages int64
	QuizSessions int64
	QuizAnswers  int64
}

type Service interface {
	List(ctx context.Context) ([]Summary, error)
	Remove(ctx context.Context, name string) (*Removed, error)
	Rename(ctx context.Context, oldName, newName string) (int64, error)
	Clear(ctx context.Context) error
}

type service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return &service{db: db}
}

func (s *service) List(ctx context.Context) ([]Summary, error) {
	var rows []Summary
	err := s.db.WithContext(ctx).
		Model(&content.Item{}).
		Select("topic, COUNT(*) AS count, MIN(created_at) AS first_added, MAX(created_at) AS last_added").
		Group("topic").
		Order("topic").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return rows, nil
}

func countContent(db *gorm.DB, name string) (int64, error) {
	var n int64
	err := db.Model(&content.Item{}).Where("topic = ?", name).Count(&n).Error
	return n, err
}

// Remove deletes the topic's content and every chat and quiz row that
// belongs to it in one transaction.
func (s *service) Remove(ctx context.Context, name string) (*Removed, error) {
	log := config.WithContext(ctx).WithField("topic", name)
	removed := &Removed{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := countContent(tx, name)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrTopicNotFound
		}

		quizIDs := tx.Model(&quiz.Session{}).Select("id").Where("topic = ?", name)
		res := tx.Where("session_id IN (?)", quizIDs).Delete(&quiz.Answer{})
		if res.Error != nil {
			return res.Error
		}
		removed.QuizAnswers = res.RowsAffected

		chatIDs := tx.Model(&chat.Session{}).Select("id").Where("topic = ?", name)
		if res = tx.Where("session_id IN (?)", chatIDs).Delete(&chat.Message{}); res.Error != nil {
			return res.Error
		}
		removed.ChatMessages = res.RowsAffected

		if res = tx.Where("topic = ?", name).Delete(&quiz.Session{}); res.Error != nil {
			return res.Error
		}
		removed.QuizSessions = res.RowsAffected

		if res = tx.Where("topic = ?", name).Delete(&chat.Session{}); res.Error != nil {
			return res.Error
		}
		removed.ChatSessions = res.RowsAffected

		if res = tx.Where("topic = ?", name).Delete(&content.Item{}); res.Error != nil {
			return res.Error
		}
		removed.ContentItems = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"content_items": removed.ContentItems,
		"chat_sessions": removed.ChatSessions,
		"quiz_sessions": removed.QuizSessions,
	}).Info("Topic removed")
	return removed, nil
}

// Rename moves content and sessions to newName. It refuses when oldName has
// no content or newName already has some. Returns the content items moved.
func (s *service) Rename(ctx context.Context, oldName, newName string) (int64, error) {
	if oldName == newName {
		return 0, ErrTopicExists
	}
	var moved int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := countContent(tx, oldName)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrTopicNotFound
		}
		existing, err := countContent(tx, newName)
		if err != nil {
			return err
		}
		if existing > 0 {
			return ErrTopicExists
		}

		res := tx.Model(&content.Item{}).Where("topic = ?", oldName).UpdateColumn("topic", newName)
		if res.Error != nil {
			return res.Error
		}
		moved = res.RowsAffected

		if err := tx.Model(&chat.Session{}).Where("topic = ?", oldName).UpdateColumn("topic", newName).Error; err != nil {
			return err
		}
		return tx.Model(&quiz.Session{}).Where("topic = ?", oldName).UpdateColumn("topic", newName).Error
	})
	if err != nil {
		return 0, err
	}

	config.WithContext(ctx).WithFields(logrus.Fields{"from": oldName, "to": newName, "content_items": moved}).Info("Topic renamed")
	return moved, nil
}

// Clear deletes every row the tutor owns, children first.
func (s *service) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []interface{}{&quiz.Answer{}, &chat.Message{}, &quiz.Session{}, &chat.Session{}, &content.Item{}} {
			if err := all.Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	config.WithContext(ctx).Warn("All tutor data cleared")
	return nil
}
