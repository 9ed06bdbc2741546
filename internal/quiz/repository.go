package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("quiz session not found")

type Repository interface {
	Create(ctx context.Context, s *Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*Session, error)
	UpdateDifficulty(ctx context.Context, id uuid.UUID, d adaptive.Difficulty) error
	RecordAnswer(ctx context.Context, a *Answer) (*Session, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Session) error {
	if s.Difficulty == "" {
		s.Difficulty = adaptive.Medium
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	return findSession(r.db.WithContext(ctx), id)
}

func findSession(db *gorm.DB, id uuid.UUID) (*Session, error) {
	var s Session
	if err := db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) UpdateDifficulty(ctx context.Context, id uuid.UUID, d adaptive.Difficulty) error {
	res := r.db.WithContext(ctx).Model(&Session{}).Where("id = ?", id).UpdateColumn("difficulty", d)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// RecordAnswer inserts the answer and bumps the session counters with a
// single relative UPDATE, all in one transaction. The answer inherits the
// session's current difficulty. The returned session holds the new totals.
func (r *repository) RecordAnswer(ctx context.Context, a *Answer) (*Session, error) {
	var updated *Session
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := findSession(tx, a.SessionID)
		if err != nil {
			return err
		}
		a.Difficulty = s.Difficulty
		if err := tx.Create(a).Error; err != nil {
			return err
		}

		correct := 0
		if a.IsCorrect {
			correct = 1
		}
		if err := tx.Model(&Session{}).Where("id = ?", a.SessionID).UpdateColumns(map[string]interface{}{
			"total_questions": gorm.Expr("total_questions + ?", 1),
			"correct_answers": gorm.Expr("correct_answers + ?", correct),
		}).Error; err != nil {
			return err
		}

		updated, err = findSession(tx, a.SessionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
