package quiz

import (
	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/saulo-duarte/adaptive-tutor/internal/aiquiz"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, retriever Retriever, loader *adaptive.Loader, questions aiquiz.Service) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, retriever, loader, questions)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
	}
}
