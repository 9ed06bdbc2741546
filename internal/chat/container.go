package chat

import (
	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/saulo-duarte/adaptive-tutor/internal/llm"
	"gorm.io/gorm"
)

type ChatContainer struct {
	Handler *Handler
}

func NewChatContainer(db *gorm.DB, retriever Retriever, loader *adaptive.Loader, composer *adaptive.Composer, generator llm.Generator, params llm.Request) *ChatContainer {
	repo := NewRepository(db)
	service := NewService(repo, retriever, loader, composer, generator, params)
	handler := NewHandler(service)

	return &ChatContainer{
		Handler: handler,
	}
}
