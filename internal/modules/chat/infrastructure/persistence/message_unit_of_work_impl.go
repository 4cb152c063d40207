package persistence

import (
	chatRepository "NeuroLink/internal/modules/chat/domain/repository"

	"gorm.io/gorm"
)

type messageUnitOfWorkImpl struct {
	db *gorm.DB
}

func NewMessageUnitOfWork(db *gorm.DB) chatRepository.MessageUnitOfWork {
	return &messageUnitOfWorkImpl{db: db}
}

func (u *messageUnitOfWorkImpl) Transaction(fn func(messageRepo chatRepository.MessageRepository, analysisRepo chatRepository.EmotionAnalysisRepository) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		messageRepo := NewMessageRepository(tx)
		analysisRepo := NewEmotionAnalysisRepository(tx)
		return fn(messageRepo, analysisRepo)
	})
}
