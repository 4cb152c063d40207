package repository

import (
	"NeuroLink/internal/modules/chat/domain/entity"
)

type MessageRepository interface {
	Create(message *entity.Message) error
	ListByAppointment(appointmentID string) ([]entity.Message, error)
}

type EmotionAnalysisRepository interface {
	Create(analysis *entity.EmotionAnalysis) error
	GetByMessageID(messageID string) (*entity.EmotionAnalysis, error)
}

// MessageUnitOfWork runs fn with both repositories bound to one
// transaction, so a message and its analysis commit or roll back together.
type MessageUnitOfWork interface {
	Transaction(fn func(messageRepo MessageRepository, analysisRepo EmotionAnalysisRepository) error) error
}
