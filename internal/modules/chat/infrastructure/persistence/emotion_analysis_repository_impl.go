package persistence

import (
	chatEntity "NeuroLink/internal/modules/chat/domain/entity"
	chatRepository "NeuroLink/internal/modules/chat/domain/repository"

	"gorm.io/gorm"
)

type emotionAnalysisRepositoryImpl struct {
	db *gorm.DB
}

func NewEmotionAnalysisRepository(db *gorm.DB) chatRepository.EmotionAnalysisRepository {
	return &emotionAnalysisRepositoryImpl{db: db}
}

func (r *emotionAnalysisRepositoryImpl) Create(analysis *chatEntity.EmotionAnalysis) error {
	return r.db.Create(analysis).Error
}

func (r *emotionAnalysisRepositoryImpl) GetByMessageID(messageID string) (*chatEntity.EmotionAnalysis, error) {
	var analysis chatEntity.EmotionAnalysis
	if err := r.db.Where("message_id = ?", messageID).First(&analysis).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}
