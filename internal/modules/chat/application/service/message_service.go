package service

import (
	"errors"

	chatRespond "NeuroLink/internal/modules/chat/application/dto/respond"
	chatRepository "NeuroLink/internal/modules/chat/domain/repository"
	"NeuroLink/pkg/xerr"
	"NeuroLink/pkg/zlog"

	"gorm.io/gorm"
)

type MessageService interface {
	ListByAppointment(appointmentID string) ([]chatRespond.MessageItem, error)
}

type messageServiceImpl struct {
	messageRepo  chatRepository.MessageRepository
	analysisRepo chatRepository.EmotionAnalysisRepository
}

func NewMessageService(messageRepo chatRepository.MessageRepository, analysisRepo chatRepository.EmotionAnalysisRepository) MessageService {
	return &messageServiceImpl{messageRepo: messageRepo, analysisRepo: analysisRepo}
}

func (s *messageServiceImpl) ListByAppointment(appointmentID string) ([]chatRespond.MessageItem, error) {
	if appointmentID == "" {
		return nil, xerr.ErrParam
	}

	messages, err := s.messageRepo.ListByAppointment(appointmentID)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	items := make([]chatRespond.MessageItem, 0, len(messages))
	for _, m := range messages {
		item := chatRespond.MessageItem{
			Id:            m.Id,
			AppointmentId: m.AppointmentId,
			Sender:        m.Sender.String(),
			Content:       m.Content,
			Timestamp:     m.CreatedAt,
		}
		analysis, err := s.analysisRepo.GetByMessageID(m.Id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			zlog.Error(err.Error())
			return nil, xerr.ErrServerError
		}
		if analysis != nil {
			item.Emotion = &chatRespond.EmotionItem{
				EmotionLabel: analysis.EmotionLabel,
				Confidence:   analysis.Confidence,
				RiskLevel:    analysis.RiskLevel,
				RiskScore:    analysis.RiskScore,
				ModelVersion: analysis.ModelVersion,
			}
		}
		items = append(items, item)
	}
	return items, nil
}
