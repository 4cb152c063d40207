package service

import (
	"errors"
	"time"

	notificationEntity "NeuroLink/internal/modules/notification/domain/entity"
	notificationRepository "NeuroLink/internal/modules/notification/domain/repository"
	"NeuroLink/pkg/util"
	"NeuroLink/pkg/xerr"
	"NeuroLink/pkg/zlog"

	"gorm.io/gorm"
)

// Recipient roles for Notify. "All Therapists" as the recipient name
// addresses the therapist pool rather than an individual.
const (
	RoleUser      = "user"
	RoleTherapist = "therapist"

	TherapistPool = "All Therapists"
)

type NotificationService interface {
	Notify(role string, name string, title string, message string) error
	ListForRecipient(role string, name string) ([]notificationEntity.Notification, error)
	MarkRead(id string) error
}

type notificationServiceImpl struct {
	repo notificationRepository.NotificationRepository
}

func NewNotificationService(repo notificationRepository.NotificationRepository) NotificationService {
	return &notificationServiceImpl{repo: repo}
}

func (s *notificationServiceImpl) Notify(role string, name string, title string, message string) error {
	if role == "" || name == "" || title == "" {
		return xerr.ErrParam
	}
	notification := &notificationEntity.Notification{
		Id:            util.GenerateUUID(),
		RecipientRole: role,
		RecipientName: name,
		Title:         title,
		Message:       message,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.Create(notification); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	return nil
}

func (s *notificationServiceImpl) ListForRecipient(role string, name string) ([]notificationEntity.Notification, error) {
	if role == "" || name == "" {
		return nil, xerr.ErrParam
	}
	notifications, err := s.repo.ListByRecipient(role, name)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return notifications, nil
}

func (s *notificationServiceImpl) MarkRead(id string) error {
	rows, err := s.repo.MarkRead(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerr.New(xerr.NotFound, "Notification not found")
		}
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	if rows == 0 {
		return xerr.New(xerr.NotFound, "Notification not found")
	}
	return nil
}
