package repository

import (
	"NeuroLink/internal/modules/notification/domain/entity"
)

type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByRecipient(role string, name string) ([]entity.Notification, error)
	MarkRead(id string) (int64, error)
}
