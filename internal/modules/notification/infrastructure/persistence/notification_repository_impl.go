package persistence

import (
	notificationEntity "NeuroLink/internal/modules/notification/domain/entity"
	notificationRepository "NeuroLink/internal/modules/notification/domain/repository"

	"gorm.io/gorm"
)

type notificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) notificationRepository.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(notification *notificationEntity.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepositoryImpl) ListByRecipient(role string, name string) ([]notificationEntity.Notification, error) {
	var notifications []notificationEntity.Notification
	err := r.db.
		Where("recipient_role = ? AND recipient_name = ?", role, name).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepositoryImpl) MarkRead(id string) (int64, error) {
	res := r.db.
		Model(&notificationEntity.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
