package entity

import (
	"time"
)

// Notification is an append-only record; the only mutation ever applied
// is flipping the read flag.
type Notification struct {
	Id            string    `gorm:"column:id;primaryKey;type:char(36)" json:"id"`
	RecipientRole string    `gorm:"column:recipient_role;type:varchar(16);not null;index:idx_recipient" json:"recipient_role"`
	RecipientName string    `gorm:"column:recipient_name;type:varchar(64);not null;index:idx_recipient" json:"recipient_name"`
	Title         string    `gorm:"column:title;type:varchar(128);not null" json:"title"`
	Message       string    `gorm:"column:message;type:text;not null" json:"message"`
	IsRead        bool      `gorm:"column:is_read;not null;default:false" json:"is_read"`
	CreatedAt     time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
