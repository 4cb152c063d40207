package entity

import (
	"time"
)

// SessionNote is the therapist's note sheet, one per appointment.
type SessionNote struct {
	Id            string    `gorm:"column:id;primaryKey;type:char(36)" json:"id"`
	AppointmentId string    `gorm:"column:appointment_id;type:char(36);not null;uniqueIndex" json:"appointment_id"`
	TherapistName string    `gorm:"column:therapist_name;type:varchar(64);not null" json:"therapist_name"`
	Notes         string    `gorm:"column:notes;type:text;not null" json:"notes"`
	CreatedAt     time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (SessionNote) TableName() string {
	return "session_notes"
}
