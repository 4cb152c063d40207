package entity

import (
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment.
// Transitions are monotonic: scheduled -> active -> completed.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusActive    AppointmentStatus = "active"
	StatusCompleted AppointmentStatus = "completed"
)

// Origin records which channel created the appointment.
const (
	CreatedFromAI     = "ai"
	CreatedFromManual = "manual"
)

type Appointment struct {
	Id            string            `gorm:"column:id;primaryKey;type:char(36)" json:"id"`
	UserName      string            `gorm:"column:user_name;type:varchar(64);not null;index" json:"user_name"`
	TherapistName string            `gorm:"column:therapist_name;type:varchar(64)" json:"therapist_name,omitempty"`
	Status        AppointmentStatus `gorm:"column:status;type:varchar(16);not null;default:'scheduled';index" json:"status"`
	CreatedFrom   string            `gorm:"column:created_from;type:varchar(16);not null" json:"created_from"`
	CreatedAt     time.Time         `gorm:"column:created_at;not null" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}
