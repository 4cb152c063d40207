package entity

import (
	"time"
)

// Message is created only by the relay channel and never mutated after
// creation. Every persisted message owns exactly one EmotionAnalysis,
// written in the same transaction.
type Message struct {
	Id            string    `gorm:"column:id;primaryKey;type:char(36)" json:"id"`
	AppointmentId string    `gorm:"column:appointment_id;type:char(36);not null;index" json:"appointment_id"`
	Sender        Role      `gorm:"column:sender;type:varchar(16);not null" json:"sender"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;index" json:"timestamp"`
}

func (Message) TableName() string {
	return "messages"
}

// EmotionAnalysis is immutable once written.
type EmotionAnalysis struct {
	Id           string    `gorm:"column:id;primaryKey;type:char(36)" json:"id"`
	MessageId    string    `gorm:"column:message_id;type:char(36);not null;uniqueIndex" json:"message_id"`
	EmotionLabel string    `gorm:"column:emotion_label;type:varchar(16);not null" json:"emotion_label"`
	Confidence   float64   `gorm:"column:confidence;not null" json:"confidence"`
	RiskLevel    string    `gorm:"column:risk_level;type:varchar(8);not null;index" json:"risk_level"`
	RiskScore    float64   `gorm:"column:risk_score;not null" json:"risk_score"`
	ModelVersion string    `gorm:"column:model_version;type:varchar(32);not null" json:"model_version"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"analyzed_at"`
}

func (EmotionAnalysis) TableName() string {
	return "emotion_analyses"
}
