package respond

import (
	"time"
)

// MessageItem is the REST view of a persisted message with its analysis.
type MessageItem struct {
	Id            string       `json:"id"`
	AppointmentId string       `json:"appointment_id"`
	Sender        string       `json:"sender"`
	Content       string       `json:"content"`
	Timestamp     time.Time    `json:"timestamp"`
	Emotion       *EmotionItem `json:"emotion,omitempty"`
}

type EmotionItem struct {
	EmotionLabel string  `json:"emotion_label"`
	Confidence   float64 `json:"confidence"`
	RiskLevel    string  `json:"risk_level"`
	RiskScore    float64 `json:"risk_score"`
	ModelVersion string  `json:"model_version"`
}
