package respond

import (
	"time"
)

const (
	FrameAiMessage         = "ai_message"
	FrameAppointmentBooked = "APPOINTMENT_BOOKED"
)

type AiMessageFrame struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type AppointmentBookedFrame struct {
	Type          string    `json:"type"`
	Content       string    `json:"content"`
	AppointmentId string    `json:"appointment_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewAiMessageFrame(content string) AiMessageFrame {
	return AiMessageFrame{Type: FrameAiMessage, Content: content, Timestamp: time.Now()}
}

func NewAppointmentBookedFrame(content string, appointmentID string) AppointmentBookedFrame {
	return AppointmentBookedFrame{
		Type:          FrameAppointmentBooked,
		Content:       content,
		AppointmentId: appointmentID,
		Timestamp:     time.Now(),
	}
}
