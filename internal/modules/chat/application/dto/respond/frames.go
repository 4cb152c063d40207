package respond

import (
	"time"
)

// Outbound relay frames. Field layout matches what the web clients expect.
const (
	FrameSystem       = "system"
	FrameMessage      = "message"
	FrameSessionEnded = "SESSION_ENDED"
	FrameError        = "error"
)

type SystemFrame struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type MessageFrame struct {
	Type      string    `json:"type"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionEndedFrame struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ErrorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewSystemFrame(content string) SystemFrame {
	return SystemFrame{Type: FrameSystem, Content: content, Timestamp: time.Now()}
}

func NewSessionEndedFrame(message string) SessionEndedFrame {
	return SessionEndedFrame{Type: FrameSessionEnded, Message: message, Timestamp: time.Now()}
}

func NewErrorFrame(message string) ErrorFrame {
	return ErrorFrame{Type: FrameError, Message: message}
}
