package service

import (
	"context"
	"strings"
	"sync"

	appointmentService "NeuroLink/internal/modules/appointment/application/service"
	triageRespond "NeuroLink/internal/modules/triage/application/dto/respond"
	"NeuroLink/internal/modules/triage/domain/conversation"
	"NeuroLink/pkg/zlog"

	"go.uber.org/zap"
)

// Ephemeral conversation states. A session moves IDLE -> BOOKED at most
// once and BOOKED is terminal for the session's lifetime.
const (
	StateIdle   = "IDLE"
	StateBooked = "BOOKED"
)

const (
	WelcomeMessage = "Hello! I'm your AI mental health support assistant. How can I help you today?"

	bookedReply = "Perfect! I've scheduled an appointment for you. A therapist will be available soon."

	alreadyBookedReply = "Your appointment has already been scheduled. You can close this chat and go to your appointments to connect with a therapist."

	generatorFallback = "I understand. If you'd like to speak with a professional therapist, just let me know and I can book an appointment for you."
)

// Explicit booking triggers, matched as lowercase substrings.
var bookingKeywords = []string{
	"book appointment",
	"schedule appointment",
	"need a therapist",
	"see a therapist",
	"talk to therapist",
	"book session",
	"schedule session",
	"need therapist",
	"want therapist",
	"talk to someone",
	"need someone to talk",
	"book a session",
	"make appointment",
}

// triageSession is in-memory only and dies with the connection. Triage
// transcripts are never persisted.
type triageSession struct {
	state   string
	history []conversation.Exchange
}

// TriageService is the self-service conversational channel. Its only
// write access to shared state is appointment creation; it can neither
// observe nor inject relay messages.
type TriageService interface {
	Open(sessionID string)
	// HandleMessage runs one inbound triage message to a reply frame.
	// The returned value is either an AiMessageFrame or an
	// AppointmentBookedFrame, ready to send back on the same socket.
	HandleMessage(ctx context.Context, sessionID string, userName string, content string) interface{}
	Close(sessionID string)
}

type triageServiceImpl struct {
	appointments appointmentService.AppointmentService
	responder    conversation.Responder
	// Number of prior exchanges passed to the generator; bounds request
	// size instead of shipping the full history.
	historyWindow int

	mu       sync.Mutex
	sessions map[string]*triageSession
}

func NewTriageService(appointments appointmentService.AppointmentService, responder conversation.Responder, historyWindow int) TriageService {
	if historyWindow <= 0 {
		historyWindow = 6
	}
	return &triageServiceImpl{
		appointments:  appointments,
		responder:     responder,
		historyWindow: historyWindow,
		sessions:      make(map[string]*triageSession),
	}
}

func (s *triageServiceImpl) Open(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = &triageSession{state: StateIdle}
}

func (s *triageServiceImpl) Close(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func detectBookingRequest(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range bookingKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func (s *triageServiceImpl) HandleMessage(ctx context.Context, sessionID string, userName string, content string) interface{} {
	s.mu.Lock()
	session := s.sessions[sessionID]
	if session == nil {
		session = &triageSession{state: StateIdle}
		s.sessions[sessionID] = session
	}
	state := session.state
	history := append([]conversation.Exchange(nil), session.history...)
	s.mu.Unlock()

	if state == StateBooked {
		return triageRespond.NewAiMessageFrame(alreadyBookedReply)
	}

	if detectBookingRequest(content) {
		if userName == "" {
			userName = "Anonymous"
		}
		appointment, err := s.appointments.CreateFromAI(userName)
		if err != nil {
			zlog.Error(err.Error())
			// Stays IDLE so the user can try again.
			return triageRespond.NewAiMessageFrame("I couldn't create your appointment right now. Please try again in a moment.")
		}

		s.mu.Lock()
		session.state = StateBooked
		s.mu.Unlock()

		zlog.Info("triage session booked appointment",
			zap.String("session_id", sessionID),
			zap.String("appointment_id", appointment.Id))
		return triageRespond.NewAppointmentBookedFrame(bookedReply, appointment.Id)
	}

	reply := s.generateReply(ctx, history, content)

	s.mu.Lock()
	session.history = append(session.history,
		conversation.Exchange{Role: conversation.RoleUser, Content: content},
		conversation.Exchange{Role: conversation.RoleAssistant, Content: reply})
	if limit := 2 * s.historyWindow; len(session.history) > limit {
		session.history = session.history[len(session.history)-limit:]
	}
	s.mu.Unlock()

	return triageRespond.NewAiMessageFrame(reply)
}

func (s *triageServiceImpl) generateReply(ctx context.Context, history []conversation.Exchange, message string) string {
	if s.responder != nil {
		reply, err := s.responder.Reply(ctx, history, message)
		if err == nil && strings.TrimSpace(reply) != "" {
			return reply
		}
		if err != nil {
			zlog.Warn("triage responder unavailable, using fallback reply",
				zap.Error(err))
		}
	}
	return fallbackReply(message)
}

// fallbackReply is the deterministic responder used when no generator is
// configured or the external call fails.
func fallbackReply(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "hello"), strings.Contains(lower, "hi"):
		return "Hello! I'm here to help you with mental health support. How can I assist you today?"
	case strings.Contains(lower, "how are you"):
		return "I'm doing well, thank you for asking! How are you feeling today?"
	case strings.Contains(lower, "sad"), strings.Contains(lower, "depressed"):
		return "I'm sorry to hear you're feeling this way. Would you like to book an appointment with one of our therapists?"
	case strings.Contains(lower, "anxious"), strings.Contains(lower, "anxiety"):
		return "Anxiety can be challenging. Our therapists can help you develop coping strategies. Would you like to schedule a session?"
	case strings.Contains(lower, "help"):
		return "I can help you book an appointment with a therapist, answer general questions about mental health, or just listen. What would you like to do?"
	default:
		return generatorFallback
	}
}
