package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	appointmentService "NeuroLink/internal/modules/appointment/application/service"
	appointmentEntity "NeuroLink/internal/modules/appointment/domain/entity"
	appointmentPersistence "NeuroLink/internal/modules/appointment/infrastructure/persistence"
	notificationService "NeuroLink/internal/modules/notification/application/service"
	notificationEntity "NeuroLink/internal/modules/notification/domain/entity"
	notificationPersistence "NeuroLink/internal/modules/notification/infrastructure/persistence"
	triageRespond "NeuroLink/internal/modules/triage/application/dto/respond"
	"NeuroLink/internal/modules/triage/domain/conversation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type scriptedResponder struct {
	reply       string
	err         error
	calls       int
	lastHistory []conversation.Exchange
}

func (r *scriptedResponder) Reply(_ context.Context, history []conversation.Exchange, _ string) (string, error) {
	r.calls++
	r.lastHistory = append([]conversation.Exchange(nil), history...)
	return r.reply, r.err
}

type triageFixture struct {
	db           *gorm.DB
	appointments appointmentService.AppointmentService
}

func newTriageFixture(t *testing.T) *triageFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&appointmentEntity.Appointment{},
		&notificationEntity.Notification{},
	))
	notifier := notificationService.NewNotificationService(notificationPersistence.NewNotificationRepository(db))
	appointments := appointmentService.NewAppointmentService(appointmentPersistence.NewAppointmentRepository(db), notifier)
	return &triageFixture{db: db, appointments: appointments}
}

func (f *triageFixture) appointmentCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&appointmentEntity.Appointment{}).Count(&count).Error)
	return count
}

func TestBookingTriggerCreatesOneAppointmentAndTwoNotifications(t *testing.T) {
	f := newTriageFixture(t)
	svc := NewTriageService(f.appointments, nil, 6)
	svc.Open("s1")

	reply := svc.HandleMessage(context.Background(), "s1", "alice", "I need a therapist")

	booked, ok := reply.(triageRespond.AppointmentBookedFrame)
	require.True(t, ok)
	assert.Equal(t, triageRespond.FrameAppointmentBooked, booked.Type)
	assert.NotEmpty(t, booked.AppointmentId)

	assert.EqualValues(t, 1, f.appointmentCount(t))

	var appointment appointmentEntity.Appointment
	require.NoError(t, f.db.First(&appointment).Error)
	assert.Equal(t, appointmentEntity.CreatedFromAI, appointment.CreatedFrom)
	assert.Equal(t, appointmentEntity.StatusScheduled, appointment.Status)
	assert.Equal(t, "alice", appointment.UserName)

	var notificationCount int64
	require.NoError(t, f.db.Model(&notificationEntity.Notification{}).Count(&notificationCount).Error)
	assert.EqualValues(t, 2, notificationCount)
}

func TestBookedStateIsTerminalForTheSession(t *testing.T) {
	f := newTriageFixture(t)
	svc := NewTriageService(f.appointments, nil, 6)
	svc.Open("s1")

	_ = svc.HandleMessage(context.Background(), "s1", "alice", "please book appointment")

	// A second trigger phrase must not book again.
	reply := svc.HandleMessage(context.Background(), "s1", "alice", "book appointment now")
	frame, ok := reply.(triageRespond.AiMessageFrame)
	require.True(t, ok)
	assert.Contains(t, frame.Content, "already been scheduled")

	assert.EqualValues(t, 1, f.appointmentCount(t))
}

func TestBookingKeywordsMatchAsSubstrings(t *testing.T) {
	f := newTriageFixture(t)
	svc := NewTriageService(f.appointments, nil, 6)

	triggers := []string{
		"I really NEED A THERAPIST right now",
		"can you schedule session for me",
		"i just need someone to talk to",
	}
	for i, msg := range triggers {
		sessionID := fmt.Sprintf("s%d", i)
		svc.Open(sessionID)
		reply := svc.HandleMessage(context.Background(), sessionID, "alice", msg)
		_, ok := reply.(triageRespond.AppointmentBookedFrame)
		assert.True(t, ok, "expected booking for %q", msg)
	}
	assert.EqualValues(t, len(triggers), f.appointmentCount(t))
}

func TestGeneratorReplyIsUsedWhenAvailable(t *testing.T) {
	f := newTriageFixture(t)
	responder := &scriptedResponder{reply: "that sounds difficult, tell me more"}
	svc := NewTriageService(f.appointments, responder, 6)
	svc.Open("s1")

	reply := svc.HandleMessage(context.Background(), "s1", "alice", "I had a rough week")
	frame, ok := reply.(triageRespond.AiMessageFrame)
	require.True(t, ok)
	assert.Equal(t, "that sounds difficult, tell me more", frame.Content)
	assert.Equal(t, 1, responder.calls)
	assert.Zero(t, f.appointmentCount(t))
}

func TestGeneratorFailureFallsBackAndKeepsSessionUsable(t *testing.T) {
	f := newTriageFixture(t)
	responder := &scriptedResponder{err: errors.New("upstream timeout")}
	svc := NewTriageService(f.appointments, responder, 6)
	svc.Open("s1")

	reply := svc.HandleMessage(context.Background(), "s1", "alice", "hello there")
	frame, ok := reply.(triageRespond.AiMessageFrame)
	require.True(t, ok)
	assert.NotEmpty(t, frame.Content)

	// Booking still works after a generator failure.
	booked := svc.HandleMessage(context.Background(), "s1", "alice", "book a session")
	_, ok = booked.(triageRespond.AppointmentBookedFrame)
	assert.True(t, ok)
}

func TestNoGeneratorUsesDeterministicFallback(t *testing.T) {
	f := newTriageFixture(t)
	svc := NewTriageService(f.appointments, nil, 6)
	svc.Open("s1")

	reply := svc.HandleMessage(context.Background(), "s1", "alice", "I feel anxious lately")
	frame, ok := reply.(triageRespond.AiMessageFrame)
	require.True(t, ok)
	assert.Contains(t, frame.Content, "Anxiety can be challenging")
}

func TestHistoryWindowIsBounded(t *testing.T) {
	f := newTriageFixture(t)
	responder := &scriptedResponder{reply: "ok"}
	window := 2
	svc := NewTriageService(f.appointments, responder, window)
	svc.Open("s1")

	for i := 0; i < 10; i++ {
		_ = svc.HandleMessage(context.Background(), "s1", "alice", fmt.Sprintf("turn %d", i))
	}

	// The generator only ever sees the last `window` exchanges
	// (user+assistant pairs).
	assert.LessOrEqual(t, len(responder.lastHistory), 2*window)
}

func TestCloseDiscardsSessionState(t *testing.T) {
	f := newTriageFixture(t)
	svc := NewTriageService(f.appointments, nil, 6)
	svc.Open("s1")
	_ = svc.HandleMessage(context.Background(), "s1", "alice", "book appointment")
	svc.Close("s1")

	// A fresh session under the same id starts IDLE again.
	svc.Open("s1")
	reply := svc.HandleMessage(context.Background(), "s1", "alice", "book appointment")
	_, ok := reply.(triageRespond.AppointmentBookedFrame)
	assert.True(t, ok)
	assert.EqualValues(t, 2, f.appointmentCount(t))
}

func TestAnonymousUserNameDefault(t *testing.T) {
	f := newTriageFixture(t)
	svc := NewTriageService(f.appointments, nil, 6)
	svc.Open("s1")

	_ = svc.HandleMessage(context.Background(), "s1", "", "make appointment")

	var appointment appointmentEntity.Appointment
	require.NoError(t, f.db.First(&appointment).Error)
	assert.Equal(t, "Anonymous", appointment.UserName)
}
