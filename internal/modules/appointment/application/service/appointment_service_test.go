package service

import (
	"fmt"
	"testing"

	appointmentRequest "NeuroLink/internal/modules/appointment/application/dto/request"
	appointmentEntity "NeuroLink/internal/modules/appointment/domain/entity"
	appointmentPersistence "NeuroLink/internal/modules/appointment/infrastructure/persistence"
	notificationService "NeuroLink/internal/modules/notification/application/service"
	notificationEntity "NeuroLink/internal/modules/notification/domain/entity"
	notificationPersistence "NeuroLink/internal/modules/notification/infrastructure/persistence"
	"NeuroLink/pkg/xerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&appointmentEntity.Appointment{},
		&notificationEntity.Notification{},
	))
	return db
}

func newTestService(t *testing.T) (AppointmentService, *gorm.DB) {
	db := newTestDB(t)
	notifier := notificationService.NewNotificationService(notificationPersistence.NewNotificationRepository(db))
	return NewAppointmentService(appointmentPersistence.NewAppointmentRepository(db), notifier), db
}

func TestCreateManualAppointment(t *testing.T) {
	svc, db := newTestService(t)

	appointment, err := svc.Create(appointmentRequest.CreateAppointmentRequest{UserName: "alice"})
	require.NoError(t, err)
	assert.Equal(t, appointmentEntity.StatusScheduled, appointment.Status)
	assert.Equal(t, appointmentEntity.CreatedFromManual, appointment.CreatedFrom)
	assert.NotEmpty(t, appointment.Id)

	var notifications []notificationEntity.Notification
	require.NoError(t, db.Find(&notifications).Error)
	assert.Len(t, notifications, 2)
}

func TestCreateFromAI(t *testing.T) {
	svc, db := newTestService(t)

	appointment, err := svc.CreateFromAI("bob")
	require.NoError(t, err)
	assert.Equal(t, appointmentEntity.StatusScheduled, appointment.Status)
	assert.Equal(t, appointmentEntity.CreatedFromAI, appointment.CreatedFrom)
	assert.Empty(t, appointment.TherapistName)

	var count int64
	require.NoError(t, db.Model(&notificationEntity.Notification{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestGetUnknownAppointment(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, xerr.ErrAppointmentNotFound)
}

func TestActivateIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	appointment, err := svc.CreateFromAI("alice")
	require.NoError(t, err)

	activated, err := svc.Activate(appointment.Id)
	require.NoError(t, err)
	assert.True(t, activated)

	// Second activation is a no-op transition.
	activated, err = svc.Activate(appointment.Id)
	require.NoError(t, err)
	assert.False(t, activated)

	got, err := svc.Get(appointment.Id)
	require.NoError(t, err)
	assert.Equal(t, appointmentEntity.StatusActive, got.Status)
}

func TestCompleteFromScheduledAndActive(t *testing.T) {
	svc, _ := newTestService(t)

	// scheduled -> completed
	a, err := svc.CreateFromAI("alice")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(a.Id))

	// scheduled -> active -> completed
	b, err := svc.CreateFromAI("bob")
	require.NoError(t, err)
	_, err = svc.Activate(b.Id)
	require.NoError(t, err)
	require.NoError(t, svc.Complete(b.Id))

	for _, id := range []string{a.Id, b.Id} {
		got, err := svc.Get(id)
		require.NoError(t, err)
		assert.Equal(t, appointmentEntity.StatusCompleted, got.Status)
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	svc, _ := newTestService(t)
	appointment, err := svc.CreateFromAI("alice")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(appointment.Id))

	_, err = svc.Activate(appointment.Id)
	assert.ErrorIs(t, err, xerr.ErrTerminalState)

	err = svc.Complete(appointment.Id)
	assert.ErrorIs(t, err, xerr.ErrTerminalState)

	got, err := svc.Get(appointment.Id)
	require.NoError(t, err)
	assert.Equal(t, appointmentEntity.StatusCompleted, got.Status)
}
