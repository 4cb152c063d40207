package service

import (
	"errors"
	"fmt"
	"time"

	appointmentRequest "NeuroLink/internal/modules/appointment/application/dto/request"
	appointmentEntity "NeuroLink/internal/modules/appointment/domain/entity"
	appointmentRepository "NeuroLink/internal/modules/appointment/domain/repository"
	notificationService "NeuroLink/internal/modules/notification/application/service"
	"NeuroLink/pkg/util"
	"NeuroLink/pkg/xerr"
	"NeuroLink/pkg/zlog"

	"gorm.io/gorm"
)

// AppointmentService owns the appointment record and its state machine.
// Activate and Complete are the only mutations; both are monotonic and
// Completed is terminal.
type AppointmentService interface {
	Create(req appointmentRequest.CreateAppointmentRequest) (*appointmentEntity.Appointment, error)
	CreateFromAI(userName string) (*appointmentEntity.Appointment, error)
	Get(id string) (*appointmentEntity.Appointment, error)
	List() ([]appointmentEntity.Appointment, error)
	// Activate performs scheduled -> active. Re-activating an active
	// appointment is a no-op; activating a completed one is a terminal-state
	// error. Returns whether this call did the transition.
	Activate(id string) (bool, error)
	// Complete performs scheduled|active -> completed.
	Complete(id string) error
}

type appointmentServiceImpl struct {
	repo     appointmentRepository.AppointmentRepository
	notifier notificationService.NotificationService
}

func NewAppointmentService(repo appointmentRepository.AppointmentRepository, notifier notificationService.NotificationService) AppointmentService {
	return &appointmentServiceImpl{repo: repo, notifier: notifier}
}

func (s *appointmentServiceImpl) Create(req appointmentRequest.CreateAppointmentRequest) (*appointmentEntity.Appointment, error) {
	if req.UserName == "" {
		return nil, xerr.ErrParam
	}

	appointment := &appointmentEntity.Appointment{
		Id:            util.GenerateUUID(),
		UserName:      req.UserName,
		TherapistName: req.TherapistName,
		Status:        appointmentEntity.StatusScheduled,
		CreatedFrom:   appointmentEntity.CreatedFromManual,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.Create(appointment); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	_ = s.notifier.Notify(notificationService.RoleUser, req.UserName,
		"Appointment Scheduled",
		fmt.Sprintf("Your appointment has been scheduled successfully. ID: %s", appointment.Id[:8]))
	_ = s.notifier.Notify(notificationService.RoleTherapist, notificationService.TherapistPool,
		"New Appointment",
		fmt.Sprintf("New appointment from %s", req.UserName))

	return appointment, nil
}

func (s *appointmentServiceImpl) CreateFromAI(userName string) (*appointmentEntity.Appointment, error) {
	if userName == "" {
		return nil, xerr.ErrParam
	}

	appointment := &appointmentEntity.Appointment{
		Id:          util.GenerateUUID(),
		UserName:    userName,
		Status:      appointmentEntity.StatusScheduled,
		CreatedFrom: appointmentEntity.CreatedFromAI,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(appointment); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	_ = s.notifier.Notify(notificationService.RoleUser, userName,
		"Appointment Created",
		"Your appointment has been created by AI assistant. A therapist will join soon.")
	_ = s.notifier.Notify(notificationService.RoleTherapist, notificationService.TherapistPool,
		"New AI Appointment",
		fmt.Sprintf("AI created appointment for %s", userName))

	return appointment, nil
}

func (s *appointmentServiceImpl) Get(id string) (*appointmentEntity.Appointment, error) {
	appointment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.ErrAppointmentNotFound
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return appointment, nil
}

func (s *appointmentServiceImpl) List() ([]appointmentEntity.Appointment, error) {
	appointments, err := s.repo.List()
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return appointments, nil
}

func (s *appointmentServiceImpl) Activate(id string) (bool, error) {
	rows, err := s.repo.UpdateStatusFrom(id,
		[]appointmentEntity.AppointmentStatus{appointmentEntity.StatusScheduled},
		appointmentEntity.StatusActive)
	if err != nil {
		zlog.Error(err.Error())
		return false, xerr.ErrServerError
	}
	if rows == 1 {
		return true, nil
	}

	// Lost the guarded update: either already active (fine), completed
	// (terminal) or gone.
	appointment, err := s.Get(id)
	if err != nil {
		return false, err
	}
	if appointment.Status == appointmentEntity.StatusCompleted {
		return false, xerr.ErrTerminalState
	}
	return false, nil
}

func (s *appointmentServiceImpl) Complete(id string) error {
	rows, err := s.repo.UpdateStatusFrom(id,
		[]appointmentEntity.AppointmentStatus{appointmentEntity.StatusScheduled, appointmentEntity.StatusActive},
		appointmentEntity.StatusCompleted)
	if err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	if rows == 1 {
		return nil
	}

	appointment, err := s.Get(id)
	if err != nil {
		return err
	}
	if appointment.Status == appointmentEntity.StatusCompleted {
		return xerr.ErrTerminalState
	}
	return xerr.ErrServerError
}
