package service

import (
	"errors"
	"time"

	appointmentService "NeuroLink/internal/modules/appointment/application/service"
	noteRequest "NeuroLink/internal/modules/note/application/dto/request"
	noteEntity "NeuroLink/internal/modules/note/domain/entity"
	noteRepository "NeuroLink/internal/modules/note/domain/repository"
	"NeuroLink/pkg/util"
	"NeuroLink/pkg/xerr"
	"NeuroLink/pkg/zlog"

	"gorm.io/gorm"
)

type SessionNoteService interface {
	// Upsert creates the appointment's note sheet or overwrites it.
	Upsert(appointmentID string, req noteRequest.UpsertSessionNoteRequest) (*noteEntity.SessionNote, error)
	Get(appointmentID string) (*noteEntity.SessionNote, error)
	Update(appointmentID string, req noteRequest.UpdateSessionNoteRequest) (*noteEntity.SessionNote, error)
}

type sessionNoteServiceImpl struct {
	repo         noteRepository.SessionNoteRepository
	appointments appointmentService.AppointmentService
}

func NewSessionNoteService(repo noteRepository.SessionNoteRepository, appointments appointmentService.AppointmentService) SessionNoteService {
	return &sessionNoteServiceImpl{repo: repo, appointments: appointments}
}

func (s *sessionNoteServiceImpl) Upsert(appointmentID string, req noteRequest.UpsertSessionNoteRequest) (*noteEntity.SessionNote, error) {
	if _, err := s.appointments.Get(appointmentID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByAppointmentID(appointmentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	if existing != nil {
		existing.Notes = req.Notes
		existing.TherapistName = req.TherapistName
		existing.UpdatedAt = time.Now()
		if err := s.repo.Update(existing); err != nil {
			zlog.Error(err.Error())
			return nil, xerr.ErrServerError
		}
		return existing, nil
	}

	now := time.Now()
	note := &noteEntity.SessionNote{
		Id:            util.GenerateUUID(),
		AppointmentId: appointmentID,
		TherapistName: req.TherapistName,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(note); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return note, nil
}

func (s *sessionNoteServiceImpl) Get(appointmentID string) (*noteEntity.SessionNote, error) {
	note, err := s.repo.GetByAppointmentID(appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.New(xerr.NotFound, "Session notes not found")
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return note, nil
}

func (s *sessionNoteServiceImpl) Update(appointmentID string, req noteRequest.UpdateSessionNoteRequest) (*noteEntity.SessionNote, error) {
	note, err := s.Get(appointmentID)
	if err != nil {
		return nil, err
	}
	note.Notes = req.Notes
	note.UpdatedAt = time.Now()
	if err := s.repo.Update(note); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return note, nil
}
