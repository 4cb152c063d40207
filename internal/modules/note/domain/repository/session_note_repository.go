package repository

import (
	"NeuroLink/internal/modules/note/domain/entity"
)

type SessionNoteRepository interface {
	Create(note *entity.SessionNote) error
	GetByAppointmentID(appointmentID string) (*entity.SessionNote, error)
	Update(note *entity.SessionNote) error
}
