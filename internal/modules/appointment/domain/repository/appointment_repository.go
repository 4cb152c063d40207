package repository

import (
	"NeuroLink/internal/modules/appointment/domain/entity"
)

type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	List() ([]entity.Appointment, error)
	// UpdateStatusFrom sets the status only when the current status is one of
	// from; returns the number of rows changed so callers can detect a lost
	// race against a concurrent transition.
	UpdateStatusFrom(id string, from []entity.AppointmentStatus, to entity.AppointmentStatus) (int64, error)
}
