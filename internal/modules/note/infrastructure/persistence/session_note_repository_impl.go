package persistence

import (
	noteEntity "NeuroLink/internal/modules/note/domain/entity"
	noteRepository "NeuroLink/internal/modules/note/domain/repository"

	"gorm.io/gorm"
)

type sessionNoteRepositoryImpl struct {
	db *gorm.DB
}

func NewSessionNoteRepository(db *gorm.DB) noteRepository.SessionNoteRepository {
	return &sessionNoteRepositoryImpl{db: db}
}

func (r *sessionNoteRepositoryImpl) Create(note *noteEntity.SessionNote) error {
	return r.db.Create(note).Error
}

func (r *sessionNoteRepositoryImpl) GetByAppointmentID(appointmentID string) (*noteEntity.SessionNote, error) {
	var note noteEntity.SessionNote
	if err := r.db.Where("appointment_id = ?", appointmentID).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *sessionNoteRepositoryImpl) Update(note *noteEntity.SessionNote) error {
	return r.db.Save(note).Error
}
